package recipe

import (
	"slices"
	"sync"
)

// Compile-time interface check.
var _ Catalog = (*MemoryCatalog)(nil)

// MemoryCatalog holds templates in memory keyed by canonical slot.
// Safe for concurrent reads.
type MemoryCatalog struct {
	mu      sync.RWMutex
	recipes map[Slot][]Recipe
}

// NewMemoryCatalog creates an empty catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{recipes: make(map[Slot][]Recipe)}
}

// Add registers templates under their own slots.
func (c *MemoryCatalog) Add(recipes ...Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range recipes {
		slot := r.Slot.Canonical()
		c.recipes[slot] = append(c.recipes[slot], r)
	}
}

// Recipes returns the templates registered for slot. The returned slice
// is a copy; an unknown or empty slot yields nil.
func (c *MemoryCatalog) Recipes(slot Slot) []Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	found := c.recipes[slot.Canonical()]
	if len(found) == 0 {
		return nil
	}
	return slices.Clone(found)
}

// Len reports the total number of registered templates.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, recipes := range c.recipes {
		n += len(recipes)
	}
	return n
}
