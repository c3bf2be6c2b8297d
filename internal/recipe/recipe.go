// Package recipe defines the meal template catalog consumed by the
// meal selector.
package recipe

// Slot is a named meal time within a day.
type Slot string

const (
	SlotBreakfast      Slot = "breakfast"
	SlotMorningSnack   Slot = "morning_snack"
	SlotLunch          Slot = "lunch"
	SlotAfternoonSnack Slot = "afternoon_snack"
	SlotSnack          Slot = "snack"
	SlotDinner         Slot = "dinner"
	SlotEveningSnack   Slot = "evening_snack"
)

// Canonical maps snack variants onto the shared snack catalog key.
// Other slots map to themselves.
func (s Slot) Canonical() Slot {
	switch s {
	case SlotMorningSnack, SlotAfternoonSnack, SlotEveningSnack:
		return SlotSnack
	}
	return s
}

type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Recipe is one catalog template. Calories and macro grams are per
// serving; ingredient amounts are scaled by the caller's serving count.
type Recipe struct {
	Name         string       `json:"name"`
	Slot         Slot         `json:"slot"`
	Calories     int          `json:"calories"`
	ProteinGrams int          `json:"protein_grams"`
	CarbGrams    int          `json:"carb_grams"`
	FatGrams     int          `json:"fat_grams"`
	Tags         []string     `json:"tags,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}

// MatchesDiet reports whether the recipe suits a dietary type. Untagged
// recipes and the balanced diet match everything.
func (r Recipe) MatchesDiet(dietaryType string) bool {
	if dietaryType == "" || dietaryType == "balanced" || len(r.Tags) == 0 {
		return true
	}
	for _, tag := range r.Tags {
		if tag == dietaryType {
			return true
		}
	}
	return false
}

// Catalog supplies candidate templates per meal slot. The catalog must
// be treated as immutable during a planning run; implementations return
// copies the caller may not mutate in place.
type Catalog interface {
	Recipes(slot Slot) []Recipe
}
