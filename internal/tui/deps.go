package tui

import (
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/store"
)

// Deps wires the dashboard to the local store. The TUI only reads
// synced data and saved plans; it never talks to the wearable API.
type Deps struct {
	UserID  string
	Store   *store.Store
	Service *plan.Service
}
