// Package plan runs the planning pipeline end to end: daily targets,
// a week of meals, and the grocery fold, from one profile and one
// metrics window.
package plan

import (
	"context"
	"time"

	"github.com/nutrisync/nutrisync/internal/grocery"
	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/nutrition"
)

// Result is one full plan generation.
type Result struct {
	Targets     nutrition.Targets    `json:"nutrition_targets"`
	Week        mealplan.Plan        `json:"meal_plan"`
	Groceries   grocery.List         `json:"grocery_list"`
	Prep        grocery.PrepSchedule `json:"prep_schedule"`
	HydrationML int                  `json:"hydration_ml"`
	Timing      nutrition.MealTiming `json:"meal_timing"`
}

// Record is a persisted plan generation.
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// Plans persists generated plans. The Postgres repository backs the
// server; the local sqlite store backs the CLI.
type Plans interface {
	Upsert(ctx context.Context, rec *Record) error
	// Latest returns the newest record for userID, or nil when the
	// user has no saved plan.
	Latest(ctx context.Context, userID string) (*Record, error)
}
