// Package profile defines the user health profile and its stores.
package profile

import (
	"time"

	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/validator"
)

// Profile is the caller-owned user profile. It is immutable during a
// computation run; stores validate before any write.
type Profile struct {
	UserID               string                  `json:"user_id"`
	Name                 string                  `json:"name"`
	Age                  int                     `json:"age"`
	WeightKg             float64                 `json:"weight"`
	HeightCm             float64                 `json:"height"`
	Gender               nutrition.Gender        `json:"gender"`
	ActivityLevel        nutrition.ActivityLevel `json:"activity_level"`
	Goal                 nutrition.Goal          `json:"goal_type"`
	WeeklyActivityTarget float64                 `json:"weekly_activity_target"`
	MealsPerDay          int                     `json:"meals_per_day,omitempty"`
	DietaryType          string                  `json:"dietary_type,omitempty"`
	ExcludedFoods        []string                `json:"excluded_foods,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

var _ validator.Validator = (*Profile)(nil)

// Validate checks the required fields and enum values. Optional fields
// (meals per day, dietary type) are only checked when set.
func (p *Profile) Validate() map[string]string {
	errs := make(map[string]string)

	if p.Name == "" {
		errs["name"] = "is required"
	}
	if p.Age <= 0 {
		errs["age"] = "must be a positive integer"
	}
	if p.WeightKg <= 0 {
		errs["weight"] = "must be positive"
	}
	if p.HeightCm <= 0 {
		errs["height"] = "must be positive"
	}
	if !p.Gender.Valid() {
		errs["gender"] = "must be one of male, other"
	}
	if !p.ActivityLevel.Valid() {
		errs["activity_level"] = "must be one of sedentary, light, moderate, high, athlete"
	}
	if !p.Goal.Valid() {
		errs["goal_type"] = "must be one of weight_loss, muscle_gain, maintenance, endurance"
	}
	if p.WeeklyActivityTarget <= 0 {
		errs["weekly_activity_target"] = "must be positive"
	}
	switch p.MealsPerDay {
	case 0, 3, 4, 5, 6:
	default:
		errs["meals_per_day"] = "must be one of 3, 4, 5, 6"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
