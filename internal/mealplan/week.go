package mealplan

import "github.com/nutrisync/nutrisync/internal/nutrition"

// DaysPerWeek is the planning horizon.
const DaysPerWeek = 7

const (
	DefaultDietaryType = "balanced"
	DefaultMealCount   = 4
	DefaultServings    = 1
)

// Preferences tune plan generation. Zero values fall back to the
// documented defaults.
type Preferences struct {
	DietaryType   string   `json:"dietary_type"`
	ExcludedFoods []string `json:"excluded_foods"`
	MealCount     int      `json:"meal_count"`
	Servings      int      `json:"servings"`
}

func (p Preferences) withDefaults() Preferences {
	if p.DietaryType == "" {
		p.DietaryType = DefaultDietaryType
	}
	if p.MealCount == 0 {
		p.MealCount = DefaultMealCount
	}
	if p.Servings == 0 {
		p.Servings = DefaultServings
	}
	return p
}

// Validate reports per-field problems. Zero MealCount and Servings are
// allowed; they take defaults.
func (p Preferences) Validate() map[string]string {
	errs := make(map[string]string)
	switch p.MealCount {
	case 0, 3, 4, 5, 6:
	default:
		errs["meal_count"] = "must be one of 3, 4, 5, 6"
	}
	if p.Servings < 0 {
		errs["servings"] = "must be a positive integer"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Day holds one day's meals in slot order.
type Day struct {
	Meals []Meal `json:"meals"`
}

// Plan is a week of meals, day index 0 through 6.
type Plan struct {
	Days []Day `json:"days"`
}

// Meals iterates every meal across all days in order.
func (p Plan) Meals(yield func(day int, meal Meal) bool) {
	for day, d := range p.Days {
		for _, meal := range d.Meals {
			if !yield(day, meal) {
				return
			}
		}
	}
}

// BuildWeek assembles a seven-day plan from daily targets. Each day
// splits the calorie target by the meal-count share table, derives
// per-meal macro targets, and asks the selector to fill the slot.
func BuildWeek(targets nutrition.Targets, prefs Preferences, selector *Selector) Plan {
	prefs = prefs.withDefaults()
	shares := Shares(prefs.MealCount)

	plan := Plan{Days: make([]Day, DaysPerWeek)}
	for day := range DaysPerWeek {
		meals := make([]Meal, 0, len(shares))
		for _, share := range shares {
			calories := float64(targets.Calories) * share.Fraction
			meals = append(meals, selector.Select(Request{
				Slot:          share.Slot,
				Calories:      calories,
				Macros:        MacroTargetFor(calories, targets.Macros),
				DietaryType:   prefs.DietaryType,
				ExcludedFoods: prefs.ExcludedFoods,
				Servings:      prefs.Servings,
				Day:           day,
			}))
		}
		plan.Days[day] = Day{Meals: meals}
	}
	return plan
}
