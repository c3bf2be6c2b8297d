package grocery

import (
	"slices"
	"strings"

	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/recipe"
)

// PrepTask is one batch-cooking session.
type PrepTask struct {
	Task          string              `json:"task"`
	Meals         []string            `json:"meals,omitempty"`
	EstimatedTime string              `json:"estimated_time"`
	Ingredients   []recipe.Ingredient `json:"ingredients"`
}

// PrepSchedule splits the week's cooking into a Sunday batch session
// for make-ahead slots and a midweek refresh for meals eaten fresh.
type PrepSchedule struct {
	Sunday    []PrepTask `json:"sunday"`
	Wednesday []PrepTask `json:"wednesday"`
}

var batchSlots = []recipe.Slot{recipe.SlotBreakfast, recipe.SlotLunch}

// Prep builds the schedule for a weekly plan. Breakfasts and lunches
// are batch-cooked Sunday; dinners and snacks get a Wednesday fresh
// prep pass.
func Prep(plan mealplan.Plan) PrepSchedule {
	var schedule PrepSchedule

	for _, slot := range batchSlots {
		meals := mealsForSlot(plan, slot)
		if len(meals) == 0 {
			continue
		}
		schedule.Sunday = append(schedule.Sunday, PrepTask{
			Task:          "Prepare " + string(slot) + " for the week",
			Meals:         uniqueNames(meals),
			EstimatedTime: "1-2 hours",
			Ingredients:   foldIngredients(meals),
		})
	}

	fresh := freshMeals(plan)
	if len(fresh) > 0 {
		schedule.Wednesday = append(schedule.Wednesday, PrepTask{
			Task:          "Prepare fresh ingredients for remaining meals",
			EstimatedTime: "30 minutes",
			Ingredients:   foldIngredients(fresh),
		})
	}

	return schedule
}

func mealsForSlot(plan mealplan.Plan, slot recipe.Slot) []mealplan.Meal {
	var out []mealplan.Meal
	for _, meal := range plan.Meals {
		if meal.Slot == slot {
			out = append(out, meal)
		}
	}
	return out
}

func freshMeals(plan mealplan.Plan) []mealplan.Meal {
	var out []mealplan.Meal
	for _, meal := range plan.Meals {
		canonical := meal.Slot.Canonical()
		if canonical == recipe.SlotDinner || canonical == recipe.SlotSnack {
			out = append(out, meal)
		}
	}
	return out
}

func uniqueNames(meals []mealplan.Meal) []string {
	var names []string
	for _, meal := range meals {
		if !slices.Contains(names, meal.Name) {
			names = append(names, meal.Name)
		}
	}
	return names
}

func foldIngredients(meals []mealplan.Meal) []recipe.Ingredient {
	totals := make(map[string]*recipe.Ingredient)
	for _, meal := range meals {
		for _, ing := range meal.Ingredients {
			acc, ok := totals[ing.Name]
			if !ok {
				totals[ing.Name] = &recipe.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
				continue
			}
			acc.Amount += ing.Amount
		}
	}

	out := make([]recipe.Ingredient, 0, len(totals))
	for _, ing := range totals {
		out = append(out, *ing)
	}
	slices.SortFunc(out, func(a, b recipe.Ingredient) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
