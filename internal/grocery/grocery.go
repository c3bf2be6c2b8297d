// Package grocery folds a weekly meal plan into a categorized,
// bulk-rounded shopping list and a prep schedule.
package grocery

import (
	"math"
	"slices"

	"github.com/nutrisync/nutrisync/internal/mealplan"
)

// Item is one shopping line. Quantity is rounded up to a convenient
// bulk size and never below the raw summed amount. Recipes lists the
// meal names referencing the item, in first-use order.
type Item struct {
	Name     string   `json:"item"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Recipes  []string `json:"recipes"`
}

// Category is an aisle group of items.
type Category struct {
	Name  string `json:"category"`
	Items []Item `json:"items"`
}

// List is the full shopping list in aisle order.
type List struct {
	Categories []Category `json:"categories"`
}

type itemAccum struct {
	amount  float64
	unit    string
	recipes []string
}

// Build folds every ingredient of every meal in the plan into a
// per-item total, keyed by (category, name), then rounds quantities up
// to shopping-friendly bulk sizes.
func Build(plan mealplan.Plan) List {
	totals := make(map[string]map[string]*itemAccum)

	for _, meal := range allMeals(plan) {
		for _, ing := range meal.Ingredients {
			category := CategoryFor(ing.Name)
			items, ok := totals[category]
			if !ok {
				items = make(map[string]*itemAccum)
				totals[category] = items
			}
			acc, ok := items[ing.Name]
			if !ok {
				acc = &itemAccum{unit: ing.Unit}
				items[ing.Name] = acc
			}
			acc.amount += ing.Amount
			if !slices.Contains(acc.recipes, meal.Name) {
				acc.recipes = append(acc.recipes, meal.Name)
			}
		}
	}

	return List{Categories: orderCategories(totals)}
}

func allMeals(plan mealplan.Plan) []mealplan.Meal {
	var out []mealplan.Meal
	for _, meal := range plan.Meals {
		out = append(out, meal)
	}
	return out
}

func orderCategories(totals map[string]map[string]*itemAccum) []Category {
	names := make([]string, 0, len(totals))
	for _, name := range aisleOrder {
		if _, ok := totals[name]; ok {
			names = append(names, name)
		}
	}

	var rest []string
	for name := range totals {
		if !slices.Contains(aisleOrder, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	names = append(names, rest...)

	categories := make([]Category, 0, len(names))
	for _, name := range names {
		items := totals[name]

		itemNames := make([]string, 0, len(items))
		for itemName := range items {
			itemNames = append(itemNames, itemName)
		}
		slices.Sort(itemNames)

		c := Category{Name: name, Items: make([]Item, 0, len(items))}
		for _, itemName := range itemNames {
			acc := items[itemName]
			c.Items = append(c.Items, Item{
				Name:     itemName,
				Quantity: roundUp(acc.amount, acc.unit),
				Unit:     acc.unit,
				Recipes:  acc.recipes,
			})
		}
		categories = append(categories, c)
	}
	return categories
}

// roundUp bulks an amount to a shopping-friendly quantity. Grams round
// up to the nearest 100, milliliters to the nearest 250, countable
// units to whole integers. Unknown units pass through unchanged. The
// result is never below amount.
func roundUp(amount float64, unit string) float64 {
	switch unit {
	case "g":
		return math.Ceil(amount/100) * 100
	case "ml":
		return math.Ceil(amount/250) * 250
	case "whole", "large", "medium", "small", "cloves":
		return math.Ceil(amount)
	default:
		return amount
	}
}
