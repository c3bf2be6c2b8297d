package mealplan

import (
	"strings"

	"github.com/nutrisync/nutrisync/internal/recipe"
)

// calorie tolerance band around the per-meal target when matching
// catalog templates.
const calorieTolerance = 0.10

// Meal is one planned meal. Calories are derived strictly from the
// macro target, for templates and synthesized meals alike.
type Meal struct {
	Name         string              `json:"name"`
	Slot         recipe.Slot         `json:"slot"`
	Calories     int                 `json:"calories"`
	Macros       MacroTarget         `json:"macros"`
	Ingredients  []recipe.Ingredient `json:"ingredients"`
	Instructions []string            `json:"instructions"`
}

// Request describes one meal slot to fill.
type Request struct {
	Slot          recipe.Slot
	Calories      float64
	Macros        MacroTarget
	DietaryType   string
	ExcludedFoods []string
	Servings      int
	// Day is the rotation key: candidates are cycled by day index so
	// repeated generation stays reproducible.
	Day int
}

// Selector matches meal requests against a template catalog.
type Selector struct {
	catalog recipe.Catalog
}

func NewSelector(catalog recipe.Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select fills a meal slot. Candidates must suit the dietary type,
// avoid excluded foods, and land within the calorie tolerance band;
// ties rotate by day index. When nothing matches, Select synthesizes a
// balanced meal instead of failing.
func (s *Selector) Select(req Request) Meal {
	servings := req.Servings
	if servings < 1 {
		servings = 1
	}

	candidates := s.candidates(req)
	if len(candidates) == 0 {
		return balancedMeal(req, servings)
	}

	chosen := candidates[req.Day%len(candidates)]

	ingredients := make([]recipe.Ingredient, len(chosen.Ingredients))
	for i, ing := range chosen.Ingredients {
		ingredients[i] = recipe.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount * float64(servings),
			Unit:   ing.Unit,
		}
	}

	return Meal{
		Name:         chosen.Name,
		Slot:         req.Slot,
		Calories:     req.Macros.Calories(),
		Macros:       req.Macros,
		Ingredients:  ingredients,
		Instructions: chosen.Instructions,
	}
}

func (s *Selector) candidates(req Request) []recipe.Recipe {
	if s.catalog == nil {
		return nil
	}

	low := req.Calories * (1 - calorieTolerance)
	high := req.Calories * (1 + calorieTolerance)

	var out []recipe.Recipe
	for _, r := range s.catalog.Recipes(req.Slot) {
		if !r.MatchesDiet(req.DietaryType) {
			continue
		}
		if float64(r.Calories) < low || float64(r.Calories) > high {
			continue
		}
		if containsExcluded(r, req.ExcludedFoods) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsExcluded(r recipe.Recipe, excluded []string) bool {
	for _, food := range excluded {
		food = strings.ToLower(strings.TrimSpace(food))
		if food == "" {
			continue
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing.Name), food) {
				return true
			}
		}
	}
	return false
}

func balancedMeal(req Request, servings int) Meal {
	s := float64(servings)
	return Meal{
		Name:     "Balanced " + titleSlot(req.Slot),
		Slot:     req.Slot,
		Calories: req.Macros.Calories(),
		Macros:   req.Macros,
		Ingredients: []recipe.Ingredient{
			{Name: "chicken breast", Amount: 150 * s, Unit: "g"},
			{Name: "brown rice", Amount: 100 * s, Unit: "g"},
			{Name: "broccoli", Amount: 100 * s, Unit: "g"},
			{Name: "olive oil", Amount: 15 * s, Unit: "ml"},
		},
		Instructions: []string{
			"Cook chicken breast",
			"Prepare brown rice",
			"Steam broccoli",
			"Combine and serve",
		},
	}
}

func titleSlot(slot recipe.Slot) string {
	words := strings.Split(strings.ReplaceAll(string(slot), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
