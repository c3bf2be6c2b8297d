// Package mealplan distributes daily calories across meal slots,
// selects recipe templates, and assembles the weekly plan.
package mealplan

import (
	"math"

	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/recipe"
)

// Share is one meal slot's fraction of the daily calorie target.
type Share struct {
	Slot     recipe.Slot `json:"slot"`
	Fraction float64     `json:"fraction"`
}

// Shares returns the ordered calorie-share table for a meal count.
// Each table's fractions sum to 1.0. Unsupported counts fall back to
// the three-meal table.
func Shares(mealsPerDay int) []Share {
	switch mealsPerDay {
	case 6:
		return []Share{
			{Slot: recipe.SlotBreakfast, Fraction: 0.20},
			{Slot: recipe.SlotMorningSnack, Fraction: 0.10},
			{Slot: recipe.SlotLunch, Fraction: 0.25},
			{Slot: recipe.SlotAfternoonSnack, Fraction: 0.10},
			{Slot: recipe.SlotDinner, Fraction: 0.25},
			{Slot: recipe.SlotEveningSnack, Fraction: 0.10},
		}
	case 5:
		return []Share{
			{Slot: recipe.SlotBreakfast, Fraction: 0.25},
			{Slot: recipe.SlotMorningSnack, Fraction: 0.10},
			{Slot: recipe.SlotLunch, Fraction: 0.30},
			{Slot: recipe.SlotAfternoonSnack, Fraction: 0.10},
			{Slot: recipe.SlotDinner, Fraction: 0.25},
		}
	case 4:
		return []Share{
			{Slot: recipe.SlotBreakfast, Fraction: 0.30},
			{Slot: recipe.SlotLunch, Fraction: 0.30},
			{Slot: recipe.SlotSnack, Fraction: 0.10},
			{Slot: recipe.SlotDinner, Fraction: 0.30},
		}
	default:
		return []Share{
			{Slot: recipe.SlotBreakfast, Fraction: 0.25},
			{Slot: recipe.SlotLunch, Fraction: 0.35},
			{Slot: recipe.SlotDinner, Fraction: 0.40},
		}
	}
}

// MacroTarget is a per-meal macro goal in grams.
type MacroTarget struct {
	ProteinGrams int `json:"protein_grams"`
	CarbGrams    int `json:"carb_grams"`
	FatGrams     int `json:"fat_grams"`
}

// Calories is the energy implied by the macro grams.
func (m MacroTarget) Calories() int {
	return m.ProteinGrams*nutrition.CaloriesPerGramProtein +
		m.CarbGrams*nutrition.CaloriesPerGramCarbs +
		m.FatGrams*nutrition.CaloriesPerGramFat
}

// MacroTargetFor scales the daily macro percentages down to one meal's
// calorie share.
func MacroTargetFor(mealCalories float64, daily nutrition.Macros) MacroTarget {
	grams := func(percent, caloriesPerGram int) int {
		return int(math.Round(mealCalories * float64(percent) / 100 / float64(caloriesPerGram)))
	}
	return MacroTarget{
		ProteinGrams: grams(daily.Protein.Percent, nutrition.CaloriesPerGramProtein),
		CarbGrams:    grams(daily.Carbs.Percent, nutrition.CaloriesPerGramCarbs),
		FatGrams:     grams(daily.Fat.Percent, nutrition.CaloriesPerGramFat),
	}
}
