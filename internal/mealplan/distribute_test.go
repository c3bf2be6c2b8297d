package mealplan

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/recipe"
)

func TestSharesSumToOne(t *testing.T) {
	t.Parallel()

	for _, meals := range []int{3, 4, 5, 6} {
		shares := Shares(meals)
		if len(shares) != meals {
			t.Errorf("Shares(%d) has %d slots, want %d", meals, len(shares), meals)
		}

		sum := 0.0
		for _, s := range shares {
			sum += s.Fraction
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Shares(%d) fractions sum to %v, want 1.0", meals, sum)
		}
	}
}

func TestSharesUnknownCountFallsBackToThreeMeals(t *testing.T) {
	t.Parallel()

	shares := Shares(9)
	if len(shares) != 3 {
		t.Fatalf("Shares(9) has %d slots, want 3", len(shares))
	}
	if shares[0].Slot != recipe.SlotBreakfast || shares[2].Slot != recipe.SlotDinner {
		t.Errorf("Shares(9) slots = %v, want breakfast..dinner", shares)
	}
}

func TestSharesFourMealExample(t *testing.T) {
	t.Parallel()

	got := make(map[recipe.Slot]int)
	for _, s := range Shares(4) {
		got[s.Slot] = int(math.Round(2000 * s.Fraction))
	}

	want := map[recipe.Slot]int{
		recipe.SlotBreakfast: 600,
		recipe.SlotLunch:     600,
		recipe.SlotSnack:     200,
		recipe.SlotDinner:    600,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("four-meal split of 2000 mismatch (-want +got):\n%s", diff)
	}
}

func TestMacroTargetFor(t *testing.T) {
	t.Parallel()

	daily := nutrition.Macros{
		Protein: nutrition.Macro{Percent: 30},
		Carbs:   nutrition.Macro{Percent: 40},
		Fat:     nutrition.Macro{Percent: 30},
	}

	got := MacroTargetFor(600, daily)

	want := MacroTarget{ProteinGrams: 45, CarbGrams: 60, FatGrams: 20}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MacroTargetFor(600) mismatch (-want +got):\n%s", diff)
	}

	if got.Calories() != 600 {
		t.Errorf("Calories() = %d, want 600", got.Calories())
	}
}
