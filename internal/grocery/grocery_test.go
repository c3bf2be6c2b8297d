package grocery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/recipe"
)

func TestRoundUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		unit   string
		want   float64
	}{
		{name: "grams already at multiple stay put", amount: 500, unit: "g", want: 500},
		{name: "grams round up to next hundred", amount: 530, unit: "g", want: 600},
		{name: "small gram amounts round to first hundred", amount: 14, unit: "g", want: 100},
		{name: "milliliters round up to next 250", amount: 350, unit: "ml", want: 500},
		{name: "milliliters at multiple stay put", amount: 500, unit: "ml", want: 500},
		{name: "whole items round up", amount: 2.5, unit: "whole", want: 3},
		{name: "cloves round up", amount: 3.2, unit: "cloves", want: 4},
		{name: "unknown unit passes through", amount: 1.5, unit: "cup", want: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := roundUp(tt.amount, tt.unit); got != tt.want {
				t.Errorf("roundUp(%v, %q) = %v, want %v", tt.amount, tt.unit, got, tt.want)
			}
		})
	}
}

func TestRoundUpNeverDecreases(t *testing.T) {
	t.Parallel()

	units := []string{"g", "ml", "whole", "large", "medium", "cloves", "cup"}
	amounts := []float64{0.1, 1, 14, 99.9, 100, 101, 249, 250, 251, 530, 999.5, 2048}

	for _, unit := range units {
		for _, amount := range amounts {
			if got := roundUp(amount, unit); got < amount {
				t.Errorf("roundUp(%v, %q) = %v, decreased below input", amount, unit, got)
			}
		}
	}
}

func TestCategoryFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		item string
		want string
	}{
		{item: "chicken breast", want: "proteins"},
		{item: "brown rice", want: "carbs"},
		{item: "broccoli", want: "vegetables"},
		{item: "bell peppers", want: "vegetables"},
		{item: "berries", want: "fruits"},
		{item: "olive oil", want: "healthy_fats"},
		{item: "greek yogurt", want: "dairy"},
		{item: "salt", want: "condiments"},
		{item: "Chicken Breast", want: "proteins"},
		{item: "lemon", want: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			t.Parallel()

			if got := CategoryFor(tt.item); got != tt.want {
				t.Errorf("CategoryFor(%q) = %q, want %q", tt.item, got, tt.want)
			}
		})
	}
}

func testPlan() mealplan.Plan {
	oatmeal := mealplan.Meal{
		Name: "Oatmeal",
		Slot: recipe.SlotBreakfast,
		Ingredients: []recipe.Ingredient{
			{Name: "oats", Amount: 50, Unit: "g"},
			{Name: "berries", Amount: 100, Unit: "g"},
		},
	}
	salad := mealplan.Meal{
		Name: "Chicken Salad",
		Slot: recipe.SlotLunch,
		Ingredients: []recipe.Ingredient{
			{Name: "chicken breast", Amount: 150, Unit: "g"},
			{Name: "olive oil", Amount: 15, Unit: "ml"},
		},
	}
	stirFry := mealplan.Meal{
		Name: "Stir Fry",
		Slot: recipe.SlotDinner,
		Ingredients: []recipe.Ingredient{
			{Name: "chicken breast", Amount: 200, Unit: "g"},
			{Name: "broccoli", Amount: 100, Unit: "g"},
		},
	}

	return mealplan.Plan{Days: []mealplan.Day{
		{Meals: []mealplan.Meal{oatmeal, salad}},
		{Meals: []mealplan.Meal{oatmeal, stirFry}},
	}}
}

func TestBuildFoldsAndRounds(t *testing.T) {
	t.Parallel()

	got := Build(testPlan())

	want := List{Categories: []Category{
		{Name: "proteins", Items: []Item{
			{Name: "chicken breast", Quantity: 400, Unit: "g", Recipes: []string{"Chicken Salad", "Stir Fry"}},
		}},
		{Name: "vegetables", Items: []Item{
			{Name: "broccoli", Quantity: 100, Unit: "g", Recipes: []string{"Stir Fry"}},
		}},
		{Name: "fruits", Items: []Item{
			{Name: "berries", Quantity: 200, Unit: "g", Recipes: []string{"Oatmeal"}},
		}},
		{Name: "carbs", Items: []Item{
			{Name: "oats", Quantity: 100, Unit: "g", Recipes: []string{"Oatmeal"}},
		}},
		{Name: "healthy_fats", Items: []Item{
			{Name: "olive oil", Quantity: 250, Unit: "ml", Recipes: []string{"Chicken Salad"}},
		}},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildQuantityCoversRawTotal(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	got := Build(plan)

	raw := make(map[string]float64)
	for _, meal := range plan.Meals {
		for _, ing := range meal.Ingredients {
			raw[ing.Name] += ing.Amount
		}
	}

	for _, category := range got.Categories {
		for _, item := range category.Items {
			if item.Quantity < raw[item.Name] {
				t.Errorf("%s quantity %v is below raw total %v", item.Name, item.Quantity, raw[item.Name])
			}
		}
	}
}

func TestBuildAppendsUnknownCategoriesAfterAisles(t *testing.T) {
	t.Parallel()

	plan := mealplan.Plan{Days: []mealplan.Day{{Meals: []mealplan.Meal{{
		Name: "Mystery Bowl",
		Slot: recipe.SlotLunch,
		Ingredients: []recipe.Ingredient{
			{Name: "lemon", Amount: 1, Unit: "whole"},
			{Name: "chicken breast", Amount: 100, Unit: "g"},
		},
	}}}}}

	got := Build(plan)

	if len(got.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(got.Categories))
	}
	if got.Categories[0].Name != "proteins" {
		t.Errorf("first category = %q, want proteins", got.Categories[0].Name)
	}
	if got.Categories[1].Name != CategoryOther {
		t.Errorf("last category = %q, want %q appended after aisles", got.Categories[1].Name, CategoryOther)
	}
}

func TestPrepSchedule(t *testing.T) {
	t.Parallel()

	got := Prep(testPlan())

	if len(got.Sunday) != 2 {
		t.Fatalf("Sunday tasks = %d, want 2 (breakfast and lunch batches)", len(got.Sunday))
	}
	if got.Sunday[0].Task != "Prepare breakfast for the week" {
		t.Errorf("Sunday[0].Task = %q, want breakfast batch", got.Sunday[0].Task)
	}
	if diff := cmp.Diff([]string{"Oatmeal"}, got.Sunday[0].Meals); diff != "" {
		t.Errorf("Sunday breakfast meals mismatch (-want +got):\n%s", diff)
	}

	wantFirst := recipe.Ingredient{Name: "berries", Amount: 200, Unit: "g"}
	if diff := cmp.Diff(wantFirst, got.Sunday[0].Ingredients[0]); diff != "" {
		t.Errorf("Sunday breakfast folded ingredients mismatch (-want +got):\n%s", diff)
	}

	if len(got.Wednesday) != 1 {
		t.Fatalf("Wednesday tasks = %d, want 1", len(got.Wednesday))
	}
	if got.Wednesday[0].EstimatedTime != "30 minutes" {
		t.Errorf("Wednesday estimated time = %q, want 30 minutes", got.Wednesday[0].EstimatedTime)
	}

	// Only the dinner contributes fresh ingredients in this plan.
	names := make([]string, 0, len(got.Wednesday[0].Ingredients))
	for _, ing := range got.Wednesday[0].Ingredients {
		names = append(names, ing.Name)
	}
	if diff := cmp.Diff([]string{"broccoli", "chicken breast"}, names); diff != "" {
		t.Errorf("Wednesday fresh ingredients mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepEmptyPlan(t *testing.T) {
	t.Parallel()

	got := Prep(mealplan.Plan{})

	if len(got.Sunday) != 0 || len(got.Wednesday) != 0 {
		t.Errorf("Prep(empty) = %+v, want empty schedule", got)
	}
}
