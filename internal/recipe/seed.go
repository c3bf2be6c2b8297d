package recipe

// Seed returns a catalog preloaded with the built-in templates.
func Seed() *MemoryCatalog {
	c := NewMemoryCatalog()
	c.Add(builtins()...)
	return c
}

func builtins() []Recipe {
	return []Recipe{
		{
			Name:         "Protein Oatmeal",
			Slot:         SlotBreakfast,
			Calories:     440,
			ProteinGrams: 32,
			CarbGrams:    48,
			FatGrams:     14,
			Tags:         []string{"balanced", "high_protein", "vegetarian"},
			Ingredients: []Ingredient{
				{Name: "oats", Amount: 50, Unit: "g"},
				{Name: "protein powder", Amount: 30, Unit: "g"},
				{Name: "berries", Amount: 100, Unit: "g"},
				{Name: "almonds", Amount: 15, Unit: "g"},
				{Name: "cinnamon", Amount: 2, Unit: "g"},
			},
			Instructions: []string{
				"Cook oats according to package instructions",
				"Stir in protein powder",
				"Top with berries and almonds",
				"Sprinkle with cinnamon",
			},
		},
		{
			Name:         "Vegetable Omelette",
			Slot:         SlotBreakfast,
			Calories:     280,
			ProteinGrams: 20,
			CarbGrams:    4,
			FatGrams:     21,
			Tags:         []string{"balanced", "low_carb", "vegetarian"},
			Ingredients: []Ingredient{
				{Name: "eggs", Amount: 3, Unit: "large"},
				{Name: "spinach", Amount: 50, Unit: "g"},
				{Name: "bell peppers", Amount: 50, Unit: "g"},
				{Name: "olive oil", Amount: 5, Unit: "ml"},
				{Name: "salt", Amount: 1, Unit: "g"},
				{Name: "pepper", Amount: 1, Unit: "g"},
			},
			Instructions: []string{
				"Saute vegetables in olive oil",
				"Beat eggs with salt and pepper",
				"Pour eggs over vegetables",
				"Cook until set",
			},
		},
		{
			Name:         "Grilled Chicken Salad",
			Slot:         SlotLunch,
			Calories:     420,
			ProteinGrams: 48,
			CarbGrams:    10,
			FatGrams:     20,
			Tags:         []string{"balanced", "high_protein", "low_carb"},
			Ingredients: []Ingredient{
				{Name: "chicken breast", Amount: 150, Unit: "g"},
				{Name: "mixed greens", Amount: 100, Unit: "g"},
				{Name: "cherry tomatoes", Amount: 100, Unit: "g"},
				{Name: "olive oil", Amount: 15, Unit: "ml"},
				{Name: "balsamic vinegar", Amount: 10, Unit: "ml"},
				{Name: "salt", Amount: 1, Unit: "g"},
				{Name: "pepper", Amount: 1, Unit: "g"},
			},
			Instructions: []string{
				"Season and grill chicken breast",
				"Toss greens and tomatoes with olive oil and vinegar",
				"Top with sliced chicken",
				"Season with salt and pepper",
			},
		},
		{
			Name:         "Salmon with Quinoa",
			Slot:         SlotDinner,
			Calories:     620,
			ProteinGrams: 45,
			CarbGrams:    60,
			FatGrams:     22,
			Tags:         []string{"balanced", "high_protein"},
			Ingredients: []Ingredient{
				{Name: "salmon fillet", Amount: 150, Unit: "g"},
				{Name: "quinoa", Amount: 100, Unit: "g"},
				{Name: "broccoli", Amount: 100, Unit: "g"},
				{Name: "olive oil", Amount: 10, Unit: "ml"},
				{Name: "lemon", Amount: 1, Unit: "whole"},
				{Name: "garlic", Amount: 2, Unit: "cloves"},
				{Name: "salt", Amount: 1, Unit: "g"},
				{Name: "pepper", Amount: 1, Unit: "g"},
			},
			Instructions: []string{
				"Cook quinoa according to package instructions",
				"Season salmon with salt, pepper, and garlic",
				"Roast salmon and broccoli with olive oil",
				"Serve with lemon wedges",
			},
		},
		{
			Name:         "Protein Smoothie",
			Slot:         SlotSnack,
			Calories:     340,
			ProteinGrams: 30,
			CarbGrams:    35,
			FatGrams:     10,
			Tags:         []string{"balanced", "high_protein", "vegetarian"},
			Ingredients: []Ingredient{
				{Name: "protein powder", Amount: 30, Unit: "g"},
				{Name: "banana", Amount: 1, Unit: "medium"},
				{Name: "almond milk", Amount: 250, Unit: "ml"},
				{Name: "peanut butter", Amount: 15, Unit: "g"},
				{Name: "ice", Amount: 100, Unit: "g"},
			},
			Instructions: []string{
				"Add all ingredients to blender",
				"Blend until smooth",
				"Serve immediately",
			},
		},
	}
}
