package grocery

import "strings"

// CategoryOther collects items no keyword matches.
const CategoryOther = "other"

// categoryKeywords resolves an ingredient to its shopping category by
// substring match. Order matters: the first category with a matching
// keyword wins, so "bell peppers" lands in vegetables before the
// condiment keyword "pepper" can claim it.
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{name: "proteins", keywords: []string{"chicken", "fish", "beef", "eggs", "tofu", "lentils", "beans", "pork", "turkey", "shrimp"}},
	{name: "carbs", keywords: []string{"rice", "quinoa", "pasta", "bread", "potatoes", "oats", "corn", "sweet potatoes", "barley", "couscous"}},
	{name: "vegetables", keywords: []string{"broccoli", "spinach", "carrots", "peppers", "kale", "zucchini", "cauliflower", "asparagus", "brussels sprouts", "green beans"}},
	{name: "fruits", keywords: []string{"apples", "bananas", "berries", "oranges", "grapes", "melon", "pears", "peaches", "pineapple", "mango"}},
	{name: "healthy_fats", keywords: []string{"avocado", "olive oil", "nuts", "seeds", "coconut oil", "almond butter", "peanut butter", "walnuts", "chia seeds", "flaxseeds"}},
	{name: "dairy", keywords: []string{"milk", "yogurt", "cheese", "cottage cheese", "greek yogurt", "cream cheese", "sour cream"}},
	{name: "condiments", keywords: []string{"salt", "pepper", "garlic", "onion", "herbs", "spices", "vinegar", "soy sauce", "hot sauce", "mustard"}},
}

// aisleOrder is the fixed shopping sequence for output categories.
// Unlisted categories are appended after these.
var aisleOrder = []string{"proteins", "dairy", "vegetables", "fruits", "carbs", "healthy_fats", "condiments"}

// CategoryFor resolves an ingredient name to a shopping category.
func CategoryFor(name string) string {
	lower := strings.ToLower(name)
	for _, c := range categoryKeywords {
		for _, keyword := range c.keywords {
			if strings.Contains(lower, keyword) {
				return c.name
			}
		}
	}
	return CategoryOther
}
