package nutrition

// hydration baseline in ml per kg of body weight.
const hydrationMlPerKg = 35

// Hydration returns the daily water intake target in milliliters.
func Hydration(weightKg float64) int {
	return round(weightKg * hydrationMlPerKg)
}
