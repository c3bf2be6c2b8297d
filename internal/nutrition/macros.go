package nutrition

import "math"

const (
	CaloriesPerGramProtein = 4
	CaloriesPerGramCarbs   = 4
	CaloriesPerGramFat     = 9
)

type Macro struct {
	Grams    int `json:"grams"`
	Calories int `json:"calories"`
	Percent  int `json:"percentage"`
}

type Macros struct {
	Protein Macro `json:"protein"`
	Carbs   Macro `json:"carbs"`
	Fat     Macro `json:"fat"`
}

// Targets is a daily calorie target with its macro breakdown.
// Invariant: the three macro calorie fields sum to Calories within a
// few calories of rounding slack.
type Targets struct {
	Calories int    `json:"target_calories"`
	Macros   Macros `json:"macros"`
}

var goalCalorieFactors = map[Goal]float64{
	GoalWeightLoss: 0.85,
	GoalMuscleGain: 1.10,
}

// AdjustForGoal scales a TDEE into a goal-aware calorie target.
// Maintenance and endurance keep the target unchanged.
func AdjustForGoal(tdee float64, goal Goal) float64 {
	if f, ok := goalCalorieFactors[goal]; ok {
		return tdee * f
	}
	return tdee
}

// Planner converts a calorie target and goal into macro targets.
// Implementations apply the goal calorie adjustment themselves, so
// callers pass the unadjusted TDEE.
type Planner interface {
	Plan(weightKg, targetCalories float64, goal Goal) Targets
}

type percentSplit struct {
	protein, carbs, fat int
}

var goalSplits = map[Goal]percentSplit{
	GoalWeightLoss: {protein: 40, carbs: 30, fat: 30},
	GoalMuscleGain: {protein: 30, carbs: 50, fat: 20},
}

var defaultSplit = percentSplit{protein: 30, carbs: 40, fat: 30}

// PercentPlanner splits calories by fixed goal-keyed percentages.
type PercentPlanner struct{}

var _ Planner = PercentPlanner{}

func (PercentPlanner) Plan(_, targetCalories float64, goal Goal) Targets {
	adjusted := AdjustForGoal(targetCalories, goal)

	split, ok := goalSplits[goal]
	if !ok {
		split = defaultSplit
	}

	return Targets{
		Calories: round(adjusted),
		Macros: Macros{
			Protein: macroFromPercent(adjusted, split.protein, CaloriesPerGramProtein),
			Carbs:   macroFromPercent(adjusted, split.carbs, CaloriesPerGramCarbs),
			Fat:     macroFromPercent(adjusted, split.fat, CaloriesPerGramFat),
		},
	}
}

func macroFromPercent(targetCalories float64, percent, caloriesPerGram int) Macro {
	calories := targetCalories * float64(percent) / 100
	return Macro{
		Grams:    round(calories / float64(caloriesPerGram)),
		Calories: round(calories),
		Percent:  percent,
	}
}

var proteinPerKg = map[Goal]float64{
	GoalWeightLoss:  2.2,
	GoalMuscleGain:  2.4,
	GoalMaintenance: 1.8,
	GoalEndurance:   1.6,
}

// PerKgPlanner sizes protein by body weight, fixes fat at 25% of
// calories, and assigns the remainder to carbs.
type PerKgPlanner struct{}

var _ Planner = PerKgPlanner{}

func (PerKgPlanner) Plan(weightKg, targetCalories float64, goal Goal) Targets {
	adjusted := AdjustForGoal(targetCalories, goal)

	perKg, ok := proteinPerKg[goal]
	if !ok {
		perKg = proteinPerKg[GoalMaintenance]
	}

	proteinGrams := weightKg * perKg
	proteinCalories := proteinGrams * CaloriesPerGramProtein
	fatCalories := 0.25 * adjusted
	carbCalories := adjusted - proteinCalories - fatCalories
	if carbCalories < 0 {
		// Protein-heavy targets at very low calories leave no remainder.
		carbCalories = 0
	}

	return Targets{
		Calories: round(adjusted),
		Macros: Macros{
			Protein: macroFromCalories(proteinCalories, adjusted, CaloriesPerGramProtein),
			Carbs:   macroFromCalories(carbCalories, adjusted, CaloriesPerGramCarbs),
			Fat:     macroFromCalories(fatCalories, adjusted, CaloriesPerGramFat),
		},
	}
}

func macroFromCalories(calories, targetCalories float64, caloriesPerGram int) Macro {
	percent := 0
	if targetCalories > 0 {
		percent = round(calories / targetCalories * 100)
	}
	return Macro{
		Grams:    round(calories / float64(caloriesPerGram)),
		Calories: round(calories),
		Percent:  percent,
	}
}

// DefaultPlanner is used wherever a caller does not supply one.
var DefaultPlanner Planner = PercentPlanner{}

func round(f float64) int {
	return int(math.Round(f))
}
