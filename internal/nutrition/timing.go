package nutrition

// MealTiming is schedule guidance attached to a nutrition plan.
type MealTiming struct {
	MealsPerDay int    `json:"meals_per_day"`
	PreWorkout  string `json:"pre_workout"`
	PostWorkout string `json:"post_workout"`
	Spacing     string `json:"spacing"`
}

// Timing suggests meal frequency and workout-relative timing for an
// activity level and goal. High-output training gets more frequent,
// tighter-spaced meals.
func Timing(level ActivityLevel, goal Goal) MealTiming {
	if level == ActivityHigh || level == ActivityAthlete {
		if goal == GoalMuscleGain {
			return MealTiming{
				MealsPerDay: 6,
				PreWorkout:  "Eat 2-3 hours before training",
				PostWorkout: "Consume protein and carbs within 30 minutes",
				Spacing:     "Eat every 2-3 hours",
			}
		}
		return MealTiming{
			MealsPerDay: 5,
			PreWorkout:  "Light meal 1-2 hours before training",
			PostWorkout: "Protein and carbs within 1 hour",
			Spacing:     "Eat every 3-4 hours",
		}
	}
	return MealTiming{
		MealsPerDay: 4,
		PreWorkout:  "Light snack 1 hour before activity",
		PostWorkout: "Balanced meal within 2 hours",
		Spacing:     "Eat every 4-5 hours",
	}
}
