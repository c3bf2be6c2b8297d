package insight

import (
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/profile"
)

const (
	elevatedHeartRate = 100
	lowHeartRate      = 60

	sleepTargetHours = 8
)

// RuleScorer is the canonical HealthScorer. All rules are pure
// threshold checks over the inputs.
type RuleScorer struct {
	// Estimator overrides the BMR estimator used by AnalyzeNutrition.
	// Defaults to HarrisBenedict.
	Estimator nutrition.Estimator
}

var _ HealthScorer = RuleScorer{}

func (s RuleScorer) estimator() nutrition.Estimator {
	if s.Estimator != nil {
		return s.Estimator
	}
	return nutrition.HarrisBenedict{}
}

func (RuleScorer) AnalyzeHeartRate(bpm []float64) Insight {
	if len(bpm) == 0 {
		return Insight{
			Type:            TypeHeartRate,
			Level:           LevelNoData,
			Message:         "No heart rate samples",
			Recommendations: []string{"Start tracking your heart rate to get insights"},
		}
	}

	var sum float64
	for _, v := range bpm {
		sum += v
	}
	avg := sum / float64(len(bpm))

	in := Insight{
		Type:       TypeHeartRate,
		Confidence: 0.8,
		Data:       map[string]float64{"average_bpm": avg},
	}

	switch {
	case avg > elevatedHeartRate:
		in.Level = LevelWarning
		in.Message = "Average heart rate is above 100 bpm"
		in.Recommendations = []string{
			"Consider consulting a healthcare provider",
			"Practice relaxation techniques",
			"Monitor your caffeine intake",
		}
	case avg < lowHeartRate:
		in.Level = LevelInfo
		in.Message = "Average heart rate is below 60 bpm"
		in.Recommendations = []string{
			"This could be normal for athletes",
			"Monitor for symptoms like dizziness",
			"Ensure adequate hydration",
		}
	default:
		in.Level = LevelSuccess
		in.Message = "Average heart rate is in the typical resting range"
		in.Recommendations = []string{
			"Maintain your current lifestyle",
			"Continue regular exercise",
			"Keep tracking your heart rate",
		}
	}

	return in
}

func (RuleScorer) AnalyzeSleep(durations []time.Duration) Insight {
	if len(durations) == 0 {
		return Insight{
			Type:            TypeSleep,
			Level:           LevelNoData,
			Message:         "No sleep samples",
			Recommendations: []string{"Start tracking your sleep to get insights"},
			Data:            map[string]float64{"quality_score": 0},
		}
	}

	var sum time.Duration
	for _, d := range durations {
		sum += d
	}
	avg := sum / time.Duration(len(durations))

	quality := min(avg.Hours()/sleepTargetHours, 1)

	in := Insight{
		Type: TypeSleep,
		Data: map[string]float64{"quality_score": quality},
	}

	switch {
	case quality < 0.6:
		in.Level = LevelWarning
		in.Message = "Sleep duration is well below target"
		in.Recommendations = []string{
			"Aim for 7-9 hours of sleep",
			"Maintain a consistent sleep schedule",
			"Create a relaxing bedtime routine",
		}
	case quality < 0.8:
		in.Level = LevelInfo
		in.Message = "Sleep duration is close to target"
		in.Recommendations = []string{
			"You're getting close to optimal sleep",
			"Try to get to bed 30 minutes earlier",
			"Limit screen time before bed",
		}
	default:
		in.Level = LevelSuccess
		in.Message = "Sleep duration is on target"
		in.Recommendations = []string{
			"Maintain your current sleep schedule",
			"Keep your bedroom cool and dark",
			"Continue monitoring your sleep quality",
		}
	}

	return in
}

func (RuleScorer) AnalyzeRecovery(m aggregate.Metrics) Insight {
	if m.NoData {
		return Insight{
			Type:            TypeRecovery,
			Level:           LevelNoData,
			Message:         "No activity data",
			Recommendations: []string{"Sync your wearable data to get recovery insights"},
		}
	}

	in := Insight{
		Type:       TypeRecovery,
		Confidence: 0.7,
	}

	switch m.ActivityLevel {
	case aggregate.ActivityLabelVeryActive:
		in.Level = LevelWarning
		in.Message = "Training load is high"
		in.Recommendations = []string{
			"Ensure adequate rest between intense workouts",
			"Focus on proper nutrition and hydration",
			"Monitor for signs of overtraining",
		}
	case aggregate.ActivityLabelModeratelyActive:
		in.Level = LevelSuccess
		in.Message = "Activity load is well balanced"
		in.Recommendations = []string{
			"Your activity level is well-balanced",
			"Continue with your current routine",
			"Consider gradually increasing intensity",
		}
	default:
		in.Level = LevelInfo
		in.Message = "Activity level has room to grow"
		in.Recommendations = []string{
			"Consider increasing your activity level",
			"Start with low-impact exercises",
			"Set realistic weekly goals",
		}
	}

	return in
}

func (s RuleScorer) AnalyzeNutrition(p profile.Profile) Insight {
	if p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return Insight{
			Type:            TypeNutrition,
			Level:           LevelNoData,
			Message:         "Profile is incomplete",
			Recommendations: []string{"Complete your profile to get nutrition insights"},
		}
	}

	bmr := s.estimator().BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := nutrition.TDEE(bmr, p.ActivityLevel, 0, nutrition.TDEEMultiplier)
	calories := nutrition.AdjustForGoal(tdee, p.Goal)
	targets := nutrition.PercentPlanner{}.Plan(p.WeightKg, tdee, p.Goal)

	return Insight{
		Type:    TypeNutrition,
		Level:   LevelSuccess,
		Message: "Daily calorie and macro targets computed",
		Data: map[string]float64{
			"daily_calories":  calories,
			"protein_percent": float64(targets.Macros.Protein.Percent),
			"carbs_percent":   float64(targets.Macros.Carbs.Percent),
			"fat_percent":     float64(targets.Macros.Fat.Percent),
			"hydration_ml":    float64(nutrition.Hydration(p.WeightKg)),
		},
	}
}
