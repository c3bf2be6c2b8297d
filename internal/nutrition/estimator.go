// Package nutrition computes metabolic estimates and macro-nutrient
// targets from profile data and observed activity.
package nutrition

type Gender string

const (
	GenderMale  Gender = "male"
	GenderOther Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderOther:
		return true
	}
	return false
}

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHigh      ActivityLevel = "high"
	ActivityAthlete   ActivityLevel = "athlete"
)

func (l ActivityLevel) Valid() bool {
	switch l {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityHigh, ActivityAthlete:
		return true
	}
	return false
}

type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalMaintenance Goal = "maintenance"
	GoalEndurance   Goal = "endurance"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalEndurance:
		return true
	}
	return false
}

// Estimator computes basal metabolic rate in kcal/day. Implementations
// must be pure: the same inputs always produce the same estimate.
type Estimator interface {
	BMR(weightKg, heightCm float64, age int, gender Gender) float64
}

// MifflinStJeor is the canonical estimator.
type MifflinStJeor struct{}

var _ Estimator = MifflinStJeor{}

func (MifflinStJeor) BMR(weightKg, heightCm float64, age int, gender Gender) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// HarrisBenedict is the alternate revised-coefficient estimator. It is
// interchangeable with MifflinStJeor but the two must not be mixed
// within a single computation.
type HarrisBenedict struct{}

var _ Estimator = HarrisBenedict{}

func (HarrisBenedict) BMR(weightKg, heightCm float64, age int, gender Gender) float64 {
	if gender == GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// DefaultEstimator is used wherever a caller does not supply one.
var DefaultEstimator Estimator = MifflinStJeor{}
