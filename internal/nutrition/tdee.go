package nutrition

// TDEEMode selects how measured activity calories combine with the
// activity-level multiplier. The multiplier and measured paths are
// exclusive so activity is never double counted; the explicit
// TDEEMultiplierPlusActivity mode is the only additive variant.
type TDEEMode int

const (
	// TDEEMultiplier scales BMR by the activity-level multiplier.
	TDEEMultiplier TDEEMode = iota
	// TDEEMeasured adds measured activity calories to BMR and ignores
	// the multiplier.
	TDEEMeasured
	// TDEEMultiplierPlusActivity applies the multiplier and then adds
	// measured activity calories on top.
	TDEEMultiplierPlusActivity
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityHigh:      1.725,
	ActivityAthlete:   1.9,
}

// Multiplier returns the TDEE multiplier for level, defaulting to
// sedentary for unknown levels.
func Multiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[ActivitySedentary]
}

// TDEE converts a BMR into total daily energy expenditure.
// activityCalories is the measured daily calories-burned figure and is
// only consulted by the measured and multiplier-plus-activity modes.
func TDEE(bmr float64, level ActivityLevel, activityCalories float64, mode TDEEMode) float64 {
	switch mode {
	case TDEEMeasured:
		return bmr + activityCalories
	case TDEEMultiplierPlusActivity:
		return bmr*Multiplier(level) + activityCalories
	default:
		return bmr * Multiplier(level)
	}
}
