package aggregate

import "time"

// DefaultDays is the window used when a caller does not name one.
const DefaultDays = 7

type ActivityLabel string

const (
	ActivityLabelSedentary        ActivityLabel = "sedentary"
	ActivityLabelLightlyActive    ActivityLabel = "lightly_active"
	ActivityLabelModeratelyActive ActivityLabel = "moderately_active"
	ActivityLabelVeryActive       ActivityLabel = "very_active"
)

type SleepQuality string

const (
	SleepQualityExcellent SleepQuality = "excellent"
	SleepQualityGood      SleepQuality = "good"
	SleepQualityFair      SleepQuality = "fair"
	SleepQualityPoor      SleepQuality = "poor"
)

// MacroGrams is the recommended daily macro breakdown in grams.
type MacroGrams struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Metrics is the multi-day average summary over a date range. Duration
// fields are in hours, efficiency in percent. When a sample family has
// no observed days its averages stay zero and its label stays empty.
type Metrics struct {
	DateRange DateRange `json:"date_range"`

	ActivityDays int `json:"activity_days"`
	SleepDays    int `json:"sleep_days"`

	AvgDailySteps          float64 `json:"avg_daily_steps"`
	AvgDailyCaloriesBurned float64 `json:"avg_daily_calories_burned"`
	AvgActiveMinutes       float64 `json:"avg_active_minutes"`
	AvgRestingHeartRate    float64 `json:"avg_resting_heart_rate"`

	AvgSleepDuration   float64 `json:"avg_sleep_duration"`
	AvgDeepSleep       float64 `json:"avg_deep_sleep"`
	AvgSleepEfficiency float64 `json:"avg_sleep_efficiency"`

	ActivityLevel ActivityLabel `json:"activity_level"`
	SleepQuality  SleepQuality  `json:"sleep_quality"`

	// Complete reports whether every day in the range had both
	// activity and sleep data.
	Complete bool `json:"is_complete"`
	// NoData reports an empty sample set. Zero metrics with NoData set
	// are the documented fallback, not an error.
	NoData bool `json:"no_data"`

	EstimatedBMR        int        `json:"estimated_bmr,omitempty"`
	RecommendedCalories int        `json:"recommended_calories,omitempty"`
	RecommendedMacros   MacroGrams `json:"recommended_macros"`
}

type activityDay struct {
	steps    int
	calories float64
	active   int
	hrSum    float64
	hrN      int
}

type sleepDay struct {
	duration time.Duration
	deep     time.Duration
	effSum   float64
	effN     int
}

// Aggregate folds raw samples within rng into a Metrics summary. A zero
// rng defaults to the last DefaultDays days ending now.
//
// Within one platform's day, additive metrics (steps, calories, active
// minutes) are summed across that platform's buckets and rate metrics
// are averaged. Days covered by several platforms average the
// per-platform totals rather than summing them; overlapping readings
// from multiple connected devices are otherwise not deduplicated, so
// double-reported days remain a known data-quality risk.
func Aggregate(activity []ActivitySample, sleep []SleepSample, rng DateRange) Metrics {
	if rng.IsZero() {
		rng = LastNDays(time.Now(), DefaultDays)
	}

	m := Metrics{DateRange: rng}

	activityDays := foldActivity(activity, rng)
	sleepDays := foldSleep(sleep, rng)

	m.ActivityDays = len(activityDays)
	m.SleepDays = len(sleepDays)
	m.NoData = len(activityDays) == 0 && len(sleepDays) == 0
	m.Complete = len(activityDays) == rng.Days() && len(sleepDays) == rng.Days()

	if len(activityDays) > 0 {
		var steps, calories, active, hr float64
		hrDays := 0
		for _, day := range activityDays {
			steps += float64(day.steps)
			calories += day.calories
			active += float64(day.active)
			if day.hrN > 0 {
				hr += day.hrSum / float64(day.hrN)
				hrDays++
			}
		}
		n := float64(len(activityDays))
		m.AvgDailySteps = steps / n
		m.AvgDailyCaloriesBurned = calories / n
		m.AvgActiveMinutes = active / n
		if hrDays > 0 {
			m.AvgRestingHeartRate = hr / float64(hrDays)
		}
		m.ActivityLevel = activityLabel(m.AvgDailySteps)
	}

	if len(sleepDays) > 0 {
		var duration, deep, eff float64
		effDays := 0
		for _, day := range sleepDays {
			duration += day.duration.Hours()
			deep += day.deep.Hours()
			if day.effN > 0 {
				eff += day.effSum / float64(day.effN)
				effDays++
			}
		}
		n := float64(len(sleepDays))
		m.AvgSleepDuration = duration / n
		m.AvgDeepSleep = deep / n
		if effDays > 0 {
			m.AvgSleepEfficiency = eff / float64(effDays)
		}
		m.SleepQuality = sleepQualityLabel(m.AvgSleepDuration, m.AvgDeepSleep, m.AvgSleepEfficiency)
	}

	return m
}

func foldActivity(samples []ActivitySample, rng DateRange) map[string]*activityDay {
	byPlatform := make(map[string]map[Platform]*activityDay)
	for _, s := range samples {
		if !rng.contains(s.Timestamp) {
			continue
		}
		key := dayKey(s.Timestamp)
		platforms, ok := byPlatform[key]
		if !ok {
			platforms = make(map[Platform]*activityDay)
			byPlatform[key] = platforms
		}
		day, ok := platforms[s.Platform]
		if !ok {
			day = &activityDay{}
			platforms[s.Platform] = day
		}
		day.steps += s.Steps
		day.calories += s.CaloriesBurned
		day.active += s.FairlyActiveMinutes + s.VeryActiveMinutes
		if s.RestingHeartRate > 0 {
			day.hrSum += s.RestingHeartRate
			day.hrN++
		}
	}

	days := make(map[string]*activityDay, len(byPlatform))
	for key, platforms := range byPlatform {
		merged := &activityDay{}
		n := len(platforms)
		var steps, calories, active float64
		for _, day := range platforms {
			steps += float64(day.steps)
			calories += day.calories
			active += float64(day.active)
			if day.hrN > 0 {
				merged.hrSum += day.hrSum / float64(day.hrN)
				merged.hrN++
			}
		}
		merged.steps = int(steps / float64(n))
		merged.calories = calories / float64(n)
		merged.active = int(active / float64(n))
		days[key] = merged
	}
	return days
}

func foldSleep(samples []SleepSample, rng DateRange) map[string]*sleepDay {
	byPlatform := make(map[string]map[Platform]*sleepDay)
	for _, s := range samples {
		if !rng.contains(s.Timestamp) {
			continue
		}
		key := dayKey(s.Timestamp)
		platforms, ok := byPlatform[key]
		if !ok {
			platforms = make(map[Platform]*sleepDay)
			byPlatform[key] = platforms
		}
		day, ok := platforms[s.Platform]
		if !ok {
			day = &sleepDay{}
			platforms[s.Platform] = day
		}
		day.duration += s.Duration
		day.deep += s.DeepSleep
		if s.Efficiency > 0 {
			day.effSum += s.Efficiency
			day.effN++
		}
	}

	days := make(map[string]*sleepDay, len(byPlatform))
	for key, platforms := range byPlatform {
		merged := &sleepDay{}
		n := int64(len(platforms))
		for _, day := range platforms {
			merged.duration += day.duration
			merged.deep += day.deep
			if day.effN > 0 {
				merged.effSum += day.effSum / float64(day.effN)
				merged.effN++
			}
		}
		merged.duration /= time.Duration(n)
		merged.deep /= time.Duration(n)
		days[key] = merged
	}
	return days
}

func activityLabel(avgSteps float64) ActivityLabel {
	switch {
	case avgSteps >= 10000:
		return ActivityLabelVeryActive
	case avgSteps >= 7500:
		return ActivityLabelModeratelyActive
	case avgSteps >= 5000:
		return ActivityLabelLightlyActive
	default:
		return ActivityLabelSedentary
	}
}

func sleepQualityLabel(durationHours, deepHours, efficiencyPct float64) SleepQuality {
	switch {
	case durationHours >= 8 && deepHours >= 1.5 && efficiencyPct >= 90:
		return SleepQualityExcellent
	case durationHours >= 7 && deepHours >= 1.2 && efficiencyPct >= 85:
		return SleepQualityGood
	case durationHours >= 6 && deepHours >= 1.0 && efficiencyPct >= 80:
		return SleepQualityFair
	default:
		return SleepQualityPoor
	}
}
