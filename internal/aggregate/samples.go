// Package aggregate normalizes raw per-platform wearable samples into
// daily records and multi-day averages.
package aggregate

import "time"

// Platform identifies the wearable source of a sample.
type Platform string

const (
	PlatformFitbit      Platform = "fitbit"
	PlatformGarmin      Platform = "garmin"
	PlatformAppleHealth Platform = "apple_health"
	PlatformGoogleFit   Platform = "google_fit"
)

// ActivitySample is one timestamped activity reading from a single
// platform. Platforms report in their own bucket sizes, so several
// samples per day per platform are expected.
type ActivitySample struct {
	Timestamp           time.Time `json:"timestamp"`
	Platform            Platform  `json:"platform"`
	Steps               int       `json:"steps"`
	CaloriesBurned      float64   `json:"calories_burned"`
	FairlyActiveMinutes int       `json:"fairly_active_minutes"`
	VeryActiveMinutes   int       `json:"very_active_minutes"`
	RestingHeartRate    float64   `json:"resting_heart_rate,omitempty"`
}

// SleepSample is one sleep session reading from a single platform.
// Score and HRVMillis are zero when the platform does not supply them.
type SleepSample struct {
	Timestamp  time.Time     `json:"timestamp"`
	Platform   Platform      `json:"platform"`
	Duration   time.Duration `json:"duration"`
	DeepSleep  time.Duration `json:"deep_sleep"`
	TimeInBed  time.Duration `json:"time_in_bed"`
	Efficiency float64       `json:"efficiency,omitempty"`
	Score      float64       `json:"score,omitempty"`
	HRVMillis  float64       `json:"hrv_millis,omitempty"`
}

// DateRange is an inclusive calendar-day window. Sample timestamps are
// bucketed by UTC day.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LastNDays returns the n-day range ending on end's UTC day.
func LastNDays(end time.Time, n int) DateRange {
	if n < 1 {
		n = 1
	}
	day := end.UTC().Truncate(24 * time.Hour)
	return DateRange{
		Start: day.AddDate(0, 0, -(n - 1)),
		End:   day,
	}
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Days is the number of calendar days the range spans, inclusive.
func (r DateRange) Days() int {
	start := r.Start.UTC().Truncate(24 * time.Hour)
	end := r.End.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

func (r DateRange) contains(ts time.Time) bool {
	day := ts.UTC().Truncate(24 * time.Hour)
	start := r.Start.UTC().Truncate(24 * time.Hour)
	end := r.End.UTC().Truncate(24 * time.Hour)
	return !day.Before(start) && !day.After(end)
}

func dayKey(ts time.Time) string {
	return ts.UTC().Format(time.DateOnly)
}
