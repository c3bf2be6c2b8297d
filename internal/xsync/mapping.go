package xsync

import (
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/client/wearable"
)

// The aggregation API reports sleep durations in hours.
func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func activitySamples(records []wearable.ActivityRecord) []aggregate.ActivitySample {
	samples := make([]aggregate.ActivitySample, 0, len(records))
	for _, r := range records {
		samples = append(samples, aggregate.ActivitySample{
			Timestamp:           r.Date,
			Platform:            aggregate.Platform(r.Platform),
			Steps:               r.Steps,
			CaloriesBurned:      r.CaloriesBurned,
			FairlyActiveMinutes: int(r.ActiveMinutes.FairlyActive),
			VeryActiveMinutes:   int(r.ActiveMinutes.VeryActive),
			RestingHeartRate:    r.HeartRate.Resting,
		})
	}
	return samples
}

func sleepSamples(records []wearable.SleepRecord) []aggregate.SleepSample {
	samples := make([]aggregate.SleepSample, 0, len(records))
	for _, r := range records {
		samples = append(samples, aggregate.SleepSample{
			Timestamp:  r.Date,
			Platform:   aggregate.Platform(r.Platform),
			Duration:   hoursToDuration(r.DurationHours),
			DeepSleep:  hoursToDuration(r.Stages.Deep),
			TimeInBed:  hoursToDuration(r.TimeInBed),
			Efficiency: r.Efficiency,
			Score:      r.Score,
			HRVMillis:  r.HRVRmssdMilli,
		})
	}
	return samples
}
