package wearable

import (
	"net/url"
	"strconv"
	"time"
)

// AccountProfile is the connected aggregation account.
type AccountProfile struct {
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Platforms []string `json:"platforms"`
}

// ActivityRecord is one daily activity summary as reported by a single
// platform. The same day can appear once per connected platform.
type ActivityRecord struct {
	Date           time.Time     `json:"date"`
	Platform       string        `json:"platform"`
	DeviceID       string        `json:"device_id"`
	Steps          int           `json:"steps"`
	DistanceKm     float64       `json:"distance"`
	CaloriesBurned float64       `json:"calories_burned"`
	ActiveMinutes  ActiveMinutes `json:"active_minutes"`
	HeartRate      HeartRate     `json:"heart_rate"`
	IsComplete     bool          `json:"is_complete"`
}

// ActiveMinutes follows the platform convention of intensity buckets.
type ActiveMinutes struct {
	Sedentary     float64 `json:"sedentary"`
	LightlyActive float64 `json:"lightly_active"`
	FairlyActive  float64 `json:"fairly_active"`
	VeryActive    float64 `json:"very_active"`
}

type HeartRate struct {
	Resting float64 `json:"resting"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Avg     float64 `json:"avg"`
}

// SleepRecord is one nightly sleep summary. Durations are hours as
// reported upstream.
type SleepRecord struct {
	Date          time.Time   `json:"date"`
	Platform      string      `json:"platform"`
	DeviceID      string      `json:"device_id"`
	DurationHours float64     `json:"sleep_duration"`
	TimeInBed     float64     `json:"time_in_bed"`
	Efficiency    float64     `json:"efficiency"`
	Stages        SleepStages `json:"sleep_stages"`
	Score         float64     `json:"score"`
	HRVRmssdMilli float64     `json:"hrv_rmssd_milli"`
	IsComplete    bool        `json:"is_complete"`
}

type SleepStages struct {
	Deep  float64 `json:"deep"`
	Light float64 `json:"light"`
	REM   float64 `json:"rem"`
	Awake float64 `json:"awake"`
}

type ListParams struct {
	Limit     int
	Start     *time.Time
	End       *time.Time
	NextToken *string
}

func (p *ListParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Start != nil {
		v.Set("start", p.Start.Format(time.RFC3339))
	}
	if p.End != nil {
		v.Set("end", p.End.Format(time.RFC3339))
	}
	if p.NextToken != nil {
		v.Set("next_token", *p.NextToken)
	}

	return v
}

type PaginatedResponse[T any] struct {
	Records   []T     `json:"records"`
	NextToken *string `json:"next_token,omitempty"`
}

func (p *PaginatedResponse[T]) HasMore() bool {
	return p.NextToken != nil && *p.NextToken != ""
}
