// Package recovery classifies training readiness by comparing current
// sleep and HRV readings against the user's personal baseline.
package recovery

// ratio thresholds below which a metric counts as a shortfall.
const (
	sleepThreshold = 0.7
	hrvThreshold   = 0.8
)

type Status string

const (
	StatusNeedsRecovery    Status = "needs_recovery"
	StatusModerateRecovery Status = "moderate_recovery"
	StatusRecovered        Status = "recovered"
)

// Readings is one observation of the two recovery proxies. Scores are
// on whatever scale the platform reports; only the ratio to baseline
// matters.
type Readings struct {
	SleepScore float64 `json:"sleep_score"`
	HRVScore   float64 `json:"hrv_score"`
}

// Result is an ephemeral per-request recovery assessment.
type Result struct {
	Status          Status   `json:"status"`
	SleepRatio      float64  `json:"sleep_ratio"`
	HRVRatio        float64  `json:"hrv_ratio"`
	Recommendations []string `json:"recommendations"`
}

// Score compares current readings to the baseline. A zero baseline
// metric means no history: its ratio defaults to 1.0, at baseline.
func Score(current, baseline Readings) Result {
	sleepRatio := ratio(current.SleepScore, baseline.SleepScore)
	hrvRatio := ratio(current.HRVScore, baseline.HRVScore)

	status := classify(sleepRatio, hrvRatio)

	return Result{
		Status:          status,
		SleepRatio:      sleepRatio,
		HRVRatio:        hrvRatio,
		Recommendations: recommendations(status, sleepRatio, hrvRatio),
	}
}

// BaselineFrom averages a reading history into a baseline. An empty
// history yields the zero baseline, which Score treats as "no history".
func BaselineFrom(history []Readings) Readings {
	if len(history) == 0 {
		return Readings{}
	}
	var sleep, hrv float64
	for _, r := range history {
		sleep += r.SleepScore
		hrv += r.HRVScore
	}
	n := float64(len(history))
	return Readings{SleepScore: sleep / n, HRVScore: hrv / n}
}

func ratio(current, baseline float64) float64 {
	if baseline == 0 {
		return 1.0
	}
	return current / baseline
}

func classify(sleepRatio, hrvRatio float64) Status {
	sleepLow := sleepRatio < sleepThreshold
	hrvLow := hrvRatio < hrvThreshold
	switch {
	case sleepLow && hrvLow:
		return StatusNeedsRecovery
	case sleepLow || hrvLow:
		return StatusModerateRecovery
	default:
		return StatusRecovered
	}
}

func recommendations(status Status, sleepRatio, hrvRatio float64) []string {
	switch status {
	case StatusNeedsRecovery:
		return []string{
			"Take a rest day from intense exercise",
			"Focus on gentle movement like walking or yoga",
			"Practice deep breathing or meditation",
			"Prioritize sleep and stress management",
		}
	case StatusModerateRecovery:
		var recs []string
		if sleepRatio < sleepThreshold {
			recs = append(recs,
				"Consider a shorter, lower-intensity workout",
				"Practice good sleep hygiene tonight",
				"Avoid caffeine after 2 PM",
			)
		}
		if hrvRatio < hrvThreshold {
			recs = append(recs,
				"Include extra warm-up and cool-down time",
				"Try light mobility work",
				"Focus on stress management techniques",
			)
		}
		return recs
	default:
		return []string{
			"You're recovered and ready for normal training",
			"Continue monitoring your recovery metrics",
			"Maintain your current sleep and recovery practices",
		}
	}
}
