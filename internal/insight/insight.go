// Package insight turns synced health data into rule-based guidance.
package insight

import (
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/profile"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelNoData  Level = "no_data"
)

// Insight types, one per analyzer.
const (
	TypeHeartRate = "heart_rate"
	TypeSleep     = "sleep"
	TypeRecovery  = "recovery"
	TypeNutrition = "nutrition"
)

type Insight struct {
	Type            string             `json:"type"`
	Level           Level              `json:"level"`
	Message         string             `json:"message"`
	Confidence      float64            `json:"confidence,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Data            map[string]float64 `json:"data,omitempty"`
}

// HealthScorer scores synced data into insights. The rule-based scorer
// is the canonical implementation; the interface leaves room for a
// model-backed one without touching callers.
type HealthScorer interface {
	AnalyzeHeartRate(bpm []float64) Insight
	AnalyzeSleep(durations []time.Duration) Insight
	AnalyzeRecovery(m aggregate.Metrics) Insight
	AnalyzeNutrition(p profile.Profile) Insight
}
