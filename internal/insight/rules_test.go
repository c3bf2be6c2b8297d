package insight

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/profile"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestAnalyzeHeartRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bpm  []float64
		want Insight
	}{
		{
			name: "no samples",
			want: Insight{
				Type:            TypeHeartRate,
				Level:           LevelNoData,
				Message:         "No heart rate samples",
				Recommendations: []string{"Start tracking your heart rate to get insights"},
			},
		},
		{
			name: "elevated average",
			bpm:  []float64{105, 110},
			want: Insight{
				Type:       TypeHeartRate,
				Level:      LevelWarning,
				Message:    "Average heart rate is above 100 bpm",
				Confidence: 0.8,
				Recommendations: []string{
					"Consider consulting a healthcare provider",
					"Practice relaxation techniques",
					"Monitor your caffeine intake",
				},
				Data: map[string]float64{"average_bpm": 107.5},
			},
		},
		{
			name: "low average",
			bpm:  []float64{55, 58},
			want: Insight{
				Type:       TypeHeartRate,
				Level:      LevelInfo,
				Message:    "Average heart rate is below 60 bpm",
				Confidence: 0.8,
				Recommendations: []string{
					"This could be normal for athletes",
					"Monitor for symptoms like dizziness",
					"Ensure adequate hydration",
				},
				Data: map[string]float64{"average_bpm": 56.5},
			},
		},
		{
			name: "typical average",
			bpm:  []float64{68, 72, 76},
			want: Insight{
				Type:       TypeHeartRate,
				Level:      LevelSuccess,
				Message:    "Average heart rate is in the typical resting range",
				Confidence: 0.8,
				Recommendations: []string{
					"Maintain your current lifestyle",
					"Continue regular exercise",
					"Keep tracking your heart rate",
				},
				Data: map[string]float64{"average_bpm": 72},
			},
		},
		{
			name: "exactly one hundred stays success",
			bpm:  []float64{100},
			want: Insight{
				Type:       TypeHeartRate,
				Level:      LevelSuccess,
				Message:    "Average heart rate is in the typical resting range",
				Confidence: 0.8,
				Recommendations: []string{
					"Maintain your current lifestyle",
					"Continue regular exercise",
					"Keep tracking your heart rate",
				},
				Data: map[string]float64{"average_bpm": 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RuleScorer{}.AnalyzeHeartRate(tt.bpm)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("AnalyzeHeartRate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeSleep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		durations   []time.Duration
		wantLevel   Level
		wantQuality float64
	}{
		{
			name:        "no samples",
			wantLevel:   LevelNoData,
			wantQuality: 0,
		},
		{
			name:        "short sleep warns",
			durations:   []time.Duration{4 * time.Hour},
			wantLevel:   LevelWarning,
			wantQuality: 0.5,
		},
		{
			name:        "near target informs",
			durations:   []time.Duration{6 * time.Hour},
			wantLevel:   LevelInfo,
			wantQuality: 0.75,
		},
		{
			name:        "on target succeeds",
			durations:   []time.Duration{7 * time.Hour, 9 * time.Hour},
			wantLevel:   LevelSuccess,
			wantQuality: 1,
		},
		{
			name:        "quality is capped at one",
			durations:   []time.Duration{10 * time.Hour},
			wantLevel:   LevelSuccess,
			wantQuality: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RuleScorer{}.AnalyzeSleep(tt.durations)
			if got.Level != tt.wantLevel {
				t.Errorf("AnalyzeSleep() level = %q, want %q", got.Level, tt.wantLevel)
			}
			if quality := got.Data["quality_score"]; quality != tt.wantQuality {
				t.Errorf("AnalyzeSleep() quality score = %v, want %v", quality, tt.wantQuality)
			}
		})
	}
}

func TestAnalyzeRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		metrics   aggregate.Metrics
		wantLevel Level
	}{
		{
			name:      "no data",
			metrics:   aggregate.Metrics{NoData: true},
			wantLevel: LevelNoData,
		},
		{
			name:      "very active warns about load",
			metrics:   aggregate.Metrics{ActivityLevel: aggregate.ActivityLabelVeryActive},
			wantLevel: LevelWarning,
		},
		{
			name:      "moderately active is balanced",
			metrics:   aggregate.Metrics{ActivityLevel: aggregate.ActivityLabelModeratelyActive},
			wantLevel: LevelSuccess,
		},
		{
			name:      "lightly active nudges upward",
			metrics:   aggregate.Metrics{ActivityLevel: aggregate.ActivityLabelLightlyActive},
			wantLevel: LevelInfo,
		},
		{
			name:      "sedentary nudges upward",
			metrics:   aggregate.Metrics{ActivityLevel: aggregate.ActivityLabelSedentary},
			wantLevel: LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RuleScorer{}.AnalyzeRecovery(tt.metrics)
			if got.Level != tt.wantLevel {
				t.Errorf("AnalyzeRecovery() level = %q, want %q", got.Level, tt.wantLevel)
			}
			if tt.wantLevel != LevelNoData && got.Confidence != 0.7 {
				t.Errorf("AnalyzeRecovery() confidence = %v, want 0.7", got.Confidence)
			}
			if len(got.Recommendations) == 0 {
				t.Error("AnalyzeRecovery() returned no recommendations")
			}
		})
	}
}

func TestAnalyzeNutrition(t *testing.T) {
	t.Parallel()

	p := profile.Profile{
		WeightKg:      80,
		HeightCm:      180,
		Age:           30,
		Gender:        nutrition.GenderMale,
		ActivityLevel: nutrition.ActivityModerate,
		Goal:          nutrition.GoalMaintenance,
	}

	t.Run("defaults to the revised coefficient estimator", func(t *testing.T) {
		t.Parallel()

		got := RuleScorer{}.AnalyzeNutrition(p)
		if got.Level != LevelSuccess {
			t.Fatalf("AnalyzeNutrition() level = %q, want %q", got.Level, LevelSuccess)
		}

		wantBMR := 88.362 + 13.397*80 + 4.799*180 - 5.677*30
		wantData := map[string]float64{
			"daily_calories":  wantBMR * 1.55,
			"protein_percent": 30,
			"carbs_percent":   40,
			"fat_percent":     30,
			"hydration_ml":    2800,
		}
		if diff := cmp.Diff(wantData, got.Data, approx); diff != "" {
			t.Errorf("AnalyzeNutrition() data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("estimator override", func(t *testing.T) {
		t.Parallel()

		got := RuleScorer{Estimator: nutrition.MifflinStJeor{}}.AnalyzeNutrition(p)
		if diff := cmp.Diff(2759.0, got.Data["daily_calories"], approx); diff != "" {
			t.Errorf("daily calories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("goal adjustment applies once", func(t *testing.T) {
		t.Parallel()

		loss := p
		loss.Goal = nutrition.GoalWeightLoss

		base := RuleScorer{}.AnalyzeNutrition(p).Data["daily_calories"]
		got := RuleScorer{}.AnalyzeNutrition(loss).Data["daily_calories"]
		if diff := cmp.Diff(base*0.85, got, approx); diff != "" {
			t.Errorf("weight loss calories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("incomplete profile", func(t *testing.T) {
		t.Parallel()

		got := RuleScorer{}.AnalyzeNutrition(profile.Profile{})
		if got.Level != LevelNoData {
			t.Errorf("AnalyzeNutrition() level = %q, want %q", got.Level, LevelNoData)
		}
	})
}
