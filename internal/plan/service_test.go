package plan

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/recipe"
	"github.com/nutrisync/nutrisync/internal/recovery"
	"github.com/nutrisync/nutrisync/internal/xerrors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memPlans struct {
	records map[string][]*Record
}

func newMemPlans() *memPlans {
	return &memPlans{records: make(map[string][]*Record)}
}

func (m *memPlans) Upsert(_ context.Context, rec *Record) error {
	m.records[rec.UserID] = append(m.records[rec.UserID], rec)
	return nil
}

func (m *memPlans) Latest(_ context.Context, userID string) (*Record, error) {
	recs := m.records[userID]
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[len(recs)-1], nil
}

func testProfile() profile.Profile {
	return profile.Profile{
		UserID:               "u_123",
		Name:                 "Alex",
		Age:                  30,
		WeightKg:             80,
		HeightCm:             180,
		Gender:               nutrition.GenderMale,
		ActivityLevel:        nutrition.ActivityModerate,
		Goal:                 nutrition.GoalMaintenance,
		WeeklyActivityTarget: 150,
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	svc := NewService(recipe.Seed(), newMemPlans(), discardLogger())

	res, err := svc.Generate(testProfile(), aggregate.Metrics{}, mealplan.Preferences{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got, want := res.Targets.Calories, 2759; got != want {
		t.Errorf("target calories = %d, want %d", got, want)
	}
	if got, want := len(res.Week.Days), mealplan.DaysPerWeek; got != want {
		t.Fatalf("plan days = %d, want %d", got, want)
	}
	for day, d := range res.Week.Days {
		if got, want := len(d.Meals), mealplan.DefaultMealCount; got != want {
			t.Errorf("day %d meals = %d, want %d", day, got, want)
		}
	}
	if len(res.Groceries.Categories) == 0 {
		t.Error("grocery list is empty")
	}
	if len(res.Prep.Sunday) == 0 {
		t.Error("prep schedule has no Sunday tasks")
	}
	if got, want := res.HydrationML, 2800; got != want {
		t.Errorf("hydration = %d ml, want %d", got, want)
	}
	if got, want := res.Timing.MealsPerDay, 4; got != want {
		t.Errorf("timing meals per day = %d, want %d", got, want)
	}
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		profile   func() profile.Profile
		prefs     mealplan.Preferences
		wantField string
	}{
		{
			name: "invalid profile",
			profile: func() profile.Profile {
				p := testProfile()
				p.WeightKg = 0
				return p
			},
			wantField: "weight",
		},
		{
			name:      "invalid preferences",
			profile:   testProfile,
			prefs:     mealplan.Preferences{MealCount: 7},
			wantField: "meal_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(recipe.Seed(), newMemPlans(), discardLogger())

			_, err := svc.Generate(tt.profile(), aggregate.Metrics{}, tt.prefs)
			if err == nil {
				t.Fatal("Generate() error = nil, want validation error")
			}

			xerr := xerrors.As(err)
			if xerr == nil || xerr.Validation == nil {
				t.Fatalf("Generate() error = %v, want validation error", err)
			}
			if _, ok := xerr.Validation.Fields[tt.wantField]; !ok {
				t.Errorf("validation fields = %v, want entry for %q", xerr.Validation.Fields, tt.wantField)
			}
		})
	}
}

func TestGenerateMeasuredMode(t *testing.T) {
	t.Parallel()

	svc := NewService(recipe.Seed(), newMemPlans(), discardLogger(),
		WithTDEEMode(nutrition.TDEEMeasured))

	t.Run("uses measured calories when present", func(t *testing.T) {
		t.Parallel()

		res, err := svc.Generate(testProfile(), aggregate.Metrics{AvgDailyCaloriesBurned: 700}, mealplan.Preferences{})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if got, want := res.Targets.Calories, 2480; got != want {
			t.Errorf("target calories = %d, want %d", got, want)
		}
	})

	t.Run("falls back to multiplier without data", func(t *testing.T) {
		t.Parallel()

		res, err := svc.Generate(testProfile(), aggregate.Metrics{NoData: true}, mealplan.Preferences{})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if got, want := res.Targets.Calories, 2759; got != want {
			t.Errorf("target calories = %d, want %d", got, want)
		}
	})
}

func TestGenerateMergesProfilePreferences(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.MealsPerDay = 5
	p.ExcludedFoods = []string{"salmon"}

	svc := NewService(recipe.Seed(), newMemPlans(), discardLogger())

	t.Run("profile fills unset preferences", func(t *testing.T) {
		t.Parallel()

		res, err := svc.Generate(p, aggregate.Metrics{}, mealplan.Preferences{})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if got, want := len(res.Week.Days[0].Meals), 5; got != want {
			t.Errorf("meals per day = %d, want %d", got, want)
		}
		for day, meal := range res.Week.Meals {
			for _, ing := range meal.Ingredients {
				if strings.Contains(strings.ToLower(ing.Name), "salmon") {
					t.Errorf("day %d meal %q contains excluded salmon", day, meal.Name)
				}
			}
		}
	})

	t.Run("explicit preferences win", func(t *testing.T) {
		t.Parallel()

		res, err := svc.Generate(p, aggregate.Metrics{}, mealplan.Preferences{MealCount: 3})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if got, want := len(res.Week.Days[0].Meals), 3; got != want {
			t.Errorf("meals per day = %d, want %d", got, want)
		}
	})
}

func TestSaveAndLatest(t *testing.T) {
	t.Parallel()

	plans := newMemPlans()
	svc := NewService(recipe.Seed(), plans, discardLogger())

	res, err := svc.Generate(testProfile(), aggregate.Metrics{}, mealplan.Preferences{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	rec, err := svc.Save(t.Context(), "u_123", res)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("Save() returned record without ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Save() returned record without timestamp")
	}

	got, err := svc.Latest(t.Context(), "u_123")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got == nil || got.ID != rec.ID {
		t.Errorf("Latest() = %+v, want record %s", got, rec.ID)
	}

	missing, err := svc.Latest(t.Context(), "u_456")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if missing != nil {
		t.Errorf("Latest() for unknown user = %+v, want nil", missing)
	}
}

func TestSaveWithoutStore(t *testing.T) {
	t.Parallel()

	svc := NewService(recipe.Seed(), nil, discardLogger())

	if _, err := svc.Save(t.Context(), "u_123", &Result{}); !errors.Is(err, ErrNoPlanStore) {
		t.Errorf("Save() error = %v, want ErrNoPlanStore", err)
	}
	if _, err := svc.Latest(t.Context(), "u_123"); !errors.Is(err, ErrNoPlanStore) {
		t.Errorf("Latest() error = %v, want ErrNoPlanStore", err)
	}
}

func TestScoreRecovery(t *testing.T) {
	t.Parallel()

	svc := NewService(recipe.Seed(), newMemPlans(), discardLogger())

	got := svc.ScoreRecovery(
		recovery.Readings{SleepScore: 50, HRVScore: 50},
		recovery.Readings{SleepScore: 100, HRVScore: 100},
	)
	if got.Status != recovery.StatusNeedsRecovery {
		t.Errorf("ScoreRecovery() status = %q, want %q", got.Status, recovery.StatusNeedsRecovery)
	}
}
