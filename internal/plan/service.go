package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/grocery"
	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/recipe"
	"github.com/nutrisync/nutrisync/internal/recovery"
	"github.com/nutrisync/nutrisync/internal/validator"
	"github.com/nutrisync/nutrisync/internal/xerrors"
	"github.com/nutrisync/nutrisync/internal/xslog"
)

// ErrNoPlanStore is returned by Save and Latest when the service was
// built without a Plans backend.
var ErrNoPlanStore = errors.New("plan store not configured")

type Service struct {
	selector  *mealplan.Selector
	plans     Plans
	logger    *slog.Logger
	estimator nutrition.Estimator
	planner   nutrition.Planner
	tdeeMode  nutrition.TDEEMode
}

type Option func(*Service)

// WithEstimator swaps the BMR estimator. A single Generate call never
// mixes estimators.
func WithEstimator(e nutrition.Estimator) Option {
	return func(s *Service) { s.estimator = e }
}

func WithPlanner(p nutrition.Planner) Option {
	return func(s *Service) { s.planner = p }
}

// WithTDEEMode selects how measured activity calories feed the energy
// estimate. The default multiplier mode ignores them.
func WithTDEEMode(mode nutrition.TDEEMode) Option {
	return func(s *Service) { s.tdeeMode = mode }
}

func NewService(catalog recipe.Catalog, plans Plans, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		selector:  mealplan.NewSelector(catalog),
		plans:     plans,
		logger:    logger,
		estimator: nutrition.DefaultEstimator,
		planner:   nutrition.DefaultPlanner,
		tdeeMode:  nutrition.TDEEMultiplier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the full pipeline. The only failure mode is invalid
// caller input; missing wearable data and empty catalog slots resolve
// through documented fallbacks instead.
func (s *Service) Generate(p profile.Profile, m aggregate.Metrics, prefs mealplan.Preferences) (*Result, error) {
	if err := validator.Validate(&p); err != nil {
		return nil, err
	}
	if errs := prefs.Validate(); errs != nil {
		return nil, xerrors.Validation(errs)
	}

	prefs = mergePreferences(p, prefs)

	bmr := s.estimator.BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)

	// Measured modes need a calories-burned figure; without one the
	// multiplier path is the documented fallback.
	mode := s.tdeeMode
	if m.AvgDailyCaloriesBurned <= 0 {
		mode = nutrition.TDEEMultiplier
	}
	tdee := nutrition.TDEE(bmr, p.ActivityLevel, m.AvgDailyCaloriesBurned, mode)

	targets := s.planner.Plan(p.WeightKg, tdee, p.Goal)
	week := mealplan.BuildWeek(targets, prefs, s.selector)

	res := &Result{
		Targets:     targets,
		Week:        week,
		Groceries:   grocery.Build(week),
		Prep:        grocery.Prep(week),
		HydrationML: nutrition.Hydration(p.WeightKg),
		Timing:      nutrition.Timing(p.ActivityLevel, p.Goal),
	}

	s.logger.Debug("generated weekly plan",
		xslog.UserID(p.UserID),
		slog.Int("target_calories", targets.Calories),
		slog.Int("meals_per_day", prefs.MealCount),
	)

	return res, nil
}

// ScoreRecovery is the recovery contract, exposed alongside plan
// generation so callers wire a single service.
func (s *Service) ScoreRecovery(current, baseline recovery.Readings) recovery.Result {
	return recovery.Score(current, baseline)
}

// Save persists res for userID under a fresh plan ID.
func (s *Service) Save(ctx context.Context, userID string, res *Result) (*Record, error) {
	if s.plans == nil {
		return nil, ErrNoPlanStore
	}

	rec := &Record{
		ID:        uuid.New().String(),
		UserID:    userID,
		Result:    *res,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.plans.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}

	s.logger.Debug("saved plan", xslog.UserID(userID), xslog.PlanID(rec.ID))
	return rec, nil
}

// Latest returns the newest saved plan for userID, nil when none.
func (s *Service) Latest(ctx context.Context, userID string) (*Record, error) {
	if s.plans == nil {
		return nil, ErrNoPlanStore
	}

	rec, err := s.plans.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading latest plan: %w", err)
	}
	return rec, nil
}

// mergePreferences fills unset preference fields from the profile, so
// stored profile choices apply unless the request overrides them.
func mergePreferences(p profile.Profile, prefs mealplan.Preferences) mealplan.Preferences {
	if prefs.DietaryType == "" {
		prefs.DietaryType = p.DietaryType
	}
	if len(prefs.ExcludedFoods) == 0 {
		prefs.ExcludedFoods = p.ExcludedFoods
	}
	if prefs.MealCount == 0 {
		prefs.MealCount = p.MealsPerDay
	}
	return prefs
}
