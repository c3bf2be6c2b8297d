package xsync

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/repository"
	"github.com/nutrisync/nutrisync/internal/xslog"
)

// metricsTTL bounds how stale a cached metrics window can get before
// reads fall through to the repository.
const metricsTTL = 15 * time.Minute

func (s *Service) Aggregate(ctx context.Context, userID string, rng aggregate.DateRange) (*aggregate.Metrics, error) {
	if rng.IsZero() {
		rng = aggregate.LastNDays(time.Now(), aggregate.DefaultDays)
	}

	activity, err := s.loadActivity(ctx, userID, rng)
	if err != nil {
		return nil, err
	}
	sleep, err := s.loadSleep(ctx, userID, rng)
	if err != nil {
		return nil, err
	}

	m := aggregate.Aggregate(activity, sleep, rng)

	if err := s.enrich(ctx, userID, &m); err != nil {
		return nil, err
	}

	if err := s.repos.Metrics.Upsert(ctx, userID, m); err != nil {
		return nil, fmt.Errorf("storing metrics: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, m, metricsTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to cache metrics", xslog.Error(err))
		}
	}

	s.logger.DebugContext(ctx, "aggregated metrics",
		xslog.UserID(userID),
		xslog.Days(rng.Days()))

	return &m, nil
}

// rng.End names a calendar day, so the query window extends past it to
// cover that day's samples. The aggregation fold refilters per day.
func (s *Service) loadActivity(ctx context.Context, userID string, rng aggregate.DateRange) ([]aggregate.ActivitySample, error) {
	end := rng.End.Add(24 * time.Hour)

	var (
		all    []aggregate.ActivitySample
		cursor *time.Time
	)
	for {
		page, err := s.repos.Samples.ActivityByDateRange(ctx, userID, rng.Start, end, &repository.CursorParams{Cursor: cursor})
		if err != nil {
			return nil, fmt.Errorf("loading activity samples: %w", err)
		}
		all = append(all, page.Records...)
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}
	return all, nil
}

func (s *Service) loadSleep(ctx context.Context, userID string, rng aggregate.DateRange) ([]aggregate.SleepSample, error) {
	end := rng.End.Add(24 * time.Hour)

	var (
		all    []aggregate.SleepSample
		cursor *time.Time
	)
	for {
		page, err := s.repos.Samples.SleepByDateRange(ctx, userID, rng.Start, end, &repository.CursorParams{Cursor: cursor})
		if err != nil {
			return nil, fmt.Errorf("loading sleep samples: %w", err)
		}
		all = append(all, page.Records...)
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}
	return all, nil
}

// enrich fills the estimator-derived fields from the user's profile.
// A missing or incomplete profile leaves them zero.
func (s *Service) enrich(ctx context.Context, userID string, m *aggregate.Metrics) error {
	p, err := s.repos.Profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}
	if p == nil || p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return nil
	}

	bmr := nutrition.DefaultEstimator.BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := nutrition.TDEE(bmr, p.ActivityLevel, 0, nutrition.TDEEMultiplier)
	targets := nutrition.DefaultPlanner.Plan(p.WeightKg, tdee, p.Goal)

	m.EstimatedBMR = int(math.Round(bmr))
	m.RecommendedCalories = int(math.Round(tdee))
	m.RecommendedMacros = aggregate.MacroGrams{
		Protein: targets.Macros.Protein.Grams,
		Carbs:   targets.Macros.Carbs.Grams,
		Fat:     targets.Macros.Fat.Grams,
	}
	return nil
}
