package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/client/wearable"
	"github.com/nutrisync/nutrisync/internal/config"
	"github.com/nutrisync/nutrisync/internal/insight"
	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/repository"
	"github.com/nutrisync/nutrisync/internal/session"
	"github.com/nutrisync/nutrisync/internal/store"
	"github.com/nutrisync/nutrisync/internal/xslog"
	"github.com/nutrisync/nutrisync/internal/xsync"
)

func syncCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Backfill wearable data into the local store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			if cfg.WearableToken == "" {
				return fmt.Errorf("WEARABLE_API_TOKEN is not set")
			}
			if days <= 0 {
				days = cfg.SyncDays
			}

			st, err := openStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to open local store: %w", err)
			}
			defer func() { _ = st.Close() }()

			logger := xslog.NewLoggerFromEnv(os.Stderr)
			client := wearable.New(
				oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.WearableToken}),
				wearable.WithBaseURL(cfg.WearableURL),
				wearable.WithTimeout(cfg.HTTPTimeout),
				wearable.WithSessionID(session.NewID()),
				wearable.WithLogger(logger),
			)
			// Verify the token before starting the backfill.
			account, err := client.Profile.Get(ctx)
			if err != nil {
				return fmt.Errorf("wearable api rejected the token: %w", err)
			}
			fmt.Printf("syncing %d days from %s\n", days, strings.Join(account.Platforms, ", "))

			svc := xsync.NewService(client, xsync.Repos{
				Profiles: st.Profiles,
				Samples:  st.Samples,
				Metrics:  st.Metrics,
			}, nil, logger)

			if err := svc.Backfill(ctx, localUserID, days); err != nil {
				return fmt.Errorf("backfill failed: %w", err)
			}

			// Re-aggregate the default window so the dashboard and plan
			// commands read fresh metrics.
			m, err := svc.Aggregate(ctx, localUserID, aggregate.DateRange{})
			if err != nil {
				return fmt.Errorf("aggregation failed: %w", err)
			}

			printSyncSummary(m)
			return printInsights(ctx, st, m)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "days of history to backfill (default SYNC_DAYS)")
	return cmd
}

func printSyncSummary(m *aggregate.Metrics) {
	fmt.Println(headerStyle.Render("SYNCED"))
	if m.NoData {
		fmt.Println(dimStyle.Render("  no samples in the window"))
		return
	}
	fmt.Printf("  activity  %d days\n", m.ActivityDays)
	fmt.Printf("  sleep     %d days\n", m.SleepDays)
	if m.ActivityDays > 0 {
		fmt.Printf("  avg       %.0f steps/day, %.0f kcal/day burned\n", m.AvgDailySteps, m.AvgDailyCaloriesBurned)
	}
	if m.SleepDays > 0 {
		fmt.Printf("  sleep     %.1fh/night, quality %s\n", m.AvgSleepDuration, m.SleepQuality)
	}
	if m.RecommendedCalories > 0 {
		fmt.Printf("  intake    %d kcal/day recommended\n", m.RecommendedCalories)
	}
}

// printInsights runs the rule scorer over the freshly synced window and
// prints one line per insight.
func printInsights(ctx context.Context, st *store.Store, m *aggregate.Metrics) error {
	bpm, durations, err := loadInsightSamples(ctx, st, m.DateRange)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}

	p, err := st.Profiles.Get(ctx, localUserID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		p = &profile.Profile{}
	}

	scorer := insight.RuleScorer{}
	insights := []insight.Insight{
		scorer.AnalyzeHeartRate(bpm),
		scorer.AnalyzeSleep(durations),
		scorer.AnalyzeRecovery(*m),
		scorer.AnalyzeNutrition(*p),
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("INSIGHTS"))
	for _, in := range insights {
		fmt.Printf("  %s %s\n", levelBadge(in.Level), in.Message)
		for _, rec := range in.Recommendations {
			fmt.Println(dimStyle.Render("       - " + rec))
		}
	}
	return nil
}

// loadInsightSamples pages the window's raw samples and pulls out the
// series the analyzers want. The range end names a calendar day, so the
// query window extends past it to cover that day's samples.
func loadInsightSamples(ctx context.Context, st *store.Store, rng aggregate.DateRange) (bpm []float64, durations []time.Duration, err error) {
	end := rng.End.Add(24 * time.Hour)

	cursor := &repository.CursorParams{Limit: repository.DefaultPageSize}
	for {
		page, err := st.Samples.ActivityByDateRange(ctx, localUserID, rng.Start, end, cursor)
		if err != nil {
			return nil, nil, err
		}
		for _, s := range page.Records {
			if s.RestingHeartRate > 0 {
				bpm = append(bpm, s.RestingHeartRate)
			}
		}
		if page.NextCursor == nil {
			break
		}
		cursor.Cursor = page.NextCursor
	}

	cursor = &repository.CursorParams{Limit: repository.DefaultPageSize}
	for {
		page, err := st.Samples.SleepByDateRange(ctx, localUserID, rng.Start, end, cursor)
		if err != nil {
			return nil, nil, err
		}
		for _, s := range page.Records {
			durations = append(durations, s.Duration)
		}
		if page.NextCursor == nil {
			break
		}
		cursor.Cursor = page.NextCursor
	}

	return bpm, durations, nil
}

func levelBadge(level insight.Level) string {
	switch level {
	case insight.LevelSuccess:
		return successStyle.Render("ok  ")
	case insight.LevelWarning:
		return warnStyle.Render("warn")
	case insight.LevelInfo:
		return labelStyle.Render("info")
	default:
		return dimStyle.Render("n/a ")
	}
}
