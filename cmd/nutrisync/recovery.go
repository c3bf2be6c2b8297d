package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/recovery"
	"github.com/nutrisync/nutrisync/internal/repository"
	"github.com/nutrisync/nutrisync/internal/store"
	"github.com/nutrisync/nutrisync/internal/tui/theme"
)

func recoveryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "recovery",
		Short: "Score recovery from synced sleep data",
		Long:  "Compares the latest sleep and HRV readings against the window's baseline and prints the recovery status with recommendations.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to open local store: %w", err)
			}
			defer func() { _ = st.Close() }()

			readings, err := loadSleepReadings(ctx, st, days)
			if err != nil {
				return fmt.Errorf("failed to load sleep data: %w", err)
			}
			if len(readings) == 0 {
				return fmt.Errorf("no sleep data in the last %d days, run: nutrisync sync", days)
			}

			current := readings[len(readings)-1]
			baseline := recovery.BaselineFrom(readings[:len(readings)-1])
			printRecovery(recovery.Score(current, baseline))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", aggregate.DefaultDays, "window of sleep data to score against")

	return cmd
}

// loadSleepReadings pages the window's sleep samples oldest first. The
// range end names a calendar day, so the query window extends past it
// to cover that day's samples.
func loadSleepReadings(ctx context.Context, st *store.Store, days int) ([]recovery.Readings, error) {
	rng := aggregate.LastNDays(time.Now().UTC(), days)
	end := rng.End.Add(24 * time.Hour)

	var readings []recovery.Readings
	params := &repository.CursorParams{Limit: repository.DefaultPageSize}
	for {
		page, err := st.Samples.SleepByDateRange(ctx, localUserID, rng.Start, end, params)
		if err != nil {
			return nil, err
		}
		for _, s := range page.Records {
			readings = append(readings, recovery.Readings{SleepScore: s.Score, HRVScore: s.HRVMillis})
		}
		if page.NextCursor == nil {
			break
		}
		params.Cursor = page.NextCursor
	}
	return readings, nil
}

func printRecovery(result recovery.Result) {
	label := strings.ToUpper(strings.ReplaceAll(string(result.Status), "_", " "))
	fmt.Println(recoveryStatusStyle(result.Status).Render(label))
	fmt.Printf("  sleep %.2fx baseline\n", result.SleepRatio)
	fmt.Printf("  hrv   %.2fx baseline\n", result.HRVRatio)
	fmt.Println()
	for _, rec := range result.Recommendations {
		fmt.Println("  - " + rec)
	}
}

func recoveryStatusStyle(s recovery.Status) lipgloss.Style {
	switch s {
	case recovery.StatusRecovered:
		return lipgloss.NewStyle().Foreground(theme.ColorHighRecovery).Bold(true)
	case recovery.StatusModerateRecovery:
		return lipgloss.NewStyle().Foreground(theme.ColorMediumRecovery).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.ColorLowRecovery).Bold(true)
	}
}
