package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/xsync"
)

const seedDays = 14

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the local store with synthetic samples",
		Long:  "Writes two weeks of synthetic activity and sleep data so the dashboard and plan commands work without a wearable token.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to open local store: %w", err)
			}
			defer func() { _ = st.Close() }()

			today := time.Now().UTC().Truncate(24 * time.Hour)

			activity := make([]aggregate.ActivitySample, 0, seedDays)
			sleep := make([]aggregate.SleepSample, 0, seedDays)
			for i := 0; i < seedDays; i++ {
				day := today.AddDate(0, 0, -i)

				activity = append(activity, aggregate.ActivitySample{
					Timestamp:           day.Add(12 * time.Hour),
					Platform:            aggregate.PlatformFitbit,
					Steps:               7000 + (i*937)%5000,
					CaloriesBurned:      2200 + float64((i*131)%600),
					FairlyActiveMinutes: 20 + (i*7)%25,
					VeryActiveMinutes:   10 + (i*5)%20,
					RestingHeartRate:    float64(58 + (i*3)%9),
				})

				duration := 6*time.Hour + 30*time.Minute + time.Duration((i*23)%120)*time.Minute
				sleep = append(sleep, aggregate.SleepSample{
					Timestamp:  day.Add(7 * time.Hour),
					Platform:   aggregate.PlatformFitbit,
					Duration:   duration,
					DeepSleep:  time.Hour + time.Duration((i*13)%45)*time.Minute,
					TimeInBed:  duration + 25*time.Minute,
					Efficiency: float64(88 + (i*5)%10),
					Score:      float64(70 + (i*11)%25),
					HRVMillis:  float64(45 + (i*3)%20),
				})
			}

			if err := st.Samples.UpsertActivity(ctx, localUserID, activity); err != nil {
				return fmt.Errorf("failed to seed activity: %w", err)
			}
			if err := st.Samples.UpsertSleep(ctx, localUserID, sleep); err != nil {
				return fmt.Errorf("failed to seed sleep: %w", err)
			}

			// Fold the seeded samples into a metrics window so reads see
			// them immediately.
			svc := xsync.NewService(nil, xsync.Repos{
				Profiles: st.Profiles,
				Samples:  st.Samples,
				Metrics:  st.Metrics,
			}, nil, quietLogger())
			if _, err := svc.Aggregate(ctx, localUserID, aggregate.DateRange{}); err != nil {
				return fmt.Errorf("failed to aggregate seeded samples: %w", err)
			}

			fmt.Printf("seeded %d days of synthetic samples\n", seedDays)
			return nil
		},
	}
}
