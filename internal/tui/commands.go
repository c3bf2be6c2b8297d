package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/recovery"
	"github.com/nutrisync/nutrisync/internal/repository"
)

func loadDashboardCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		var (
			ctx = context.Background()
			msg = DashboardDataMsg{}
		)

		metrics, err := deps.Store.Metrics.Latest(ctx, deps.UserID)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Metrics = metrics

		rec, err := deps.Service.Latest(ctx, deps.UserID)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Plan = rec

		readings, err := sleepReadings(ctx, deps)
		if err != nil {
			msg.Err = err
			return msg
		}
		if len(readings) > 0 {
			current := readings[len(readings)-1]
			baseline := recovery.BaselineFrom(readings[:len(readings)-1])
			result := deps.Service.ScoreRecovery(current, baseline)
			msg.Recovery = &result
		}

		return msg
	}
}

// sleepReadings pages through the default window's sleep samples in
// timestamp order. The range end names a calendar day, so the query
// window extends past it to cover that day's samples.
func sleepReadings(ctx context.Context, deps Deps) ([]recovery.Readings, error) {
	rng := aggregate.LastNDays(time.Now().UTC(), aggregate.DefaultDays)
	end := rng.End.Add(24 * time.Hour)

	var readings []recovery.Readings
	params := &repository.CursorParams{Limit: repository.DefaultPageSize}
	for {
		page, err := deps.Store.Samples.SleepByDateRange(ctx, deps.UserID, rng.Start, end, params)
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
