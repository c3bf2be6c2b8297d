package xsync

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nutrisync/nutrisync/internal/client/wearable"
	"github.com/nutrisync/nutrisync/internal/xslog"
)

const (
	// DefaultBackfillDays is used when the caller passes days <= 0.
	DefaultBackfillDays = 30

	backfillPageSize = 25
)

func (s *Service) Backfill(ctx context.Context, userID string, days int) error {
	if days <= 0 {
		days = DefaultBackfillDays
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	s.logger.InfoContext(ctx, "starting backfill",
		xslog.UserID(userID),
		xslog.Days(days))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.backfillActivity(gctx, userID, start, end) })
	g.Go(func() error { return s.backfillSleep(gctx, userID, start, end) })
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "backfill complete", xslog.UserID(userID))
	return nil
}

func (s *Service) backfillActivity(ctx context.Context, userID string, start, end time.Time) error {
	s.logger.InfoContext(ctx, "backfilling activity",
		xslog.Start(start),
		xslog.End(end))

	params := &wearable.ListParams{
		Start: &start,
		End:   &end,
		Limit: backfillPageSize,
	}

	total := 0
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		resp, err := s.client.Activity.List(ctx, params)
		if err != nil {
			return fmt.Errorf("listing activity: %w", err)
		}

		samples := activitySamples(resp.Records)
		if err := s.repos.Samples.UpsertActivity(ctx, userID, samples); err != nil {
			return fmt.Errorf("upserting activity batch: %w", err)
		}

		total += len(resp.Records)

		if !resp.HasMore() {
			break
		}
		params.NextToken = resp.NextToken
	}

	s.logger.InfoContext(ctx, "backfilled activity", xslog.Count(total))
	return nil
}

func (s *Service) backfillSleep(ctx context.Context, userID string, start, end time.Time) error {
	s.logger.InfoContext(ctx, "backfilling sleep",
		xslog.Start(start),
		xslog.End(end))

	params := &wearable.ListParams{
		Start: &start,
		End:   &end,
		Limit: backfillPageSize,
	}

	total := 0
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		resp, err := s.client.Sleep.List(ctx, params)
		if err != nil {
			return fmt.Errorf("listing sleep: %w", err)
		}

		samples := sleepSamples(resp.Records)
		if err := s.repos.Samples.UpsertSleep(ctx, userID, samples); err != nil {
			return fmt.Errorf("upserting sleep batch: %w", err)
		}

		total += len(resp.Records)

		if !resp.HasMore() {
			break
		}
		params.NextToken = resp.NextToken
	}

	s.logger.InfoContext(ctx, "backfilled sleep", xslog.Count(total))
	return nil
}
