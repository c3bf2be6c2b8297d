package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/repository"
)

type sampleStore struct {
	db *sql.DB
}

var _ repository.SampleRepository = (*sampleStore)(nil)

const upsertActivitySample = `
INSERT INTO activity_samples (
	user_id, ts, platform, steps, calories_burned,
	fairly_active_minutes, very_active_minutes, resting_heart_rate
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, platform, ts) DO UPDATE SET
	steps = excluded.steps,
	calories_burned = excluded.calories_burned,
	fairly_active_minutes = excluded.fairly_active_minutes,
	very_active_minutes = excluded.very_active_minutes,
	resting_heart_rate = excluded.resting_heart_rate`

func (s *sampleStore) UpsertActivity(ctx context.Context, userID string, samples []aggregate.ActivitySample) error {
	for i := range samples {
		sm := &samples[i]
		_, err := s.db.ExecContext(ctx, upsertActivitySample,
			userID,
			sm.Timestamp,
			string(sm.Platform),
			sm.Steps,
			sm.CaloriesBurned,
			sm.FairlyActiveMinutes,
			sm.VeryActiveMinutes,
			sm.RestingHeartRate,
		)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

const upsertSleepSample = `
INSERT INTO sleep_samples (
	user_id, ts, platform, duration_ns, deep_sleep_ns, time_in_bed_ns,
	efficiency, score, hrv_millis
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, platform, ts) DO UPDATE SET
	duration_ns = excluded.duration_ns,
	deep_sleep_ns = excluded.deep_sleep_ns,
	time_in_bed_ns = excluded.time_in_bed_ns,
	efficiency = excluded.efficiency,
	score = excluded.score,
	hrv_millis = excluded.hrv_millis`

func (s *sampleStore) UpsertSleep(ctx context.Context, userID string, samples []aggregate.SleepSample) error {
	for i := range samples {
		sm := &samples[i]
		_, err := s.db.ExecContext(ctx, upsertSleepSample,
			userID,
			sm.Timestamp,
			string(sm.Platform),
			int64(sm.Duration),
			int64(sm.DeepSleep),
			int64(sm.TimeInBed),
			sm.Efficiency,
			sm.Score,
			sm.HRVMillis,
		)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

const (
	getActivityByDateRange = `
SELECT ts, platform, steps, calories_burned,
       fairly_active_minutes, very_active_minutes, resting_heart_rate
FROM activity_samples
WHERE user_id = ? AND ts >= ? AND ts <= ?
ORDER BY ts
LIMIT ?`

	getActivityByDateRangeCursor = `
SELECT ts, platform, steps, calories_burned,
       fairly_active_minutes, very_active_minutes, resting_heart_rate
FROM activity_samples
WHERE user_id = ? AND ts >= ? AND ts <= ? AND ts > ?
ORDER BY ts
LIMIT ?`
)

func (s *sampleStore) ActivityByDateRange(ctx context.Context, userID string, start, end time.Time, cursor *repository.CursorParams) (*repository.CursorResult[aggregate.ActivitySample], error) {
	limit := repository.DefaultPageSize
	if cursor != nil && cursor.Limit > 0 {
		limit = cursor.Limit
	}

	fetchLimit := limit + 1

	var (
		rows *sql.Rows
		err  error
	)

	if cursor != nil && cursor.Cursor != nil {
		rows, err = s.db.QueryContext(ctx, getActivityByDateRangeCursor, userID, start, end, *cursor.Cursor, fetchLimit)
	} else {
		rows, err = s.db.QueryContext(ctx, getActivityByDateRange, userID, start, end, fetchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []aggregate.ActivitySample
	for rows.Next() {
		var (
			sm       aggregate.ActivitySample
			platform string
		)
		if err := rows.Scan(
			&sm.Timestamp,
			&platform,
			&sm.Steps,
			&sm.CaloriesBurned,
			&sm.FairlyActiveMinutes,
			&sm.VeryActiveMinutes,
			&sm.RestingHeartRate,
		); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		sm.Platform = aggregate.Platform(platform)
		samples = append(samples, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return pageOf(samples, limit, func(sm aggregate.ActivitySample) time.Time { return sm.Timestamp }), nil
}

const (
	getSleepByDateRange = `
SELECT ts, platform, duration_ns, deep_sleep_ns, time_in_bed_ns,
       efficiency, score, hrv_millis
FROM sleep_samples
WHERE user_id = ? AND ts >= ? AND ts <= ?
ORDER BY ts
LIMIT ?`

	getSleepByDateRangeCursor = `
SELECT ts, platform, duration_ns, deep_sleep_ns, time_in_bed_ns,
       efficiency, score, hrv_millis
FROM sleep_samples
WHERE user_id = ? AND ts >= ? AND ts <= ? AND ts > ?
ORDER BY ts
LIMIT ?`
)

func (s *sampleStore) SleepByDateRange(ctx context.Context, userID string, start, end time.Time, cursor *repository.CursorParams) (*repository.CursorResult[aggregate.SleepSample], error) {
	limit := repository.DefaultPageSize
	if cursor != nil && cursor.Limit > 0 {
		limit = cursor.Limit
	}

	fetchLimit := limit + 1

	var (
		rows *sql.Rows
		err  error
	)

	if cursor != nil && cursor.Cursor != nil {
		rows, err = s.db.QueryContext(ctx, getSleepByDateRangeCursor, userID, start, end, *cursor.Cursor, fetchLimit)
	} else {
		rows, err = s.db.QueryContext(ctx, getSleepByDateRange, userID, start, end, fetchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []aggregate.SleepSample
	for rows.Next() {
		var (
			sm                        aggregate.SleepSample
			platform                  string
			durationNS, deepNS, bedNS int64
		)
		if err := rows.Scan(
			&sm.Timestamp,
			&platform,
			&durationNS,
			&deepNS,
			&bedNS,
			&sm.Efficiency,
			&sm.Score,
			&sm.HRVMillis,
		); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		sm.Platform = aggregate.Platform(platform)
		sm.Duration = time.Duration(durationNS)
		sm.DeepSleep = time.Duration(deepNS)
		sm.TimeInBed = time.Duration(bedNS)
		samples = append(samples, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return pageOf(samples, limit, func(sm aggregate.SleepSample) time.Time { return sm.Timestamp }), nil
}

func pageOf[T any](records []T, limit int, ts func(T) time.Time) *repository.CursorResult[T] {
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	result := &repository.CursorResult[T]{Records: records}
	if hasMore && len(records) > 0 {
		last := ts(records[len(records)-1])
		result.NextCursor = &last
	}
	return result
}
