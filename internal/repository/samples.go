package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrisync/nutrisync/internal/aggregate"
)

type sampleRepo struct {
	db *pgxpool.Pool
}

var _ SampleRepository = (*sampleRepo)(nil)

const upsertActivitySample = `
INSERT INTO activity_samples (
	user_id, ts, platform, steps, calories_burned,
	fairly_active_minutes, very_active_minutes, resting_heart_rate
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, platform, ts) DO UPDATE SET
	steps = EXCLUDED.steps,
	calories_burned = EXCLUDED.calories_burned,
	fairly_active_minutes = EXCLUDED.fairly_active_minutes,
	very_active_minutes = EXCLUDED.very_active_minutes,
	resting_heart_rate = EXCLUDED.resting_heart_rate`

func (r *sampleRepo) UpsertActivity(ctx context.Context, userID string, samples []aggregate.ActivitySample) error {
	for i := range samples {
		s := &samples[i]
		_, err := r.db.Exec(ctx, upsertActivitySample,
			userID,
			s.Timestamp,
			string(s.Platform),
			s.Steps,
			s.CaloriesBurned,
			s.FairlyActiveMinutes,
			s.VeryActiveMinutes,
			s.RestingHeartRate,
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
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id, platform, ts) DO UPDATE SET
	duration_ns = EXCLUDED.duration_ns,
	deep_sleep_ns = EXCLUDED.deep_sleep_ns,
	time_in_bed_ns = EXCLUDED.time_in_bed_ns,
	efficiency = EXCLUDED.efficiency,
	score = EXCLUDED.score,
	hrv_millis = EXCLUDED.hrv_millis`

func (r *sampleRepo) UpsertSleep(ctx context.Context, userID string, samples []aggregate.SleepSample) error {
	for i := range samples {
		s := &samples[i]
		_, err := r.db.Exec(ctx, upsertSleepSample,
			userID,
			s.Timestamp,
			string(s.Platform),
			int64(s.Duration),
			int64(s.DeepSleep),
			int64(s.TimeInBed),
			s.Efficiency,
			s.Score,
			s.HRVMillis,
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
WHERE user_id = $1 AND ts >= $2 AND ts <= $3
ORDER BY ts
LIMIT $4`

	getActivityByDateRangeCursor = `
SELECT ts, platform, steps, calories_burned,
       fairly_active_minutes, very_active_minutes, resting_heart_rate
FROM activity_samples
WHERE user_id = $1 AND ts >= $2 AND ts <= $3 AND ts > $4
ORDER BY ts
LIMIT $5`
)

func (r *sampleRepo) ActivityByDateRange(ctx context.Context, userID string, start, end time.Time, cursor *CursorParams) (*CursorResult[aggregate.ActivitySample], error) {
	limit := DefaultPageSize
	if cursor != nil && cursor.Limit > 0 {
		limit = cursor.Limit
	}

	fetchLimit := limit + 1

	var (
		rows pgx.Rows
		err  error
	)

	if cursor != nil && cursor.Cursor != nil {
		rows, err = r.db.Query(ctx, getActivityByDateRangeCursor, userID, start, end, *cursor.Cursor, fetchLimit)
	} else {
		rows, err = r.db.Query(ctx, getActivityByDateRange, userID, start, end, fetchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer rows.Close()

	var samples []aggregate.ActivitySample
	for rows.Next() {
		var s aggregate.ActivitySample
		if err := rows.Scan(
			&s.Timestamp,
			&s.Platform,
			&s.Steps,
			&s.CaloriesBurned,
			&s.FairlyActiveMinutes,
			&s.VeryActiveMinutes,
			&s.RestingHeartRate,
		); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return pageOf(samples, limit, func(s aggregate.ActivitySample) time.Time { return s.Timestamp }), nil
}

const (
	getSleepByDateRange = `
SELECT ts, platform, duration_ns, deep_sleep_ns, time_in_bed_ns,
       efficiency, score, hrv_millis
FROM sleep_samples
WHERE user_id = $1 AND ts >= $2 AND ts <= $3
ORDER BY ts
LIMIT $4`

	getSleepByDateRangeCursor = `
SELECT ts, platform, duration_ns, deep_sleep_ns, time_in_bed_ns,
       efficiency, score, hrv_millis
FROM sleep_samples
WHERE user_id = $1 AND ts >= $2 AND ts <= $3 AND ts > $4
ORDER BY ts
LIMIT $5`
)

func (r *sampleRepo) SleepByDateRange(ctx context.Context, userID string, start, end time.Time, cursor *CursorParams) (*CursorResult[aggregate.SleepSample], error) {
	limit := DefaultPageSize
	if cursor != nil && cursor.Limit > 0 {
		limit = cursor.Limit
	}

	fetchLimit := limit + 1

	var (
		rows pgx.Rows
		err  error
	)

	if cursor != nil && cursor.Cursor != nil {
		rows, err = r.db.Query(ctx, getSleepByDateRangeCursor, userID, start, end, *cursor.Cursor, fetchLimit)
	} else {
		rows, err = r.db.Query(ctx, getSleepByDateRange, userID, start, end, fetchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer rows.Close()

	var samples []aggregate.SleepSample
	for rows.Next() {
		var (
			s                         aggregate.SleepSample
			durationNS, deepNS, bedNS int64
		)
		if err := rows.Scan(
			&s.Timestamp,
			&s.Platform,
			&durationNS,
			&deepNS,
			&bedNS,
			&s.Efficiency,
			&s.Score,
			&s.HRVMillis,
		); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		s.Duration = time.Duration(durationNS)
		s.DeepSleep = time.Duration(deepNS)
		s.TimeInBed = time.Duration(bedNS)
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return pageOf(samples, limit, func(s aggregate.SleepSample) time.Time { return s.Timestamp }), nil
}

// pageOf trims an over-fetched page back to limit and derives the next
// cursor from the last record kept.
func pageOf[T any](records []T, limit int, ts func(T) time.Time) *CursorResult[T] {
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	result := &CursorResult[T]{Records: records}
	if hasMore && len(records) > 0 {
		last := ts(records[len(records)-1])
		result.NextCursor = &last
	}
	return result
}
