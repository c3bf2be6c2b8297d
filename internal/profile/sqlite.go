package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteStore keeps profiles in the local SQLite database used by the
// CLI and the TUI.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const sqliteGetProfile = `
SELECT user_id, name, age, weight_kg, height_cm, gender, activity_level, goal,
       weekly_activity_target, meals_per_day, dietary_type, excluded_foods,
       created_at, updated_at
FROM profiles
WHERE user_id = ?`

func (s *SQLiteStore) Get(ctx context.Context, userID string) (*Profile, error) {
	var (
		p     Profile
		foods *string
	)
	err := s.db.QueryRowContext(ctx, sqliteGetProfile, userID).Scan(
		&p.UserID,
		&p.Name,
		&p.Age,
		&p.WeightKg,
		&p.HeightCm,
		&p.Gender,
		&p.ActivityLevel,
		&p.Goal,
		&p.WeeklyActivityTarget,
		&p.MealsPerDay,
		&p.DietaryType,
		&foods,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	if foods != nil {
		if err := decodeExcludedFoods(*foods, &p.ExcludedFoods); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

const sqliteUpsertProfile = `
INSERT INTO profiles (
	user_id, name, age, weight_kg, height_cm, gender, activity_level, goal,
	weekly_activity_target, meals_per_day, dietary_type, excluded_foods,
	created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
	name = excluded.name,
	age = excluded.age,
	weight_kg = excluded.weight_kg,
	height_cm = excluded.height_cm,
	gender = excluded.gender,
	activity_level = excluded.activity_level,
	goal = excluded.goal,
	weekly_activity_target = excluded.weekly_activity_target,
	meals_per_day = excluded.meals_per_day,
	dietary_type = excluded.dietary_type,
	excluded_foods = excluded.excluded_foods,
	updated_at = excluded.updated_at
RETURNING created_at, updated_at`

func (s *SQLiteStore) Upsert(ctx context.Context, p *Profile) error {
	if err := validate(p); err != nil {
		return err
	}

	foods, err := encodeExcludedFoods(p.ExcludedFoods)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	err = s.db.QueryRowContext(ctx, sqliteUpsertProfile,
		p.UserID,
		p.Name,
		p.Age,
		p.WeightKg,
		p.HeightCm,
		string(p.Gender),
		string(p.ActivityLevel),
		string(p.Goal),
		p.WeeklyActivityTarget,
		p.MealsPerDay,
		p.DietaryType,
		foods,
		now,
		now,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}
