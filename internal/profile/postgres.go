package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps profiles in the shared Postgres instance.
type PostgresStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const pgGetProfile = `
SELECT user_id, name, age, weight_kg, height_cm, gender, activity_level, goal,
       weekly_activity_target, meals_per_day, dietary_type, excluded_foods,
       created_at, updated_at
FROM profiles
WHERE user_id = $1`

func (s *PostgresStore) Get(ctx context.Context, userID string) (*Profile, error) {
	var (
		p     Profile
		foods *string
	)
	err := s.db.QueryRow(ctx, pgGetProfile, userID).Scan(
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
	if errors.Is(err, pgx.ErrNoRows) {
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

const pgUpsertProfile = `
INSERT INTO profiles (
	user_id, name, age, weight_kg, height_cm, gender, activity_level, goal,
	weekly_activity_target, meals_per_day, dietary_type, excluded_foods
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (user_id) DO UPDATE SET
	name = EXCLUDED.name,
	age = EXCLUDED.age,
	weight_kg = EXCLUDED.weight_kg,
	height_cm = EXCLUDED.height_cm,
	gender = EXCLUDED.gender,
	activity_level = EXCLUDED.activity_level,
	goal = EXCLUDED.goal,
	weekly_activity_target = EXCLUDED.weekly_activity_target,
	meals_per_day = EXCLUDED.meals_per_day,
	dietary_type = EXCLUDED.dietary_type,
	excluded_foods = EXCLUDED.excluded_foods,
	updated_at = now()
RETURNING created_at, updated_at`

func (s *PostgresStore) Upsert(ctx context.Context, p *Profile) error {
	if err := validate(p); err != nil {
		return err
	}

	foods, err := encodeExcludedFoods(p.ExcludedFoods)
	if err != nil {
		return err
	}

	err = s.db.QueryRow(ctx, pgUpsertProfile,
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
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}
