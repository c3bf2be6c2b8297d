package profile

import (
	"context"
	"fmt"

	go_json "github.com/goccy/go-json"

	"github.com/nutrisync/nutrisync/internal/validator"
	"github.com/nutrisync/nutrisync/internal/xerrors"
)

// Store persists profiles keyed by user ID.
type Store interface {
	// Get returns the profile for userID, or nil when none exists.
	Get(ctx context.Context, userID string) (*Profile, error)
	// Upsert validates p and writes it, replacing any existing profile
	// for the same user. Validation failures are returned before any
	// write happens.
	Upsert(ctx context.Context, p *Profile) error
	// Delete removes the profile for userID. Deleting a missing
	// profile is not an error.
	Delete(ctx context.Context, userID string) error
}

func validate(p *Profile) error {
	if p == nil {
		return xerrors.BadRequest(xerrors.WithMessage("profile is required"))
	}
	if p.UserID == "" {
		return xerrors.BadRequest(xerrors.WithMessage("user id is required"))
	}
	if err := validator.Validate(p); err != nil {
		return err
	}
	return nil
}

// encodeExcludedFoods serializes the exclusion list for a nullable JSON
// column. Empty lists are stored as NULL so unset and empty read back
// the same.
func encodeExcludedFoods(foods []string) (*string, error) {
	if len(foods) == 0 {
		return nil, nil
	}
	b, err := go_json.Marshal(foods)
	if err != nil {
		return nil, fmt.Errorf("encoding excluded foods: %w", err)
	}
	s := string(b)
	return &s, nil
}

func decodeExcludedFoods(raw string, dst *[]string) error {
	if err := go_json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decoding excluded foods: %w", err)
	}
	return nil
}
