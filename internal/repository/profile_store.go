package repository

import (
	"alcyxob/workout-planner/internal/domain"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ProfileStore persists the user profile and the current plan as JSON blobs
// under KeyCurrentUser and KeyWorkoutPlan.
type ProfileStore struct {
	kv StateStore
}

// NewProfileStore wraps a key/value backend.
func NewProfileStore(kv StateStore) *ProfileStore {
	return &ProfileStore{kv: kv}
}

// LoadProfile returns (nil, nil) when no profile is stored. A stored value
// that does not decode into a valid profile is reported as a
// storage-corruption error.
func (s *ProfileStore) LoadProfile(ctx context.Context) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	found, err := s.load(ctx, KeyCurrentUser, &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

// LoadPlan returns (nil, nil) when no plan is stored.
func (s *ProfileStore) LoadPlan(ctx context.Context) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	found, err := s.load(ctx, KeyWorkoutPlan, &plan)
	if err != nil || !found {
		return nil, err
	}
	return &plan, nil
}

// SaveProfile replaces the stored profile.
func (s *ProfileStore) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return s.save(ctx, KeyCurrentUser, profile)
}

// SavePlan replaces the stored plan.
func (s *ProfileStore) SavePlan(ctx context.Context, plan domain.WorkoutPlan) error {
	return s.save(ctx, KeyWorkoutPlan, plan)
}

// DeletePlan removes the stored plan and keeps the profile.
func (s *ProfileStore) DeletePlan(ctx context.Context) error {
	return s.kv.Delete(ctx, KeyWorkoutPlan)
}

// DeleteAll removes both keys, as on logout.
func (s *ProfileStore) DeleteAll(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyCurrentUser); err != nil {
		return err
	}
	return s.kv.Delete(ctx, KeyWorkoutPlan)
}

// Reset wipes every key of the scope. Used to recover from corruption.
func (s *ProfileStore) Reset(ctx context.Context) error {
	return s.kv.Clear(ctx)
}

// validatable is a stored value that can check its own shape.
type validatable interface {
	Validate() error
}

// load decodes key into dst. A JSON null counts as absent; a value that does
// not decode or fails validation is reported as corruption.
func (s *ProfileStore) load(ctx context.Context, key string, dst validatable) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, domain.NewError(domain.KindStorageCorruption, "stored "+key+" is not valid JSON", err)
	}
	if err := dst.Validate(); err != nil {
		return false, domain.NewError(domain.KindStorageCorruption, "stored "+key+" is incomplete", err)
	}
	return true, nil
}

func (s *ProfileStore) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Put(ctx, key, raw)
}
