// Package kvstore implements the profile and record repositories on top of
// the key-value storage boundary, mirroring the named-collection layout of
// the original local store.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"cropai/internal/domain"
	"cropai/internal/port"
)

const profileKey = "farm_profile"

// ProfileRepo persists the singleton farm profile as one JSON blob.
type ProfileRepo struct {
	store port.KeyValueStore
}

// NewProfileRepo creates a ProfileRepo over the given store.
func NewProfileRepo(store port.KeyValueStore) *ProfileRepo {
	return &ProfileRepo{store: store}
}

func (r *ProfileRepo) Get(ctx context.Context) (*domain.FarmProfile, error) {
	raw, err := r.store.Get(ctx, profileKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile domain.FarmProfile
	if err := json.Unmarshal(raw, &profile); err != nil || profile.Validate() != nil {
		// A malformed stored payload is discarded; the caller re-onboards.
		log.Printf("profileRepo.Get: discarding malformed stored profile: %v", err)
		_ = r.store.Delete(ctx, profileKey)
		return nil, domain.ErrProfileNotFound
	}
	return &profile, nil
}

func (r *ProfileRepo) Save(ctx context.Context, profile *domain.FarmProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, profileKey, raw)
}

func (r *ProfileRepo) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, profileKey)
}
