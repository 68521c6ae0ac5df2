package port

import (
	"context"

	"github.com/google/uuid"

	"cropai/internal/domain"
)

// ProfileRepository persists the singleton farm profile.
type ProfileRepository interface {
	// Get returns the stored profile, or domain.ErrProfileNotFound when
	// absent. A malformed stored payload is discarded and reported as
	// domain.ErrProfileNotFound so the caller re-onboards.
	Get(ctx context.Context) (*domain.FarmProfile, error)
	Save(ctx context.Context, profile *domain.FarmProfile) error
	Delete(ctx context.Context) error
}

// RecordRepository persists the ordered per-kind record collections.
type RecordRepository interface {
	List(ctx context.Context, kind domain.RecordKind) ([]domain.Record, error)
	GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.Record, error)
	// Append adds records to the end of the kind's collection.
	Append(ctx context.Context, kind domain.RecordKind, records []domain.Record) error
	Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error
	// Clear discards the kind's whole collection.
	Clear(ctx context.Context, kind domain.RecordKind) error
}
