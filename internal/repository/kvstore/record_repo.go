package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cropai/internal/domain"
	"cropai/internal/port"
)

// RecordRepo persists the per-kind record collections, each as one ordered
// JSON list. Single-writer: every mutation is a read-modify-write of the
// whole collection, matching the local-storage semantics of the original.
type RecordRepo struct {
	store port.KeyValueStore
}

// NewRecordRepo creates a RecordRepo over the given store.
func NewRecordRepo(store port.KeyValueStore) *RecordRepo {
	return &RecordRepo{store: store}
}

func collectionKey(kind domain.RecordKind) string {
	return fmt.Sprintf("%s_records", kind)
}

func (r *RecordRepo) List(ctx context.Context, kind domain.RecordKind) ([]domain.Record, error) {
	raw, err := r.store.Get(ctx, collectionKey(kind))
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling %s collection: %w", kind, err)
	}
	return records, nil
}

func (r *RecordRepo) GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.Record, error) {
	records, err := r.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *RecordRepo) Append(ctx context.Context, kind domain.RecordKind, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	existing, err := r.List(ctx, kind)
	if err != nil {
		return err
	}
	return r.write(ctx, kind, append(existing, records...))
}

func (r *RecordRepo) Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	records, err := r.List(ctx, kind)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == id {
			return r.write(ctx, kind, append(records[:i], records[i+1:]...))
		}
	}
	return domain.ErrRecordNotFound
}

func (r *RecordRepo) Clear(ctx context.Context, kind domain.RecordKind) error {
	return r.store.Delete(ctx, collectionKey(kind))
}

func (r *RecordRepo) write(ctx context.Context, kind domain.RecordKind, records []domain.Record) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling %s collection: %w", kind, err)
	}
	return r.store.Set(ctx, collectionKey(kind), raw)
}
