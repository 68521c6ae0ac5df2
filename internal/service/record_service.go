package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"cropai/internal/domain"
	"cropai/internal/port"
)

// RecordService defines the persisted-record contract. Every operation
// checks that the profile's role may reach the requested collection.
type RecordService interface {
	List(ctx context.Context, kind domain.RecordKind) ([]domain.Record, error)
	GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.Record, error)
	Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error
}

type recordService struct {
	profileRepo port.ProfileRepository
	recordRepo  port.RecordRepository
}

// NewRecordService creates a new RecordService implementation.
func NewRecordService(profileRepo port.ProfileRepository, recordRepo port.RecordRepository) RecordService {
	return &recordService{profileRepo: profileRepo, recordRepo: recordRepo}
}

func (s *recordService) requireAccess(ctx context.Context, kind domain.RecordKind) error {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return err
	}
	if !profile.Role.CanAccess(kind) {
		return domain.ErrRoleForbidden
	}
	return nil
}

func (s *recordService) List(ctx context.Context, kind domain.RecordKind) ([]domain.Record, error) {
	if err := s.requireAccess(ctx, kind); err != nil {
		return nil, err
	}
	return s.recordRepo.List(ctx, kind)
}

func (s *recordService) GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.Record, error) {
	if err := s.requireAccess(ctx, kind); err != nil {
		return nil, err
	}
	return s.recordRepo.GetByID(ctx, kind, id)
}

func (s *recordService) Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	if err := s.requireAccess(ctx, kind); err != nil {
		return err
	}
	log.Printf("recordService.Delete: deleting %s record %s", kind, id)
	return s.recordRepo.Delete(ctx, kind, id)
}
