package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cropai/internal/domain"
)

// MockRecordRepo is a mock implementation of port.RecordRepository.
type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) List(ctx context.Context, kind domain.RecordKind) ([]domain.Record, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordRepo) GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.Record, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepo) Append(ctx context.Context, kind domain.RecordKind, records []domain.Record) error {
	args := m.Called(ctx, kind, records)
	return args.Error(0)
}

func (m *MockRecordRepo) Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockRecordRepo) Clear(ctx context.Context, kind domain.RecordKind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}
