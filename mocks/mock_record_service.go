package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cropai/internal/domain"
)

// MockRecordService is a mock implementation of service.RecordService.
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) List(ctx context.Context, kind domain.RecordKind) ([]domain.Record, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordService) GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.Record, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordService) Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}
