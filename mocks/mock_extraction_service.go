package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cropai/internal/domain"
	"cropai/internal/review"
	"cropai/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) StartBatch(ctx context.Context, input service.StartBatchInput) (*review.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Session), args.Error(1)
}

func (m *MockExtractionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*review.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Session), args.Error(1)
}

func (m *MockExtractionService) UpdateDraft(ctx context.Context, sessionID, draftID uuid.UUID, data domain.RecordData) (*review.Session, error) {
	args := m.Called(ctx, sessionID, draftID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Session), args.Error(1)
}

func (m *MockExtractionService) RemoveDraft(ctx context.Context, sessionID, draftID uuid.UUID) (*review.Session, error) {
	args := m.Called(ctx, sessionID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Session), args.Error(1)
}

func (m *MockExtractionService) Commit(ctx context.Context, sessionID uuid.UUID) (*service.CommitResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommitResult), args.Error(1)
}

func (m *MockExtractionService) Cancel(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
