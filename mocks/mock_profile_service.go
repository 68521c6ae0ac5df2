package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cropai/internal/domain"
	"cropai/internal/service"
)

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Onboard(ctx context.Context, input service.ProfileInput) (*domain.FarmProfile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmProfile), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context) (*domain.FarmProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmProfile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, input service.ProfileInput) (*domain.FarmProfile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmProfile), args.Error(1)
}

func (m *MockProfileService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
