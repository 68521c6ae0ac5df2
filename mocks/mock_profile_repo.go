package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cropai/internal/domain"
)

// MockProfileRepo is a mock implementation of port.ProfileRepository.
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context) (*domain.FarmProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmProfile), args.Error(1)
}

func (m *MockProfileRepo) Save(ctx context.Context, profile *domain.FarmProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepo) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
