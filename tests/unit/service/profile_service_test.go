package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cropai/internal/domain"
	"cropai/internal/service"
	"cropai/mocks"
)

func farmerInput() service.ProfileInput {
	return service.ProfileInput{
		Name:     "Amina",
		Role:     domain.RoleFarmer,
		Language: "sw",
		Farmer:   &domain.FarmerDetails{Crops: []string{"maize", "beans"}, SurfaceHa: 2.5},
	}
}

func TestProfileService_Onboard_Succeeds(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewProfileService(profileRepo, recordRepo)

	profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrProfileNotFound)
	profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	profile, err := svc.Onboard(context.Background(), farmerInput())

	require.NoError(t, err)
	assert.Equal(t, "Amina", profile.Name)
	assert.Equal(t, domain.RoleFarmer, profile.Role)
	assert.Equal(t, "sw", profile.Language)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
	profileRepo.AssertExpectations(t)
}

func TestProfileService_Onboard_AlreadyExists(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(profileRepo, new(mocks.MockRecordRepo))

	profileRepo.On("Get", mock.Anything).Return(&domain.FarmProfile{Role: domain.RoleFarmer}, nil)

	_, err := svc.Onboard(context.Background(), farmerInput())

	assert.ErrorIs(t, err, domain.ErrProfileExists)
	profileRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileService_Onboard_RejectsMismatchedVariant(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(profileRepo, new(mocks.MockRecordRepo))

	profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrProfileNotFound)

	input := farmerInput()
	input.Role = domain.RoleSupplier // no supplier details attached

	_, err := svc.Onboard(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	profileRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileService_Onboard_RejectsUnknownRole(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(profileRepo, new(mocks.MockRecordRepo))

	profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrProfileNotFound)

	input := farmerInput()
	input.Role = domain.Role("landlord")

	_, err := svc.Onboard(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestProfileService_Update_PreservesCreatedAt(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(profileRepo, new(mocks.MockRecordRepo))

	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	existing := &domain.FarmProfile{
		Name:      "Amina",
		Role:      domain.RoleFarmer,
		Language:  "sw",
		Farmer:    &domain.FarmerDetails{Crops: []string{"maize"}},
		CreatedAt: created,
		UpdatedAt: created,
	}
	profileRepo.On("Get", mock.Anything).Return(existing, nil)
	profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	input := farmerInput()
	input.Name = "Amina W."

	profile, err := svc.Update(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Amina W.", profile.Name)
	assert.Equal(t, created, profile.CreatedAt)
	assert.True(t, profile.UpdatedAt.After(created))
}

func TestProfileService_Update_RequiresProfile(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewProfileService(profileRepo, new(mocks.MockRecordRepo))

	profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrProfileNotFound)

	_, err := svc.Update(context.Background(), farmerInput())

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileService_Logout_WipesProfileAndRecords(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewProfileService(profileRepo, recordRepo)

	profileRepo.On("Delete", mock.Anything).Return(nil)
	recordRepo.On("Clear", mock.Anything, domain.RecordKindSale).Return(nil)
	recordRepo.On("Clear", mock.Anything, domain.RecordKindInvoice).Return(nil)

	err := svc.Logout(context.Background())

	require.NoError(t, err)
	profileRepo.AssertExpectations(t)
	recordRepo.AssertExpectations(t)
}
