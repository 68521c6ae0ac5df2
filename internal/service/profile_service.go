package service

import (
	"context"
	"log"
	"time"

	"cropai/internal/domain"
	"cropai/internal/port"
)

// ProfileInput is the DTO for onboarding or updating the farm profile.
type ProfileInput struct {
	Name       string
	Role       domain.Role
	Language   string
	Location   *domain.GeoPoint
	Farmer     *domain.FarmerDetails
	Technician *domain.TechnicianDetails
	Supplier   *domain.SupplierDetails
}

// ProfileService defines the farm profile contract.
type ProfileService interface {
	Onboard(ctx context.Context, input ProfileInput) (*domain.FarmProfile, error)
	Get(ctx context.Context) (*domain.FarmProfile, error)
	Update(ctx context.Context, input ProfileInput) (*domain.FarmProfile, error)
	// Logout wipes the profile and every persisted record collection.
	Logout(ctx context.Context) error
}

type profileService struct {
	profileRepo port.ProfileRepository
	recordRepo  port.RecordRepository
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(profileRepo port.ProfileRepository, recordRepo port.RecordRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, recordRepo: recordRepo}
}

func (s *profileService) Onboard(ctx context.Context, input ProfileInput) (*domain.FarmProfile, error) {
	if _, err := s.profileRepo.Get(ctx); err == nil {
		return nil, domain.ErrProfileExists
	}

	now := time.Now().UTC()
	profile := buildProfile(input)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	log.Printf("profileService.Onboard: created %s profile %q", profile.Role, profile.Name)
	return profile, nil
}

func (s *profileService) Get(ctx context.Context) (*domain.FarmProfile, error) {
	return s.profileRepo.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, input ProfileInput) (*domain.FarmProfile, error) {
	existing, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile := buildProfile(input)
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now().UTC()

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Logout(ctx context.Context) error {
	log.Printf("profileService.Logout: wiping profile and record collections")

	if err := s.profileRepo.Delete(ctx); err != nil {
		return err
	}
	for _, kind := range []domain.RecordKind{domain.RecordKindSale, domain.RecordKindInvoice} {
		if err := s.recordRepo.Clear(ctx, kind); err != nil {
			return err
		}
	}
	return nil
}

func buildProfile(input ProfileInput) *domain.FarmProfile {
	return &domain.FarmProfile{
		Name:       input.Name,
		Role:       input.Role,
		Language:   input.Language,
		Location:   input.Location,
		Farmer:     input.Farmer,
		Technician: input.Technician,
		Supplier:   input.Supplier,
	}
}
