package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/repository"
)

type ProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile := &domain.Profile{
		UserID: userID,
		Name:   req.Name,
		Kind:   req.Kind,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) List(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.profileRepo.ListByUser(ctx, userID)
}
