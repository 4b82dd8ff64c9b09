package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		Timezone:        req.Timezone,
		OptimalBedtime:  normalizeTarget(req.OptimalBedtime),
		OptimalWaketime: normalizeTarget(req.OptimalWaketime),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil && *req.Timezone != "" {
		user.Timezone = *req.Timezone
	}
	// An empty string clears a target; scoring then degrades to 0.
	if req.OptimalBedtime != nil {
		user.OptimalBedtime = normalizeTarget(req.OptimalBedtime)
	}
	if req.OptimalWaketime != nil {
		user.OptimalWaketime = normalizeTarget(req.OptimalWaketime)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func normalizeTarget(hhmm *string) *string {
	if hhmm == nil || *hhmm == "" {
		return nil
	}
	return hhmm
}
