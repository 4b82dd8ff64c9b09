package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
)

func TestProfileService_Create(t *testing.T) {
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	svc := NewProfileService(profileRepo, userRepo)

	userID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	profile, err := svc.Create(context.Background(), userID, &domain.CreateProfileRequest{
		Name: "Deep Work",
		Kind: domain.ProfileKindFocus,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if profile.ID == uuid.Nil {
		t.Error("profile ID not assigned")
	}
	if profile.UserID != userID || profile.Kind != domain.ProfileKindFocus {
		t.Errorf("profile = %+v", profile)
	}
}

func TestProfileService_CreateUnknownUser(t *testing.T) {
	svc := NewProfileService(NewMockProfileRepository(), NewMockUserRepository())

	_, err := svc.Create(context.Background(), uuid.New(), &domain.CreateProfileRequest{
		Name: "Sleep",
		Kind: domain.ProfileKindSleep,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestProfileService_List(t *testing.T) {
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	svc := NewProfileService(profileRepo, userRepo)

	userID := uuid.New()
	otherID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	userRepo.users[otherID] = &domain.User{ID: otherID, Timezone: "UTC"}

	mine := &domain.Profile{ID: uuid.New(), UserID: userID, Name: "Sleep", Kind: domain.ProfileKindSleep}
	theirs := &domain.Profile{ID: uuid.New(), UserID: otherID, Name: "Focus", Kind: domain.ProfileKindFocus}
	profileRepo.profiles[mine.ID] = mine
	profileRepo.profiles[theirs.ID] = theirs

	profiles, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].ID != mine.ID {
		t.Fatalf("List() = %+v, want only the user's profile", profiles)
	}
}
