package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
)

func TestUserService_Create(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Timezone:       "Europe/Warsaw",
		OptimalBedtime: strPtr("23:00"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("user ID not assigned")
	}
	if user.Timezone != "Europe/Warsaw" {
		t.Errorf("Timezone = %q, want %q", user.Timezone, "Europe/Warsaw")
	}
	if user.OptimalBedtime == nil || *user.OptimalBedtime != "23:00" {
		t.Errorf("OptimalBedtime = %v, want 23:00", user.OptimalBedtime)
	}
	if user.OptimalWaketime != nil {
		t.Errorf("OptimalWaketime = %v, want nil", user.OptimalWaketime)
	}
}

func TestUserService_CreateEmptyTargetStoredAsNil(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Timezone:       "UTC",
		OptimalBedtime: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.OptimalBedtime != nil {
		t.Errorf("OptimalBedtime = %v, want nil", user.OptimalBedtime)
	}
}

func TestUserService_Update(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	userID := uuid.New()
	repo.users[userID] = &domain.User{
		ID:              userID,
		Timezone:        "UTC",
		OptimalBedtime:  strPtr("23:00"),
		OptimalWaketime: strPtr("07:00"),
	}

	// Absent fields leave the current values alone.
	user, err := svc.Update(context.Background(), userID, &domain.UpdateUserRequest{
		Timezone: strPtr("Asia/Tokyo"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if user.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %q, want %q", user.Timezone, "Asia/Tokyo")
	}
	if user.OptimalBedtime == nil || *user.OptimalBedtime != "23:00" {
		t.Errorf("OptimalBedtime = %v, want 23:00 untouched", user.OptimalBedtime)
	}

	// An empty string clears a target.
	user, err = svc.Update(context.Background(), userID, &domain.UpdateUserRequest{
		OptimalBedtime: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if user.OptimalBedtime != nil {
		t.Errorf("OptimalBedtime = %v, want cleared", user.OptimalBedtime)
	}
	if user.OptimalWaketime == nil || *user.OptimalWaketime != "07:00" {
		t.Errorf("OptimalWaketime = %v, want 07:00 untouched", user.OptimalWaketime)
	}
}

func TestUserService_UpdateUnknownUser(t *testing.T) {
	svc := NewUserService(NewMockUserRepository())

	_, err := svc.Update(context.Background(), uuid.New(), &domain.UpdateUserRequest{
		Timezone: strPtr("UTC"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
}
