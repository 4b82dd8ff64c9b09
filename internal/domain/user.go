package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/pkg/timeaxis"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	// Optimal bedtime/waketime as wall-clock HH:MM; nil means not configured.
	OptimalBedtime  *string   `gorm:"type:varchar(5)" json:"optimal_bedtime,omitempty"`
	OptimalWaketime *string   `gorm:"type:varchar(5)" json:"optimal_waketime,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Location resolves the user's IANA timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// TargetOffsets converts the configured optimal bedtime/waketime to
// offsets on the sleep axis. Either result is nil when the
// corresponding time is not configured or unparseable; only the
// hour/minute of the stored value is significant.
func (u *User) TargetOffsets() (sleep, wake *float64) {
	return clockOffset(u.OptimalBedtime), clockOffset(u.OptimalWaketime)
}

func clockOffset(hhmm *string) *float64 {
	if hhmm == nil || *hhmm == "" {
		return nil
	}
	parsed, err := time.Parse("15:04", *hhmm)
	if err != nil {
		return nil
	}
	offset := timeaxis.ClockOffset(parsed.Hour(), parsed.Minute(), timeaxis.ReferenceHour)
	return &offset
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for registering a device user.
type CreateUserRequest struct {
	// IANA timezone used for day bucketing and chart axes
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Warsaw"`
	// Optional target bedtime (HH:MM, 24h clock)
	OptimalBedtime *string `json:"optimal_bedtime,omitempty" validate:"omitempty,datetime=15:04" example:"22:00"`
	// Optional target waketime (HH:MM, 24h clock)
	OptimalWaketime *string `json:"optimal_waketime,omitempty" validate:"omitempty,datetime=15:04" example:"07:00"`
}

// UpdateUserRequest is the request body for updating user settings.
// Pointer fields are applied only when present; an empty string clears
// the corresponding target time.
type UpdateUserRequest struct {
	Timezone        *string `json:"timezone,omitempty" validate:"omitempty,timezone"`
	OptimalBedtime  *string `json:"optimal_bedtime,omitempty" validate:"omitempty,eq=|datetime=15:04"`
	OptimalWaketime *string `json:"optimal_waketime,omitempty" validate:"omitempty,eq=|datetime=15:04"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Timezone        string    `json:"timezone"`
	OptimalBedtime  *string   `json:"optimal_bedtime,omitempty"`
	OptimalWaketime *string   `json:"optimal_waketime,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:              u.ID,
		Timezone:        u.Timezone,
		OptimalBedtime:  u.OptimalBedtime,
		OptimalWaketime: u.OptimalWaketime,
		CreatedAt:       u.CreatedAt,
	}
}
