package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileKind distinguishes ordinary focus profiles from the sleep
// profile that drives the sleep chart and scores.
// @Description Profile category: FOCUS for app/website blocking, SLEEP for sleep mode.
type ProfileKind string

const (
	// ProfileKindFocus blocks distracting apps/websites on a schedule
	ProfileKindFocus ProfileKind = "FOCUS"
	// ProfileKindSleep is the profile the sleep tracking mode runs on
	ProfileKindSleep ProfileKind = "SLEEP"
)

type Profile struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index:idx_profiles_user" json:"user_id"`
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`
	Kind      ProfileKind `gorm:"type:varchar(10);not null;default:'FOCUS'" json:"kind"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User     User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions []BlockingSession `gorm:"foreignKey:ProfileID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// CreateProfileRequest is the request body for creating a profile.
type CreateProfileRequest struct {
	// Display name shown on the device
	Name string `json:"name" validate:"required,max=100" example:"Deep Work"`
	// Profile category
	Kind ProfileKind `json:"kind" validate:"required,oneof=FOCUS SLEEP" example:"FOCUS" enums:"FOCUS,SLEEP"`
}

// ProfileResponse is the response body for profile endpoints
type ProfileResponse struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Name      string      `json:"name"`
	Kind      ProfileKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
}

func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Kind:      p.Kind,
		CreatedAt: p.CreatedAt,
	}
}
