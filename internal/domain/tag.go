package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanTag is a registered NFC tag or QR code that toggles a profile
// when the device scans it. The UID is whatever opaque identifier the
// device read from the hardware.
type ScanTag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_user_uid" json:"user_id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null" json:"profile_id"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	TagUID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tags_user_uid" json:"tag_uid"`
	URL       *string   `gorm:"type:varchar(2048)" json:"url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ScanTag) TableName() string {
	return "scan_tags"
}

// RegisterTagRequest is the request body for registering a tag.
type RegisterTagRequest struct {
	// Profile toggled when this tag is scanned
	ProfileID uuid.UUID `json:"profile_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Display label ("Bedside tag")
	Label string `json:"label" validate:"required,max=100" example:"Bedside tag"`
	// Opaque identifier read from the NFC tag or QR code
	TagUID string `json:"tag_uid" validate:"required,max=255" example:"04:a2:19:6f:52:80"`
	// Optional URL embedded in the tag
	URL *string `json:"url,omitempty" validate:"omitempty,url,max=2048"`
}

// ScanRequest is the request body reporting a hardware scan.
type ScanRequest struct {
	TagUID string `json:"tag_uid" validate:"required,max=255" example:"04:a2:19:6f:52:80"`
}

// ScanResult carries a successfully matched scan through the dispatch
// channel to the worker that applies the toggle.
type ScanResult struct {
	TagID     uuid.UUID `json:"tag_id"`
	UserID    uuid.UUID `json:"user_id"`
	ProfileID uuid.UUID `json:"profile_id"`
	TagUID    string    `json:"tag_uid"`
	URL       *string   `json:"url,omitempty"`
}

// TagResponse is the response body for tag endpoints.
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Label     string    `json:"label"`
	TagUID    string    `json:"tag_uid"`
	URL       *string   `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *ScanTag) ToResponse() TagResponse {
	return TagResponse{
		ID:        t.ID,
		ProfileID: t.ProfileID,
		Label:     t.Label,
		TagUID:    t.TagUID,
		URL:       t.URL,
		CreatedAt: t.CreatedAt,
	}
}
