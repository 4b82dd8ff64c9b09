package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session origin labels recorded on creation.
const (
	OriginManual = "manual"
	OriginToggle = "toggle"
	OriginScan   = "scan"
)

// BlockingSession is one interval during which a profile's blocking was
// active. EndedAt is nil while the session is still open; across all of
// a user's profiles at most one session is open at a time.
type BlockingSession struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfileID uuid.UUID  `gorm:"type:uuid;not null;index:idx_sessions_profile_start" json:"profile_id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_sessions_user" json:"user_id"`
	StartedAt time.Time  `gorm:"not null;index:idx_sessions_profile_start,sort:desc" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	// Origin labels how the session was created: manual log, toggle,
	// or a tag scan ("scan:<tag uid>").
	Origin    string    `gorm:"type:varchar(128);not null;default:'manual'" json:"origin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (BlockingSession) TableName() string {
	return "blocking_sessions"
}

// Open reports whether the session is still running.
func (s *BlockingSession) Open() bool {
	return s.EndedAt == nil
}

// Bounds returns the closed interval of the session. ok is false while
// the session is open; callers must decide what "end" means for an open
// session (usually the current moment) rather than reading a zero value.
func (s *BlockingSession) Bounds() (start, end time.Time, ok bool) {
	if s.EndedAt == nil {
		return s.StartedAt, time.Time{}, false
	}
	return s.StartedAt, *s.EndedAt, true
}

// DurationSeconds is the closed-session length in seconds: zero while
// open, and clamped to zero for corrupted end-before-start data so
// downstream scoring stays total.
func (s *BlockingSession) DurationSeconds() float64 {
	start, end, ok := s.Bounds()
	if !ok {
		return 0
	}
	d := end.Sub(start).Seconds()
	if d < 0 {
		return 0
	}
	return d
}

// CreateSessionRequest is the request body for retroactively logging a
// closed session, e.g. "I slept 23:00-07:00 but forgot to start the mode".
// @Description Request payload for manually logging a past session.
type CreateSessionRequest struct {
	// Session start in RFC3339 format
	StartedAt time.Time `json:"started_at" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Session end in RFC3339 format. An end at or before the start is
	// interpreted as the following calendar day (overnight interval).
	EndedAt time.Time `json:"ended_at" validate:"required" example:"2024-01-16T07:00:00Z"`
}

// UpdateSessionRequest is the request body for adjusting session times.
type UpdateSessionRequest struct {
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// SessionResponse is the response body for session endpoints.
type SessionResponse struct {
	ID              uuid.UUID  `json:"id"`
	ProfileID       uuid.UUID  `json:"profile_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Origin          string     `json:"origin"`
	Active          bool       `json:"active"`
	DurationSeconds float64    `json:"duration_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (s *BlockingSession) ToResponse() SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		ProfileID:       s.ProfileID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		Origin:          s.Origin,
		Active:          s.Open(),
		DurationSeconds: s.DurationSeconds(),
		CreatedAt:       s.CreatedAt,
	}
}

// SessionListResponse is the response body for listing sessions.
type SessionListResponse struct {
	Data       []SessionResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// SessionFilter contains filter parameters for listing sessions
type SessionFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// ActiveSessionResponse answers "is blocking active right now".
type ActiveSessionResponse struct {
	Active  bool             `json:"active"`
	Session *SessionResponse `json:"session,omitempty"`
}
