package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/repository"
	"github.com/focusguard/focusguard/pkg/pagination"
)

// SessionService owns the blocking session lifecycle and answers the
// "is blocking active right now" question. All reads go through the
// repository on every call; nothing is cached, so external mutations
// (the device stopping a block, a scan toggling a profile) are visible
// on the next query.
type SessionService interface {
	// Toggle starts a session for the profile if the user is idle and
	// stops it if that profile is the active one. Starting while another
	// profile is active stops the other profile's session first.
	// The returned bool is true when a session was started.
	Toggle(ctx context.Context, userID, profileID uuid.UUID, origin string) (*domain.BlockingSession, bool, error)
	// ActiveSession returns the sole open session for the user, or nil.
	ActiveSession(ctx context.Context, userID uuid.UUID) (*domain.BlockingSession, error)
	// IsActive reports whether the given profile owns the open session.
	IsActive(ctx context.Context, userID, profileID uuid.UUID) (bool, error)
	// LogManual records a closed session retroactively.
	LogManual(ctx context.Context, userID, profileID uuid.UUID, req *domain.CreateSessionRequest) (*domain.BlockingSession, error)
	// Update adjusts the times of an existing session.
	Update(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSessionRequest) (*domain.BlockingSession, error)
	List(ctx context.Context, userID, profileID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewSessionService(sessionRepo repository.SessionRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) Toggle(ctx context.Context, userID, profileID uuid.UUID, origin string) (*domain.BlockingSession, bool, error) {
	profile, err := s.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return nil, false, err
	}

	open, err := s.sessionRepo.OpenByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	now := s.now()

	// Stop: the profile being toggled is the active one.
	if open != nil && open.ProfileID == profile.ID {
		open.EndedAt = &now
		if err := s.sessionRepo.Update(ctx, open); err != nil {
			return nil, false, err
		}
		return open, false, nil
	}

	// Another profile is active: close it before starting the new one,
	// keeping the at-most-one-open invariant.
	if open != nil {
		open.EndedAt = &now
		if err := s.sessionRepo.Update(ctx, open); err != nil {
			return nil, false, err
		}
	}

	if origin == "" {
		origin = domain.OriginToggle
	}
	session := &domain.BlockingSession{
		ProfileID: profile.ID,
		UserID:    userID,
		StartedAt: now,
		Origin:    origin,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, false, err
	}
	return session, true, nil
}

func (s *sessionService) ActiveSession(ctx context.Context, userID uuid.UUID) (*domain.BlockingSession, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.sessionRepo.OpenByUser(ctx, userID)
}

func (s *sessionService) IsActive(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	open, err := s.ActiveSession(ctx, userID)
	if err != nil {
		return false, err
	}
	return open != nil && open.ProfileID == profileID, nil
}

func (s *sessionService) LogManual(ctx context.Context, userID, profileID uuid.UUID, req *domain.CreateSessionRequest) (*domain.BlockingSession, error) {
	profile, err := s.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	start := req.StartedAt.UTC()
	end := req.EndedAt.UTC()

	// A wake time earlier in the day than the sleep time means the
	// session ended on the following calendar day.
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}

	session := &domain.BlockingSession{
		ProfileID: profile.ID,
		UserID:    userID,
		StartedAt: start,
		EndedAt:   &end,
		Origin:    domain.OriginManual,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Update(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSessionRequest) (*domain.BlockingSession, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if session.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if req.StartedAt != nil {
		session.StartedAt = req.StartedAt.UTC()
	}
	if req.EndedAt != nil {
		end := req.EndedAt.UTC()
		session.EndedAt = &end
	}

	// Re-derive the interval invariant after applying the edit.
	if session.EndedAt != nil && !session.EndedAt.After(session.StartedAt) {
		return nil, domain.ErrInvalidInput
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, userID, profileID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	if _, err := s.ownedProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.List(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(sessions) > limit
	if hasMore {
		sessions = sessions[:limit]
	}

	response := &domain.SessionListResponse{
		Data: make([]domain.SessionResponse, len(sessions)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, session := range sessions {
		response.Data[i] = session.ToResponse()
	}

	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			StartedAt: last.StartedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *sessionService) ownedProfile(ctx context.Context, userID, profileID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}
