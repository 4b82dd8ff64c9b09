package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/repository"
	"github.com/focusguard/focusguard/pkg/timeaxis"
)

const (
	// DefaultHeatmapDays is the trailing window of the habit heat-map.
	DefaultHeatmapDays = 28
	// MaxHeatmapDays bounds the window a client may request.
	MaxHeatmapDays = 90
)

// HeatmapService aggregates blocking sessions into per-day totals for
// the habit heat-map and the calendar day detail view.
type HeatmapService interface {
	Heatmap(ctx context.Context, userID, profileID uuid.UUID, days int) (*domain.HeatmapResponse, error)
	// DaySessions lists the sessions overlapping one calendar day,
	// longest session first.
	DaySessions(ctx context.Context, userID, profileID uuid.UUID, day time.Time) (*domain.DaySessionsResponse, error)
}

type heatmapService struct {
	sessionRepo repository.SessionRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewHeatmapService creates a new HeatmapService.
func NewHeatmapService(sessionRepo repository.SessionRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) HeatmapService {
	return &heatmapService{
		sessionRepo: sessionRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *heatmapService) Heatmap(ctx context.Context, userID, profileID uuid.UUID, days int) (*domain.HeatmapResponse, error) {
	loc, err := s.ownedProfileLocation(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	if days <= 0 {
		days = DefaultHeatmapDays
	}
	if days > MaxHeatmapDays {
		days = MaxHeatmapDays
	}

	now := s.now()
	windowStart := timeaxis.StartOfDay(now, loc).AddDate(0, 0, -(days - 1))

	sessions, err := s.sessionRepo.ListByProfileSince(ctx, profileID, windowStart)
	if err != nil {
		return nil, err
	}

	response := &domain.HeatmapResponse{
		WindowDays: days,
		Days:       make([]domain.HeatmapDay, days),
	}
	for i := 0; i < days; i++ {
		dayStart := windowStart.AddDate(0, 0, i)
		total := 0.0
		for _, session := range sessions {
			total += overlapSeconds(&session, dayStart, now)
		}
		hours := total / 3600.0
		response.Days[i] = domain.HeatmapDay{
			Date:       dayStart,
			TotalHours: hours,
			Level:      heatLevel(hours),
		}
	}
	return response, nil
}

func (s *heatmapService) DaySessions(ctx context.Context, userID, profileID uuid.UUID, day time.Time) (*domain.DaySessionsResponse, error) {
	loc, err := s.ownedProfileLocation(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	// The day arrives as a date-only value; anchor it to midnight in the
	// user's timezone by calendar components, not by instant conversion.
	y, m, d := day.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)

	sessions, err := s.sessionRepo.ListByProfileSince(ctx, profileID, dayStart)
	if err != nil {
		return nil, err
	}

	overlapping := sessionsOverlapping(sessions, dayStart, now)

	response := &domain.DaySessionsResponse{
		Date:     dayStart,
		Sessions: make([]domain.DaySessionItem, len(overlapping)),
	}
	for i, session := range overlapping {
		response.Sessions[i] = domain.DaySessionItem{
			Session:        session.ToResponse(),
			OverlapSeconds: overlapSeconds(&session, dayStart, now),
			MultiDay:       isMultiDay(&session, loc),
		}
	}
	return response, nil
}

// overlapSeconds clips a session to the calendar day beginning at
// dayStart. An open session runs through now, re-evaluated on every
// call. Never negative, even for corrupted end-before-start data.
func overlapSeconds(session *domain.BlockingSession, dayStart, now time.Time) float64 {
	dayEnd := dayStart.AddDate(0, 0, 1)

	sessionEnd := now
	if session.EndedAt != nil {
		sessionEnd = *session.EndedAt
	}

	from := session.StartedAt
	if dayStart.After(from) {
		from = dayStart
	}
	to := sessionEnd
	if dayEnd.Before(to) {
		to = dayEnd
	}

	overlap := to.Sub(from).Seconds()
	if overlap < 0 {
		return 0
	}
	return overlap
}

// sessionsOverlapping filters to sessions touching the day beginning at
// dayStart and orders them by descending total session duration (not
// the day-clipped overlap); the sort is stable so ties keep their
// original order.
func sessionsOverlapping(sessions []domain.BlockingSession, dayStart, now time.Time) []domain.BlockingSession {
	dayEnd := dayStart.AddDate(0, 0, 1)

	var result []domain.BlockingSession
	for _, session := range sessions {
		sessionEnd := now
		if session.EndedAt != nil {
			sessionEnd = *session.EndedAt
		}
		if session.StartedAt.Before(dayEnd) && sessionEnd.After(dayStart) {
			result = append(result, session)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DurationSeconds() > result[j].DurationSeconds()
	})
	return result
}

// isMultiDay reports whether a closed session spans more than one
// calendar day in loc. Open sessions are not multi-day.
func isMultiDay(session *domain.BlockingSession, loc *time.Location) bool {
	start, end, ok := session.Bounds()
	if !ok {
		return false
	}
	return !timeaxis.StartOfDay(start, loc).Equal(timeaxis.StartOfDay(end, loc))
}

// heatLevel buckets a day's total blocked hours into one of five fixed
// intensity bands.
func heatLevel(hours float64) int {
	switch {
	case hours <= 0:
		return 0
	case hours < 1:
		return 1
	case hours < 3:
		return 2
	case hours < 5:
		return 3
	default:
		return 4
	}
}

func (s *heatmapService) ownedProfileLocation(ctx context.Context, userID, profileID uuid.UUID) (*time.Location, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return user.Location(), nil
}
