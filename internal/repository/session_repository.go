package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/pkg/pagination"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.BlockingSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlockingSession, error)
	Update(ctx context.Context, session *domain.BlockingSession) error
	List(ctx context.Context, profileID uuid.UUID, filter domain.SessionFilter) ([]domain.BlockingSession, error)
	// OpenByUser returns the sole open session across all of the user's
	// profiles, or nil. There is at most one by construction.
	OpenByUser(ctx context.Context, userID uuid.UUID) (*domain.BlockingSession, error)
	// ListByUserKindSince returns sessions owned by profiles of the given
	// kind that could overlap the window: closed ones ending after since,
	// plus any still open. Ordered by started_at ascending.
	ListByUserKindSince(ctx context.Context, userID uuid.UUID, kind domain.ProfileKind, since time.Time) ([]domain.BlockingSession, error)
	// ListByProfileSince is the per-profile equivalent, used by the heat-map.
	ListByProfileSince(ctx context.Context, profileID uuid.UUID, since time.Time) ([]domain.BlockingSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.BlockingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlockingSession, error) {
	var session domain.BlockingSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.BlockingSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.SessionFilter) ([]domain.BlockingSession, error) {
	query := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("started_at DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("started_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("started_at <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with started_at < cursor.StartedAt
			// or same started_at but id < cursor.ID
			query = query.Where(
				"(started_at < ?) OR (started_at = ? AND id < ?)",
				cursor.StartedAt, cursor.StartedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var sessions []domain.BlockingSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) OpenByUser(ctx context.Context, userID uuid.UUID) (*domain.BlockingSession, error) {
	var session domain.BlockingSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND ended_at IS NULL", userID).
		First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // No open session is not an error
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ListByUserKindSince(ctx context.Context, userID uuid.UUID, kind domain.ProfileKind, since time.Time) ([]domain.BlockingSession, error) {
	var sessions []domain.BlockingSession
	err := r.db.WithContext(ctx).
		Joins("JOIN profiles ON profiles.id = blocking_sessions.profile_id").
		Where("blocking_sessions.user_id = ?", userID).
		Where("profiles.kind = ?", kind).
		Where("blocking_sessions.ended_at IS NULL OR blocking_sessions.ended_at > ?", since).
		Order("blocking_sessions.started_at ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) ListByProfileSince(ctx context.Context, profileID uuid.UUID, since time.Time) ([]domain.BlockingSession, error) {
	var sessions []domain.BlockingSession
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Where("ended_at IS NULL OR ended_at > ?", since).
		Order("started_at ASC").
		Find(&sessions).Error
	return sessions, err
}
