package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = time.Now()
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Profile
	for _, profile := range m.profiles {
		if profile.UserID == userID {
			result = append(result, *profile)
		}
	}
	return result, nil
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	sessions   map[uuid.UUID]*domain.BlockingSession
	listResult []domain.BlockingSession
	err        error
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{sessions: make(map[uuid.UUID]*domain.BlockingSession)}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.BlockingSession) error {
	if m.err != nil {
		return m.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	m.sessions[session.ID] = session
	return nil
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlockingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockSessionRepository) Update(ctx context.Context, session *domain.BlockingSession) error {
	if m.err != nil {
		return m.err
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *MockSessionRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.SessionFilter) ([]domain.BlockingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.BlockingSession, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.BlockingSession
	for _, session := range m.sessions {
		if session.ProfileID == profileID {
			result = append(result, *session)
		}
	}
	return result, nil
}

func (m *MockSessionRepository) OpenByUser(ctx context.Context, userID uuid.UUID) (*domain.BlockingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, session := range m.sessions {
		if session.UserID == userID && session.EndedAt == nil {
			return session, nil
		}
	}
	return nil, nil
}

func (m *MockSessionRepository) ListByUserKindSince(ctx context.Context, userID uuid.UUID, kind domain.ProfileKind, since time.Time) ([]domain.BlockingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.BlockingSession, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.BlockingSession
	for _, session := range m.sessions {
		if session.UserID == userID && (session.EndedAt == nil || session.EndedAt.After(since)) {
			result = append(result, *session)
		}
	}
	return result, nil
}

func (m *MockSessionRepository) ListByProfileSince(ctx context.Context, profileID uuid.UUID, since time.Time) ([]domain.BlockingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.BlockingSession
	for _, session := range m.sessions {
		if session.ProfileID == profileID && (session.EndedAt == nil || session.EndedAt.After(since)) {
			result = append(result, *session)
		}
	}
	return result, nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	tags map[uuid.UUID]*domain.ScanTag
	err  error
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{tags: make(map[uuid.UUID]*domain.ScanTag)}
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.ScanTag) error {
	if m.err != nil {
		return m.err
	}
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	tag.CreatedAt = time.Now()
	m.tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) GetByUID(ctx context.Context, userID uuid.UUID, tagUID string) (*domain.ScanTag, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, tag := range m.tags {
		if tag.UserID == userID && tag.TagUID == tagUID {
			return tag, nil
		}
	}
	return nil, nil
}

func (m *MockTagRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ScanTag, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.ScanTag
	for _, tag := range m.tags {
		if tag.UserID == userID {
			result = append(result, *tag)
		}
	}
	return result, nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }
