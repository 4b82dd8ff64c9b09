package handler

import (
	"context"
	"time"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{
		ID:              uuid.New(),
		Timezone:        req.Timezone,
		OptimalBedtime:  req.OptimalBedtime,
		OptimalWaketime: req.OptimalWaketime,
		CreatedAt:       time.Now(),
	}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.User{ID: id, Timezone: "UTC", CreatedAt: time.Now()}, nil
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	user := &domain.User{ID: id, Timezone: "UTC", CreatedAt: time.Now()}
	if req.Timezone != nil {
		user.Timezone = *req.Timezone
	}
	return user, nil
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error)
	listFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
}

func (m *MockProfileService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Kind:      req.Kind,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockProfileService) List(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.Profile{}, nil
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	toggleFunc    func(ctx context.Context, userID, profileID uuid.UUID, origin string) (*domain.BlockingSession, bool, error)
	activeFunc    func(ctx context.Context, userID uuid.UUID) (*domain.BlockingSession, error)
	logManualFunc func(ctx context.Context, userID, profileID uuid.UUID, req *domain.CreateSessionRequest) (*domain.BlockingSession, error)
	updateFunc    func(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSessionRequest) (*domain.BlockingSession, error)
	listFunc      func(ctx context.Context, userID, profileID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error)
}

func (m *MockSessionService) Toggle(ctx context.Context, userID, profileID uuid.UUID, origin string) (*domain.BlockingSession, bool, error) {
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx, userID, profileID, origin)
	}
	return &domain.BlockingSession{
		ID:        uuid.New(),
		ProfileID: profileID,
		UserID:    userID,
		StartedAt: time.Now(),
		Origin:    origin,
	}, true, nil
}

func (m *MockSessionService) ActiveSession(ctx context.Context, userID uuid.UUID) (*domain.BlockingSession, error) {
	if m.activeFunc != nil {
		return m.activeFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSessionService) IsActive(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	session, err := m.ActiveSession(ctx, userID)
	if err != nil {
		return false, err
	}
	return session != nil && session.ProfileID == profileID, nil
}

func (m *MockSessionService) LogManual(ctx context.Context, userID, profileID uuid.UUID, req *domain.CreateSessionRequest) (*domain.BlockingSession, error) {
	if m.logManualFunc != nil {
		return m.logManualFunc(ctx, userID, profileID, req)
	}
	ended := req.EndedAt
	return &domain.BlockingSession{
		ID:        uuid.New(),
		ProfileID: profileID,
		UserID:    userID,
		StartedAt: req.StartedAt,
		EndedAt:   &ended,
		Origin:    domain.OriginManual,
	}, nil
}

func (m *MockSessionService) Update(ctx context.Context, userID, sessionID uuid.UUID, req *domain.UpdateSessionRequest) (*domain.BlockingSession, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, sessionID, req)
	}
	ended := time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC)
	return &domain.BlockingSession{
		ID:        sessionID,
		ProfileID: uuid.New(),
		UserID:    userID,
		StartedAt: time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
		EndedAt:   &ended,
		Origin:    domain.OriginManual,
	}, nil
}

func (m *MockSessionService) List(ctx context.Context, userID, profileID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, profileID, filter)
	}
	return &domain.SessionListResponse{
		Data:       []domain.SessionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	statsFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepStatsResponse, error)
}

func (m *MockStatsService) SleepStats(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepStatsResponse, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, userID, windowDays)
	}
	return &domain.SleepStatsResponse{Points: []domain.DailyAggregatePoint{}}, nil
}

// MockHeatmapService is a mock implementation of HeatmapService
type MockHeatmapService struct {
	heatmapFunc     func(ctx context.Context, userID, profileID uuid.UUID, days int) (*domain.HeatmapResponse, error)
	daySessionsFunc func(ctx context.Context, userID, profileID uuid.UUID, day time.Time) (*domain.DaySessionsResponse, error)
}

func (m *MockHeatmapService) Heatmap(ctx context.Context, userID, profileID uuid.UUID, days int) (*domain.HeatmapResponse, error) {
	if m.heatmapFunc != nil {
		return m.heatmapFunc(ctx, userID, profileID, days)
	}
	return &domain.HeatmapResponse{WindowDays: days, Days: []domain.HeatmapDay{}}, nil
}

func (m *MockHeatmapService) DaySessions(ctx context.Context, userID, profileID uuid.UUID, day time.Time) (*domain.DaySessionsResponse, error) {
	if m.daySessionsFunc != nil {
		return m.daySessionsFunc(ctx, userID, profileID, day)
	}
	return &domain.DaySessionsResponse{Date: day, Sessions: []domain.DaySessionItem{}}, nil
}

// MockScanOps is a mock implementation of ScanOps
type MockScanOps struct {
	registerFunc func(ctx context.Context, userID uuid.UUID, req *domain.RegisterTagRequest) (*domain.ScanTag, error)
	listFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.ScanTag, error)
	submitFunc   func(ctx context.Context, userID uuid.UUID, req *domain.ScanRequest) (*domain.ScanResult, error)
}

func (m *MockScanOps) Register(ctx context.Context, userID uuid.UUID, req *domain.RegisterTagRequest) (*domain.ScanTag, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, userID, req)
	}
	return &domain.ScanTag{
		ID:        uuid.New(),
		UserID:    userID,
		ProfileID: req.ProfileID,
		Label:     req.Label,
		TagUID:    req.TagUID,
		URL:       req.URL,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockScanOps) List(ctx context.Context, userID uuid.UUID) ([]domain.ScanTag, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.ScanTag{}, nil
}

func (m *MockScanOps) Submit(ctx context.Context, userID uuid.UUID, req *domain.ScanRequest) (*domain.ScanResult, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, userID, req)
	}
	return &domain.ScanResult{
		TagID:     uuid.New(),
		UserID:    userID,
		ProfileID: uuid.New(),
		TagUID:    req.TagUID,
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{Summary: "ok", Model: "gpt-4o-mini"}, nil
}
