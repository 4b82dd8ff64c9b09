package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/llm"
	"github.com/focusguard/focusguard/internal/repository"
)

const (
	// Window sizes for insights
	HistoryWindowDays = 30
	RecentWindowDays  = 7
)

// InsightsService generates sleep habit insights from computed stats.
type InsightsService interface {
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	statsService StatsService
	llmClient    llm.InsightsLLM
	userRepo     repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(statsService StatsService, llmClient llm.InsightsLLM, userRepo repository.UserRepository) InsightsService {
	return &insightsService{
		statsService: statsService,
		llmClient:    llmClient,
		userRepo:     userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	history, err := s.statsService.SleepStats(ctx, userID, HistoryWindowDays)
	if err != nil {
		return nil, err
	}
	recent, err := s.statsService.SleepStats(ctx, userID, RecentWindowDays)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		History: *history,
		Recent:  *recent,
	}

	output, model, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Summary:      output.Summary,
		Observations: output.Observations,
		Guidance:     output.Guidance,
		Model:        model,
	}, nil
}
