package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/llm"
)

// recordingLLM captures the context passed to the LLM and returns a
// canned answer.
type recordingLLM struct {
	lastCtx *domain.InsightsContext
	err     error
}

func (r *recordingLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, string, error) {
	if r.err != nil {
		return nil, "", r.err
	}
	r.lastCtx = insightsCtx
	return &domain.LLMInsightsOutput{
		Summary:      "Stable routine.",
		Observations: []string{"Consistent bedtimes."},
		Guidance:     []string{"Keep the schedule."},
	}, "gpt-4o-mini", nil
}

// windowRecordingStats returns empty stats and records the requested
// window sizes.
type windowRecordingStats struct {
	windows []int
}

func (w *windowRecordingStats) SleepStats(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepStatsResponse, error) {
	w.windows = append(w.windows, windowDays)
	return &domain.SleepStatsResponse{Points: []domain.DailyAggregatePoint{}}, nil
}

func TestInsightsService_Generate(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	stats := &windowRecordingStats{}
	client := &recordingLLM{}
	svc := NewInsightsService(stats, client, userRepo)

	result, err := svc.Generate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Summary != "Stable routine." {
		t.Errorf("Summary = %q", result.Summary)
	}
	if result.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", result.Model)
	}
	if client.lastCtx == nil {
		t.Fatal("LLM never received a context")
	}

	// History first, then recent.
	if len(stats.windows) != 2 || stats.windows[0] != HistoryWindowDays || stats.windows[1] != RecentWindowDays {
		t.Fatalf("stats windows = %v, want [%d %d]", stats.windows, HistoryWindowDays, RecentWindowDays)
	}
}

func TestInsightsService_GenerateUnknownUser(t *testing.T) {
	svc := NewInsightsService(&windowRecordingStats{}, &recordingLLM{}, NewMockUserRepository())

	_, err := svc.Generate(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Generate() error = %v, want ErrNotFound", err)
	}
}

func TestInsightsService_GenerateLLMUnavailable(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	svc := NewInsightsService(&windowRecordingStats{}, &recordingLLM{err: llm.ErrOpenAIUnavailable}, userRepo)

	_, err := svc.Generate(context.Background(), userID)
	if !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrOpenAIUnavailable", err)
	}
}
