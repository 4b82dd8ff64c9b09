package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/repository"
	"github.com/focusguard/focusguard/pkg/timeaxis"
)

const (
	// DefaultStatsWindowDays is the default lookback for the sleep stats.
	DefaultStatsWindowDays = 30

	// MaxChartPoints caps the chart to a trailing window of nights.
	MaxChartPoints = 7

	// ConsistencyPointsPerHour is the score penalty per hour of standard
	// deviation: ~5 hours of scatter zeroes the score.
	ConsistencyPointsPerHour = 20

	// AccuracyPointsPerHour is the score penalty per hour of average
	// deviation from the configured targets.
	AccuracyPointsPerHour = 10
)

// StatsService turns a user's sleep sessions into chart points and
// derived scores.
type StatsService interface {
	SleepStats(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepStatsResponse, error)
}

type statsService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(sessionRepo repository.SessionRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *statsService) SleepStats(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepStatsResponse, error) {
	tracer := otel.Tracer("focusguard-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.SleepStats",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}

	now := s.now()
	from := now.AddDate(0, 0, -windowDays)

	sessions, err := s.sessionRepo.ListByUserKindSince(ctx, userID, domain.ProfileKindSleep, from)
	if err != nil {
		return nil, err
	}

	loc := user.Location()
	points := buildChartPoints(sessions, loc)
	targetSleep, targetWake := user.TargetOffsets()

	result := &domain.SleepStatsResponse{
		Points: points,
		Scores: domain.SleepScores{
			SleepConsistency: consistencyScore(startOffsets(points)),
			WakeConsistency:  consistencyScore(endOffsets(points)),
			Accuracy:         accuracyScore(points, targetSleep, targetWake),
		},
	}
	result.AvgDurationSeconds = averageDurationSeconds(points)
	result.AvgDurationText = timeaxis.FormatDuration(result.AvgDurationSeconds)
	result.Window.From = from
	result.Window.To = now

	if outputJSON, err := json.Marshal(result.Scores); err == nil {
		span.SetAttributes(attribute.String("stats.scores", string(outputJSON)))
	}

	return result, nil
}

// buildChartPoints maps closed sessions to chart points: one point per
// session (two sessions on the same night stay two bars), labeled by
// the weekday the sleep began, capped to the trailing MaxChartPoints.
func buildChartPoints(sessions []domain.BlockingSession, loc *time.Location) []domain.DailyAggregatePoint {
	closed := make([]domain.BlockingSession, 0, len(sessions))
	for _, session := range sessions {
		if !session.Open() {
			closed = append(closed, session)
		}
	}

	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].StartedAt.Before(closed[j].StartedAt)
	})

	points := make([]domain.DailyAggregatePoint, 0, len(closed))
	for _, session := range closed {
		start := session.StartedAt.In(loc)
		end := session.EndedAt.In(loc)

		startOffset := timeaxis.OffsetHours(&start, timeaxis.ReferenceHour)
		endOffset := timeaxis.OffsetHours(&end, timeaxis.ReferenceHour)

		points = append(points, domain.DailyAggregatePoint{
			DayLabel:    timeaxis.DayLabel(session.StartedAt, loc),
			Date:        timeaxis.StartOfDay(session.StartedAt, loc),
			StartOffset: *startOffset,
			EndOffset:   *endOffset,
			// Raw seconds, not offset-derived: chart bar height and the
			// displayed duration must not drift apart.
			DurationSeconds: session.DurationSeconds(),
		})
	}

	if len(points) > MaxChartPoints {
		points = points[len(points)-MaxChartPoints:]
	}
	return points
}

// averageDurationSeconds is the arithmetic mean of point durations,
// zero for an empty chart.
func averageDurationSeconds(points []domain.DailyAggregatePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.DurationSeconds
	}
	return sum / float64(len(points))
}

// consistencyScore scores how tightly clustered a set of axis offsets
// is: 100 minus ConsistencyPointsPerHour per hour of population
// standard deviation, floored at 0. Empty input scores 0.
func consistencyScore(values []float64) int {
	if len(values) == 0 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))

	stdDev := math.Sqrt(variance)
	score := 100 - int(stdDev*ConsistencyPointsPerHour)
	if score < 0 {
		return 0
	}
	return score
}

// accuracyScore scores closeness to the configured target offsets.
// Missing targets or an empty chart degrade to 0 rather than erroring.
func accuracyScore(points []domain.DailyAggregatePoint, targetSleep, targetWake *float64) int {
	if targetSleep == nil || targetWake == nil || len(points) == 0 {
		return 0
	}

	totalDeviation := 0.0
	for _, p := range points {
		totalDeviation += math.Abs(p.StartOffset-*targetSleep) + math.Abs(p.EndOffset-*targetWake)
	}

	// Two deviations per point, so the average is per sleep/wake event.
	avgDeviation := totalDeviation / float64(len(points)*2)
	score := 100 - int(avgDeviation*AccuracyPointsPerHour)
	if score < 0 {
		return 0
	}
	return score
}

func startOffsets(points []domain.DailyAggregatePoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.StartOffset
	}
	return values
}

func endOffsets(points []domain.DailyAggregatePoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.EndOffset
	}
	return values
}
