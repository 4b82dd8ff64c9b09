package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
)

func TestOverlapSeconds(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session domain.BlockingSession
		want    float64
	}{
		{
			name:    "entirely inside the day",
			session: closedSession(day.Add(10*time.Hour), 2*time.Hour),
			want:    2 * 3600,
		},
		{
			name:    "entirely before the day",
			session: closedSession(day.AddDate(0, 0, -2), 3*time.Hour),
			want:    0,
		},
		{
			name:    "entirely after the day",
			session: closedSession(day.AddDate(0, 0, 2), 3*time.Hour),
			want:    0,
		},
		{
			name:    "session containing the whole day",
			session: closedSession(day.Add(-6*time.Hour), 48*time.Hour),
			want:    86400,
		},
		{
			name:    "overnight session clips at midnight",
			session: closedSession(day.Add(22*time.Hour), 9*time.Hour),
			want:    2 * 3600,
		},
		{
			name: "open session runs through now",
			session: domain.BlockingSession{
				ID:        uuid.New(),
				StartedAt: day.Add(20 * time.Hour),
			},
			want: 4 * 3600, // 20:00 to midnight; now is past day end
		},
		{
			name: "corrupted end before start clamps to zero",
			session: domain.BlockingSession{
				ID:        uuid.New(),
				StartedAt: day.Add(10 * time.Hour),
				EndedAt:   timePtr(day.Add(8 * time.Hour)),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlapSeconds(&tt.session, day, now); got != tt.want {
				t.Fatalf("overlapSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionsOverlapping_SortsByTotalDuration(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, 2)

	short := closedSession(day.Add(9*time.Hour), time.Hour)
	// Long session mostly on the previous day; its day-clipped overlap is
	// small but its total duration wins the sort.
	long := closedSession(day.Add(-10*time.Hour), 11*time.Hour)
	outside := closedSession(day.AddDate(0, 0, -3), 5*time.Hour)

	got := sessionsOverlapping([]domain.BlockingSession{short, long, outside}, day, now)
	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	if got[0].ID != long.ID {
		t.Fatal("sessions not sorted by descending total duration")
	}
}

func TestIsMultiDay(t *testing.T) {
	overnight := closedSession(time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC), 8*time.Hour)
	if !isMultiDay(&overnight, time.UTC) {
		t.Fatal("overnight session not detected as multi-day")
	}

	sameDay := closedSession(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), 2*time.Hour)
	if isMultiDay(&sameDay, time.UTC) {
		t.Fatal("same-day session flagged as multi-day")
	}

	open := domain.BlockingSession{StartedAt: time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)}
	if isMultiDay(&open, time.UTC) {
		t.Fatal("open session flagged as multi-day")
	}
}

func TestHeatLevel(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{0, 0},
		{0.5, 1},
		{0.99, 1},
		{1, 2},
		{2.9, 2},
		{3, 3},
		{4.99, 3},
		{5, 4},
		{12, 4},
	}
	for _, tt := range tests {
		if got := heatLevel(tt.hours); got != tt.want {
			t.Errorf("heatLevel(%v) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestHeatmapService_Heatmap(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	profileRepo := NewMockProfileRepository()
	profileRepo.profiles[profileID] = &domain.Profile{ID: profileID, UserID: userID, Kind: domain.ProfileKindFocus}

	now := time.Date(2024, 1, 28, 15, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()

	// Two hours blocked yesterday.
	yesterday := closedSession(time.Date(2024, 1, 27, 9, 0, 0, 0, time.UTC), 2*time.Hour)
	yesterday.ProfileID = profileID
	yesterday.UserID = userID
	sessionRepo.sessions[yesterday.ID] = &yesterday

	svc := NewHeatmapService(sessionRepo, profileRepo, userRepo).(*heatmapService)
	svc.now = func() time.Time { return now }

	response, err := svc.Heatmap(context.Background(), userID, profileID, 0)
	if err != nil {
		t.Fatalf("Heatmap() error = %v", err)
	}
	if response.WindowDays != DefaultHeatmapDays {
		t.Fatalf("WindowDays = %d, want %d", response.WindowDays, DefaultHeatmapDays)
	}
	if len(response.Days) != DefaultHeatmapDays {
		t.Fatalf("got %d days, want %d", len(response.Days), DefaultHeatmapDays)
	}

	last := response.Days[len(response.Days)-1]
	if !last.Date.Equal(time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("last day = %v, want today", last.Date)
	}

	prev := response.Days[len(response.Days)-2]
	if prev.TotalHours != 2 {
		t.Fatalf("yesterday total = %v hours, want 2", prev.TotalHours)
	}
	if prev.Level != 2 {
		t.Fatalf("yesterday level = %d, want 2", prev.Level)
	}
	for _, d := range response.Days[:len(response.Days)-2] {
		if d.Level != 0 {
			t.Fatalf("empty day %v has level %d", d.Date, d.Level)
		}
	}
}

func TestHeatmapService_DaySessions(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	profileRepo := NewMockProfileRepository()
	profileRepo.profiles[profileID] = &domain.Profile{ID: profileID, UserID: userID, Kind: domain.ProfileKindSleep}

	sessionRepo := NewMockSessionRepository()
	overnight := closedSession(time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC), 8*time.Hour)
	overnight.ProfileID = profileID
	overnight.UserID = userID
	sessionRepo.sessions[overnight.ID] = &overnight

	svc := NewHeatmapService(sessionRepo, profileRepo, userRepo).(*heatmapService)
	svc.now = func() time.Time { return time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC) }

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	response, err := svc.DaySessions(context.Background(), userID, profileID, day)
	if err != nil {
		t.Fatalf("DaySessions() error = %v", err)
	}
	if len(response.Sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(response.Sessions))
	}
	item := response.Sessions[0]
	if !item.MultiDay {
		t.Fatal("overnight session not flagged multi-day")
	}
	// 23:00-07:00 contributes 7 hours to Jan 15.
	if item.OverlapSeconds != 7*3600 {
		t.Fatalf("overlap = %v, want %v", item.OverlapSeconds, 7*3600)
	}
}
