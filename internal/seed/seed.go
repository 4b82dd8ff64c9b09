package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 35

// Run seeds the database with sample users, profiles, sessions and tags.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.BlockingSession{}, &domain.ScanTag{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	bedtime := "23:00"
	waketime := "07:00"
	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Warsaw", OptimalBedtime: &bedtime, OptimalWaketime: &waketime},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", OptimalBedtime: &bedtime},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i, user := range users {
		sleepProfile := domain.Profile{
			ID:     deterministicID(user.ID, "sleep"),
			UserID: user.ID,
			Name:   "Sleep",
			Kind:   domain.ProfileKindSleep,
		}
		focusProfile := domain.Profile{
			ID:     deterministicID(user.ID, "focus"),
			UserID: user.ID,
			Name:   "Deep Work",
			Kind:   domain.ProfileKindFocus,
		}
		for _, profile := range []domain.Profile{sleepProfile, focusProfile} {
			if err := db.Where("id = ?", profile.ID).FirstOrCreate(&profile).Error; err != nil {
				return fmt.Errorf("failed to create profile %s: %w", profile.ID, err)
			}
		}

		if err := seedSessions(db, user, sleepProfile, focusProfile, rng); err != nil {
			return err
		}

		tag := domain.ScanTag{
			ID:        deterministicID(user.ID, "tag"),
			UserID:    user.ID,
			ProfileID: sleepProfile.ID,
			Label:     "Bedside tag",
			TagUID:    fmt.Sprintf("seed-tag-%d", i),
		}
		if err := db.Where("id = ?", tag.ID).FirstOrCreate(&tag).Error; err != nil {
			return fmt.Errorf("failed to create tag %s: %w", tag.ID, err)
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSessions(db *gorm.DB, user domain.User, sleep, focus domain.Profile, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 1; i <= seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		// One overnight sleep session per seeded day.
		start := time.Date(date.Year(), date.Month(), date.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, time.UTC)
		end := start.Add(time.Duration(6+rng.Intn(3)) * time.Hour)
		session := domain.BlockingSession{
			ID:        deterministicID(user.ID, fmt.Sprintf("sleep-%d", i)),
			ProfileID: sleep.ID,
			UserID:    user.ID,
			StartedAt: start,
			EndedAt:   &end,
			Origin:    domain.OriginToggle,
		}
		if err := db.Where("id = ?", session.ID).FirstOrCreate(&session).Error; err != nil {
			return fmt.Errorf("failed to create sleep session: %w", err)
		}

		// Roughly every other day a daytime focus block.
		if rng.Float32() < 0.6 {
			fStart := time.Date(date.Year(), date.Month(), date.Day(), 9+rng.Intn(5), rng.Intn(60), 0, 0, time.UTC)
			fEnd := fStart.Add(time.Duration(30+rng.Intn(150)) * time.Minute)
			focusSession := domain.BlockingSession{
				ID:        deterministicID(user.ID, fmt.Sprintf("focus-%d", i)),
				ProfileID: focus.ID,
				UserID:    user.ID,
				StartedAt: fStart,
				EndedAt:   &fEnd,
				Origin:    domain.OriginManual,
			}
			if err := db.Where("id = ?", focusSession.ID).FirstOrCreate(&focusSession).Error; err != nil {
				return fmt.Errorf("failed to create focus session: %w", err)
			}
		}
	}
	return nil
}

// deterministicID derives a stable UUID from the user and a label so
// reruns find the same rows instead of inserting duplicates.
func deterministicID(userID uuid.UUID, label string) uuid.UUID {
	return uuid.NewSHA1(userID, []byte(label))
}
