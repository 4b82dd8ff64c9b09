package main

import (
	"fmt"
	"log"

	"github.com/focusguard/focusguard/internal/config"
	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/seed"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	var users []domain.User
	if err := db.Order("created_at").Find(&users).Error; err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to list seeded users: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
}
