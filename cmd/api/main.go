// FocusGuard API
//
// REST API backing a profile-based app blocker with sleep tracking.
//
//	@title			FocusGuard API
//	@version		1.0
//	@description	Blocking profiles, session tracking, sleep charts and scores, habit heat-maps, and scan-tag toggles.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User registration and settings
//
//	@tag.name			profiles
//	@tag.description	Blocking profile management
//
//	@tag.name			sessions
//	@tag.description	Blocking session tracking and history
//
//	@tag.name			sleep
//	@tag.description	Sleep chart, scores, and LLM insights
//
//	@tag.name			stats
//	@tag.description	Habit heat-map endpoints
//
//	@tag.name			tags
//	@tag.description	NFC/QR scan tag endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/focusguard/focusguard/internal/api"
	"github.com/focusguard/focusguard/internal/api/handler"
	"github.com/focusguard/focusguard/internal/config"
	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/llm"
	"github.com/focusguard/focusguard/internal/repository"
	"github.com/focusguard/focusguard/internal/seed"
	"github.com/focusguard/focusguard/internal/service"
	"github.com/focusguard/focusguard/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.BlockingSession{}, &domain.ScanTag{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize tracing (no-op when no exporter endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "focusguard-api")
	if err != nil {
		log.Printf("Warning: failed to initialize tracing: %v", err)
	} else {
		defer shutdownTracer(context.Background())
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	profileService := service.NewProfileService(profileRepo, userRepo)
	sessionService := service.NewSessionService(sessionRepo, profileRepo, userRepo)
	statsService := service.NewStatsService(sessionRepo, userRepo)
	heatmapService := service.NewHeatmapService(sessionRepo, profileRepo, userRepo)

	scanService := service.NewScanService(tagRepo, profileRepo, userRepo, sessionService)
	defer scanService.Close()

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(statsService, openaiClient, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	statsHandler := handler.NewStatsHandler(statsService, heatmapService)
	tagHandler := handler.NewTagHandler(scanService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(userHandler, profileHandler, sessionHandler, statsHandler, tagHandler, insightsHandler, cfg.AuthJWTSecret)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
