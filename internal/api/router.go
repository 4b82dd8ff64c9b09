package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/focusguard/focusguard/docs"
	"github.com/focusguard/focusguard/internal/api/handler"
	"github.com/focusguard/focusguard/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler     *handler.UserHandler
	profileHandler  *handler.ProfileHandler
	sessionHandler  *handler.SessionHandler
	statsHandler    *handler.StatsHandler
	tagHandler      *handler.TagHandler
	insightsHandler *handler.InsightsHandler
	jwtSecret       string
}

func NewRouter(
	userHandler *handler.UserHandler,
	profileHandler *handler.ProfileHandler,
	sessionHandler *handler.SessionHandler,
	statsHandler *handler.StatsHandler,
	tagHandler *handler.TagHandler,
	insightsHandler *handler.InsightsHandler,
	jwtSecret string,
) *Router {
	return &Router{
		userHandler:     userHandler,
		profileHandler:  profileHandler,
		sessionHandler:  sessionHandler,
		statsHandler:    statsHandler,
		tagHandler:      tagHandler,
		insightsHandler: insightsHandler,
		jwtSecret:       jwtSecret,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Auth(rt.jwtSecret))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)
				r.Patch("/", rt.userHandler.Update)

				r.Get("/active-session", rt.sessionHandler.Active)
				r.Patch("/sessions/{sessionId}", rt.sessionHandler.Update)

				r.Route("/profiles", func(r chi.Router) {
					r.Post("/", rt.profileHandler.Create)
					r.Get("/", rt.profileHandler.List)

					r.Route("/{profileId}", func(r chi.Router) {
						r.Post("/toggle", rt.sessionHandler.Toggle)
						r.Post("/sessions", rt.sessionHandler.LogManual)
						r.Get("/sessions", rt.sessionHandler.List)
						r.Get("/heatmap", rt.statsHandler.Heatmap)
						r.Get("/heatmap/{date}", rt.statsHandler.DaySessions)
					})
				})

				r.Route("/sleep", func(r chi.Router) {
					r.Get("/stats", rt.statsHandler.SleepStats)
					r.Get("/insights", rt.insightsHandler.Get)
				})

				r.Post("/tags", rt.tagHandler.Register)
				r.Get("/tags", rt.tagHandler.List)
				r.Post("/scans", rt.tagHandler.Scan)
			})
		})
	})

	return r
}
