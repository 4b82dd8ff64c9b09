package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/service"
	"github.com/focusguard/focusguard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type StatsHandler struct {
	stats   service.StatsService
	heatmap service.HeatmapService
}

func NewStatsHandler(stats service.StatsService, heatmap service.HeatmapService) *StatsHandler {
	return &StatsHandler{stats: stats, heatmap: heatmap}
}

// SleepStats handles GET /v1/users/{userId}/sleep/stats
// @Summary Sleep chart and scores
// @Description Nightly bedtime/wake points for the chart (last 7 nights of the window) plus consistency and accuracy scores.
// @Tags sleep
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param days query integer false "Analysis window in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.SleepStatsResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Router /users/{userId}/sleep/stats [get]
func (h *StatsHandler) SleepStats(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	days, fieldErrors := parseDays(r, service.DefaultStatsWindowDays, 365)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.stats.SleepStats(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep stats").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Heatmap handles GET /v1/users/{userId}/profiles/{profileId}/heatmap
// @Summary Habit heat-map
// @Description Daily blocked-hours totals for the trailing window, bucketed into intensity levels 0-4.
// @Tags stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param days query integer false "Window in days" default(28) minimum(1) maximum(90)
// @Success 200 {object} domain.HeatmapResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Router /users/{userId}/profiles/{profileId}/heatmap [get]
func (h *StatsHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	userID, profileID, ok := parseUserProfileIDs(w, r)
	if !ok {
		return
	}

	days, fieldErrors := parseDays(r, service.DefaultHeatmapDays, service.MaxHeatmapDays)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.heatmap.Heatmap(r.Context(), userID, profileID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to build heatmap").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// DaySessions handles GET /v1/users/{userId}/profiles/{profileId}/heatmap/{date}
// @Summary Heat-map day detail
// @Description Sessions overlapping one calendar day, longest first, with the seconds each contributed to that day.
// @Tags stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param date path string true "Calendar day (YYYY-MM-DD, user's timezone)" format(date) example(2024-01-15)
// @Success 200 {object} domain.DaySessionsResponse
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Router /users/{userId}/profiles/{profileId}/heatmap/{date} [get]
func (h *StatsHandler) DaySessions(w http.ResponseWriter, r *http.Request) {
	userID, profileID, ok := parseUserProfileIDs(w, r)
	if !ok {
		return
	}

	day, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("Invalid date, expected YYYY-MM-DD").Write(w)
		return
	}

	response, err := h.heatmap.DaySessions(r.Context(), userID, profileID, day)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to list day sessions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseDays(r *http.Request, def, max int) (int, []problem.FieldError) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return def, nil
	}

	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 || days > max {
		return 0, []problem.FieldError{{
			Field:   "days",
			Message: "must be an integer between 1 and " + strconv.Itoa(max),
		}}
	}

	return days, nil
}
