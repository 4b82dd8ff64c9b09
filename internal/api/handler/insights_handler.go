package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/llm"
	"github.com/focusguard/focusguard/internal/service"
	"github.com/focusguard/focusguard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InsightsHandler handles LLM-generated sleep insights.
type InsightsHandler struct {
	service service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Get handles GET /v1/users/{userId}/sleep/insights
// @Summary LLM sleep insights
// @Description Generate a narrative summary of the user's sleep history with observations and guidance, comparing the last week against the last month.
// @Tags sleep
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.InsightsResponse "Generated insights"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service not configured"
// @Router /users/{userId}/sleep/insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
