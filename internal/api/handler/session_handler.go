package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/focusguard/focusguard/internal/api/validation"
	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/service"
	"github.com/focusguard/focusguard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Toggle handles POST /v1/users/{userId}/profiles/{profileId}/toggle
// @Summary Toggle blocking
// @Description Start a blocking session for the profile, or stop it if this profile is the active one. Starting while another profile is active stops that one first.
// @Tags sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param profileId path string true "Profile UUID" format(uuid)
// @Success 200 {object} domain.ActiveSessionResponse "New blocking state"
// @Failure 400 {object} problem.Problem "Invalid ID format"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profiles/{profileId}/toggle [post]
func (h *SessionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, profileID, ok := parseUserProfileIDs(w, r)
	if !ok {
		return
	}

	session, started, err := h.service.Toggle(r.Context(), userID, profileID, domain.OriginToggle)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to toggle session").Write(w)
		return
	}

	response := domain.ActiveSessionResponse{Active: started}
	if session != nil {
		sr := session.ToResponse()
		response.Session = &sr
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Active handles GET /v1/users/{userId}/active-session
// @Summary Query active session
// @Description Report whether any profile is blocking right now, and which session.
// @Tags sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ActiveSessionResponse
// @Failure 404 {object} problem.Problem "User not found"
// @Router /users/{userId}/active-session [get]
func (h *SessionHandler) Active(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	session, err := h.service.ActiveSession(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to query active session").Write(w)
		return
	}

	response := domain.ActiveSessionResponse{Active: session != nil}
	if session != nil {
		sr := session.ToResponse()
		response.Session = &sr
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// LogManual handles POST /v1/users/{userId}/profiles/{profileId}/sessions
// @Summary Log past session
// @Description Retroactively record a closed session. An end time at or before the start is rolled over to the next calendar day (overnight interval).
// @Tags sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param request body domain.CreateSessionRequest true "Session times"
// @Success 201 {object} domain.SessionResponse "Session recorded"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Router /users/{userId}/profiles/{profileId}/sessions [post]
func (h *SessionHandler) LogManual(w http.ResponseWriter, r *http.Request) {
	userID, profileID, ok := parseUserProfileIDs(w, r)
	if !ok {
		return
	}

	var req domain.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.LogManual(r.Context(), userID, profileID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Session end must be after start").Write(w)
			return
		}
		problem.InternalError("Failed to log session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/sessions/{sessionId}
// @Summary Edit session times
// @Description Adjust the start or end of a recorded session, e.g. "I actually fell asleep at 23:30".
// @Tags sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param sessionId path string true "Session UUID" format(uuid)
// @Param request body domain.UpdateSessionRequest true "Fields to update"
// @Success 200 {object} domain.SessionResponse "Updated session"
// @Failure 400 {object} problem.Problem "Invalid times"
// @Failure 404 {object} problem.Problem "Session not found"
// @Router /users/{userId}/sessions/{sessionId} [patch]
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		problem.BadRequest("Invalid session ID format").Write(w)
		return
	}

	var req domain.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	session, err := h.service.Update(r.Context(), userID, sessionID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Session not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Session end must be after start").Write(w)
			return
		}
		problem.InternalError("Failed to update session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session.ToResponse())
}

// List handles GET /v1/users/{userId}/profiles/{profileId}/sessions
// @Summary List sessions
// @Description Fetch paginated session history for a profile, newest first. Filter by date range.
// @Tags sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param profileId path string true "Profile UUID" format(uuid)
// @Param from query string false "Start of date range (RFC3339)" format(date-time)
// @Param to query string false "End of date range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SessionListResponse "Sessions with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Router /users/{userId}/profiles/{profileId}/sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, profileID, ok := parseUserProfileIDs(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseSessionFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, profileID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sessions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseUserProfileIDs(w http.ResponseWriter, r *http.Request) (userID, profileID uuid.UUID, ok bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}

	profileID, err = uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, profileID, true
}

func parseSessionFilter(r *http.Request) (domain.SessionFilter, []problem.FieldError) {
	var filter domain.SessionFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
