package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/focusguard/focusguard/internal/api/validation"
	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/service"
	"github.com/focusguard/focusguard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /v1/users/{userId}/profiles
// @Summary Create blocking profile
// @Description Create a focus or sleep profile for the user.
// @Tags profiles
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateProfileRequest true "Profile data"
// @Success 201 {object} domain.ProfileResponse "Profile created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Router /users/{userId}/profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// List handles GET /v1/users/{userId}/profiles
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.ProfileResponse
// @Failure 404 {object} problem.Problem "User not found"
// @Router /users/{userId}/profiles [get]
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	profiles, err := h.service.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list profiles").Write(w)
		return
	}

	responses := make([]domain.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, profiles[i].ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}
