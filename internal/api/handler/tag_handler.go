package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/focusguard/focusguard/internal/api/validation"
	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ScanOps is the subset of the scan service the HTTP layer uses.
type ScanOps interface {
	Register(ctx context.Context, userID uuid.UUID, req *domain.RegisterTagRequest) (*domain.ScanTag, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.ScanTag, error)
	Submit(ctx context.Context, userID uuid.UUID, req *domain.ScanRequest) (*domain.ScanResult, error)
}

type TagHandler struct {
	service ScanOps
}

func NewTagHandler(service ScanOps) *TagHandler {
	return &TagHandler{service: service}
}

// Register handles POST /v1/users/{userId}/tags
// @Summary Register scan tag
// @Description Bind an NFC tag or QR code to a profile so scanning it toggles that profile.
// @Tags tags
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.RegisterTagRequest true "Tag data"
// @Success 201 {object} domain.TagResponse "Tag registered"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Failure 409 {object} problem.Problem "Tag UID already registered"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Router /users/{userId}/tags [post]
func (h *TagHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.RegisterTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	tag, err := h.service.Register(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrConflict) {
			problem.Conflict("Tag UID already registered for this user").Write(w)
			return
		}
		problem.InternalError("Failed to register tag").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tag.ToResponse())
}

// List handles GET /v1/users/{userId}/tags
// @Summary List scan tags
// @Tags tags
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.TagResponse
// @Failure 404 {object} problem.Problem "User not found"
// @Router /users/{userId}/tags [get]
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	tags, err := h.service.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list tags").Write(w)
		return
	}

	responses := make([]domain.TagResponse, 0, len(tags))
	for i := range tags {
		responses = append(responses, tags[i].ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Scan handles POST /v1/users/{userId}/scans
// @Summary Report hardware scan
// @Description Accept a scan event from the device and queue the matching profile toggle. Returns 202 once the toggle is queued; at most one scan is processed at a time.
// @Tags tags
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.ScanRequest true "Scanned tag UID"
// @Success 202 {object} domain.ScanResult "Scan accepted"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "Unknown tag UID"
// @Failure 409 {object} problem.Problem "A previous scan is still being processed"
// @Router /users/{userId}/scans [post]
func (h *TagHandler) Scan(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTag) {
			problem.NotFound("No tag registered with this UID").Write(w)
			return
		}
		if errors.Is(err, domain.ErrScanInFlight) {
			problem.Conflict("A previous scan is still being processed").Write(w)
			return
		}
		problem.InternalError("Failed to process scan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(result)
}
