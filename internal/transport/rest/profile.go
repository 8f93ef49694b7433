package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	authdomain "github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
	"github.com/civicvoice/civicvoice-backend/internal/service/user"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Profile(ctx context.Context, identity authdomain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, identity authdomain.Identity, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the authenticated user's own account endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	DefaultWardID *int64  `json:"defaultWardId,omitempty"`
	Password      *string `json:"password,omitempty"`
}

type profileResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Kind          string     `json:"kind"`
	DefaultWardID *int64     `json:"defaultWardId,omitempty"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Kind:          u.Kind.String(),
		DefaultWardID: u.DefaultWardID,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
	}
}

// Get handles GET /api/me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	u, err := h.svc.Profile(r.Context(), identity)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(u))
}

// Update handles PATCH /api/me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), identity, user.UpdateProfileInput{
		Name:          req.Name,
		Email:         req.Email,
		DefaultWardID: req.DefaultWardID,
		Password:      req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(u))
}
