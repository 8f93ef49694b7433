package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	authdomain "github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
	"github.com/civicvoice/civicvoice-backend/internal/service/engagement"
)

// engagementService defines the minimal interface needed by EngagementHandler.
type engagementService interface {
	AddUpvote(ctx context.Context, identity authdomain.Identity, complaintID int64) (*engagement.UpvoteResult, error)
	AddComment(ctx context.Context, identity authdomain.Identity, complaintID int64, text string, isPublic bool) (*domain.Comment, error)
	ListComments(ctx context.Context, complaintID int64) ([]domain.Comment, error)
}

// EngagementHandler serves upvote and comment REST endpoints.
type EngagementHandler struct {
	svc engagementService
	log *slog.Logger
}

// NewEngagementHandler creates an EngagementHandler.
func NewEngagementHandler(svc engagementService, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{svc: svc, log: logger.With("handler", "engagement")}
}

type addCommentRequest struct {
	Text     string `json:"text"`
	IsPublic *bool  `json:"isPublic,omitempty"`
}

type commentResponse struct {
	ID         int64     `json:"id"`
	UserName   string    `json:"userName"`
	Text       string    `json:"text"`
	IsOfficial bool      `json:"isOfficial"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		UserName:   c.UserName,
		Text:       c.Text,
		IsOfficial: c.IsOfficial,
		CreatedAt:  c.CreatedAt,
	}
}

// Upvote handles POST /api/complaints/{id}/upvote.
func (h *EngagementHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	result, err := h.svc.AddUpvote(r.Context(), identity, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"added":   result.Added,
		"upvotes": result.Upvotes,
	})
}

// AddComment handles POST /api/complaints/{id}/comments.
func (h *EngagementHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	comment, err := h.svc.AddComment(r.Context(), identity, id, req.Text, isPublic)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

// ListComments handles GET /api/complaints/{id}/comments.
func (h *EngagementHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	comments, err := h.svc.ListComments(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": out})
}
