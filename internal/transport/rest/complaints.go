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
	"github.com/civicvoice/civicvoice-backend/internal/service/complaint"
)

// maxPublicPageSize caps the page size on the public listing.
const maxPublicPageSize = 100

// complaintService defines the minimal interface needed by ComplaintHandler.
type complaintService interface {
	Create(ctx context.Context, identity authdomain.Identity, input complaint.CreateInput) (*domain.Complaint, error)
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	List(ctx context.Context, f domain.ComplaintFilter) ([]domain.Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Complaint, error)
}

// ComplaintHandler serves public complaint REST endpoints.
type ComplaintHandler struct {
	svc complaintService
	log *slog.Logger
}

// NewComplaintHandler creates a ComplaintHandler.
func NewComplaintHandler(svc complaintService, logger *slog.Logger) *ComplaintHandler {
	return &ComplaintHandler{svc: svc, log: logger.With("handler", "complaints")}
}

type createComplaintRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  *int64   `json:"categoryId,omitempty"`
	WardID      int64    `json:"wardId"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Address     string   `json:"address"`
	PhotoURL    *string  `json:"photoUrl,omitempty"`
}

type complaintResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	Address         string     `json:"address"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	PhotoURL        *string    `json:"photoUrl,omitempty"`
	Upvotes         int        `json:"upvotes"`
	UserName        string     `json:"userName"`
	CategoryName    *string    `json:"categoryName,omitempty"`
	WardName        string     `json:"wardName"`
	DepartmentName  *string    `json:"departmentName,omitempty"`
	ResolutionNotes *string    `json:"resolutionNotes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
}

func toComplaintResponse(c *domain.Complaint) complaintResponse {
	return complaintResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Status:          c.Status.String(),
		Priority:        c.Priority.String(),
		Address:         c.Address,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		PhotoURL:        c.PhotoURL,
		Upvotes:         c.Upvotes,
		UserName:        c.UserName,
		CategoryName:    c.CategoryName,
		WardName:        c.WardName,
		DepartmentName:  c.DepartmentName,
		ResolutionNotes: c.ResolutionNotes,
		CreatedAt:       c.CreatedAt,
		ResolvedAt:      c.ResolvedAt,
	}
}

func toComplaintList(list []domain.Complaint) []complaintResponse {
	out := make([]complaintResponse, 0, len(list))
	for i := range list {
		out = append(out, toComplaintResponse(&list[i]))
	}
	return out
}

// Create handles POST /api/complaints.
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req createComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), identity, complaint.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		WardID:      req.WardID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toComplaintResponse(created))
}

// Get handles GET /api/complaints/{id}.
func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toComplaintResponse(c))
}

// List handles GET /api/complaints with status, category, ward, search and
// pagination query parameters.
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f domain.ComplaintFilter
	if v := q.Get("status"); v != "" {
		status := domain.ComplaintStatus(v)
		f.Status = &status
	}
	if v := q.Get("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category")
			return
		}
		f.CategoryID = &id
	}
	if v := q.Get("ward"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid ward")
			return
		}
		f.WardID = &id
	}
	if v := q.Get("search"); v != "" {
		f.Search = &v
	}

	f.Limit = parseIntParam(q.Get("limit"), maxPublicPageSize)
	if f.Limit > maxPublicPageSize {
		f.Limit = maxPublicPageSize
	}
	f.Offset = parseIntParam(q.Get("offset"), 0)

	list, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"complaints": toComplaintList(list)})
}

// ListMine handles GET /api/users/me/complaints.
func (h *ComplaintHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	list, err := h.svc.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"complaints": toComplaintList(list)})
}

func parseIntParam(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
