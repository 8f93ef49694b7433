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
	"github.com/civicvoice/civicvoice-backend/internal/service/user"
)

// adminComplaintService is the admin-facing slice of the complaint service.
type adminComplaintService interface {
	UpdateStatusAndAssignment(ctx context.Context, identity authdomain.Identity, id int64, input complaint.UpdateStatusInput) (*domain.Complaint, error)
	ActivityTrail(ctx context.Context, identity authdomain.Identity, complaintID int64) ([]domain.ActivityEntry, error)
}

// adminUserService is the admin-facing slice of the user service.
type adminUserService interface {
	ListCitizens(ctx context.Context, identity authdomain.Identity, limit, offset int) (*user.CitizenPage, error)
	SetBlocked(ctx context.Context, identity authdomain.Identity, userID int64, blocked bool) error
	CreateAdmin(ctx context.Context, identity authdomain.Identity, input user.CreateAdminInput) (*domain.AdminUser, error)
}

// dashboardService computes the admin dashboard aggregates.
type dashboardService interface {
	Dashboard(ctx context.Context, identity authdomain.Identity) (*domain.DashboardStats, error)
}

// AdminHandler serves the admin-panel REST endpoints.
type AdminHandler struct {
	complaints adminComplaintService
	users      adminUserService
	stats      dashboardService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(
	complaints adminComplaintService,
	users adminUserService,
	stats dashboardService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		complaints: complaints,
		users:      users,
		stats:      stats,
		log:        logger.With("handler", "admin"),
	}
}

// refChangeRequest is the wire form of a tri-state reference update. An
// absent field leaves the reference unchanged; an explicit null clears it.
type refChangeRequest struct {
	set bool
	id  *int64
}

func (r *refChangeRequest) UnmarshalJSON(data []byte) error {
	r.set = true
	return json.Unmarshal(data, &r.id)
}

func (r refChangeRequest) toDomain() domain.RefChange {
	return domain.RefChange{Set: r.set, ID: r.id}
}

type updateStatusRequest struct {
	Status          string           `json:"status"`
	ResolutionNotes *string          `json:"resolutionNotes,omitempty"`
	DepartmentID    refChangeRequest `json:"departmentId"`
	AssignedTo      refChangeRequest `json:"assignedTo"`
}

// UpdateComplaint handles PATCH /api/admin/complaints/{id}.
func (h *AdminHandler) UpdateComplaint(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.complaints.UpdateStatusAndAssignment(r.Context(), identity, id, complaint.UpdateStatusInput{
		Status:          domain.ComplaintStatus(req.Status),
		ResolutionNotes: req.ResolutionNotes,
		Department:      req.DepartmentID.toDomain(),
		AssignedTo:      req.AssignedTo.toDomain(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toComplaintResponse(updated))
}

type activityResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ComplaintActivity handles GET /api/admin/complaints/{id}/activity.
func (h *AdminHandler) ComplaintActivity(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	entries, err := h.complaints.ActivityTrail(r.Context(), identity, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]activityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			Action:      e.Action.String(),
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"activity": out})
}

type citizenResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Blocked        bool       `json:"blocked"`
	ComplaintCount int        `json:"complaintCount"`
	LastLogin      *time.Time `json:"lastLogin,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ListCitizens handles GET /api/admin/users.
func (h *AdminHandler) ListCitizens(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	limit := parseIntParam(q.Get("limit"), 50)
	offset := parseIntParam(q.Get("offset"), 0)

	page, err := h.users.ListCitizens(r.Context(), identity, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]citizenResponse, 0, len(page.Citizens))
	for _, c := range page.Citizens {
		out = append(out, citizenResponse{
			ID:             c.ID,
			Name:           c.Name,
			Email:          c.Email,
			Blocked:        c.Blocked,
			ComplaintCount: c.ComplaintCount,
			LastLogin:      c.LastLogin,
			CreatedAt:      c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"citizens": out,
		"total":    page.Total,
	})
}

type setBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

// SetBlocked handles PATCH /api/admin/users/{id}/block.
func (h *AdminHandler) SetBlocked(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req setBlockedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.users.SetBlocked(r.Context(), identity, id, req.Blocked); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateAdmin handles POST /api/admin/admins.
func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req createAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := h.users.CreateAdmin(r.Context(), identity, user.CreateAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.AdminRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role.String(),
	})
}

type namedCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type dashboardResponse struct {
	TotalComplaints    int                  `json:"totalComplaints"`
	Pending            int                  `json:"pending"`
	InProgress         int                  `json:"inProgress"`
	Resolved           int                  `json:"resolved"`
	TotalCitizens      int                  `json:"totalCitizens"`
	AvgResolutionHours *float64             `json:"avgResolutionHours,omitempty"`
	ByCategory         []namedCountResponse `json:"byCategory"`
	ByWard             []namedCountResponse `json:"byWard"`
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.stats.Dashboard(r.Context(), identity)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := dashboardResponse{
		TotalComplaints:    stats.TotalComplaints,
		Pending:            stats.PendingCount,
		InProgress:         stats.InProgressCount,
		Resolved:           stats.ResolvedCount,
		TotalCitizens:      stats.TotalCitizens,
		AvgResolutionHours: stats.AvgResolutionHours,
		ByCategory:         toNamedCounts(stats.ByCategory),
		ByWard:             toNamedCounts(stats.ByWard),
	}
	writeJSON(w, http.StatusOK, resp)
}

func toNamedCounts(rows []domain.NamedCount) []namedCountResponse {
	out := make([]namedCountResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, namedCountResponse{Name: row.Name, Count: row.Count})
	}
	return out
}
