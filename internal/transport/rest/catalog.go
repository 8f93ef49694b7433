package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// catalogReader defines the read-only catalog interface needed by
// CatalogHandler. The postgres catalog repo satisfies it directly.
type catalogReader interface {
	ListActiveWards(ctx context.Context) ([]domain.Ward, error)
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// CatalogHandler serves the reference-data endpoints backing intake forms.
type CatalogHandler struct {
	catalog catalogReader
	log     *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog catalogReader, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: logger.With("handler", "catalog")}
}

type namedItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Wards handles GET /api/wards.
func (h *CatalogHandler) Wards(w http.ResponseWriter, r *http.Request) {
	wards, err := h.catalog.ListActiveWards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]namedItemResponse, 0, len(wards))
	for _, ward := range wards {
		out = append(out, namedItemResponse{ID: ward.ID, Name: ward.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"wards": out})
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListActiveCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]namedItemResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, namedItemResponse{ID: c.ID, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// Departments handles GET /api/departments.
func (h *CatalogHandler) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.catalog.ListDepartments(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]namedItemResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, namedItemResponse{ID: d.ID, Name: d.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"departments": out})
}
