package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Complaints *ComplaintHandler
	Engagement *EngagementHandler
	Profile    *ProfileHandler
	Catalog    *CatalogHandler
	Admin      *AdminHandler
	Health     *HealthHandler
}

// NewRouter mounts all REST routes on a ServeMux. Auth enforcement happens
// inside handlers (identity presence) and services (admin checks); the mux
// only routes.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/admin/login", h.Auth.AdminLogin)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/complaints", h.Complaints.List)
	mux.HandleFunc("POST /api/complaints", h.Complaints.Create)
	mux.HandleFunc("GET /api/complaints/{id}", h.Complaints.Get)
	mux.HandleFunc("GET /api/users/me/complaints", h.Complaints.ListMine)

	mux.HandleFunc("POST /api/complaints/{id}/upvote", h.Engagement.Upvote)
	mux.HandleFunc("GET /api/complaints/{id}/comments", h.Engagement.ListComments)
	mux.HandleFunc("POST /api/complaints/{id}/comments", h.Engagement.AddComment)

	mux.HandleFunc("GET /api/me", h.Profile.Get)
	mux.HandleFunc("PATCH /api/me", h.Profile.Update)

	mux.HandleFunc("GET /api/wards", h.Catalog.Wards)
	mux.HandleFunc("GET /api/categories", h.Catalog.Categories)
	mux.HandleFunc("GET /api/departments", h.Catalog.Departments)

	mux.HandleFunc("PATCH /api/admin/complaints/{id}", h.Admin.UpdateComplaint)
	mux.HandleFunc("GET /api/admin/complaints/{id}/activity", h.Admin.ComplaintActivity)
	mux.HandleFunc("GET /api/admin/users", h.Admin.ListCitizens)
	mux.HandleFunc("PATCH /api/admin/users/{id}/block", h.Admin.SetBlocked)
	mux.HandleFunc("POST /api/admin/admins", h.Admin.CreateAdmin)
	mux.HandleFunc("GET /api/admin/dashboard", h.Admin.Dashboard)

	return mux
}
