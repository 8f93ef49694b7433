package domain

import "time"

// Complaint is a citizen-filed issue report. The owning UserID and CreatedAt
// are immutable after creation. ResolvedAt is derived: it is non-nil exactly
// when Status is resolved.
type Complaint struct {
	ID                   int64
	UserID               int64
	Title                string
	Description          string
	CategoryID           *int64
	WardID               int64
	Latitude             *float64
	Longitude            *float64
	Address              string
	PhotoURL             *string
	Status               ComplaintStatus
	Priority             ComplaintPriority
	AssignedDepartmentID *int64
	AssignedToUserID     *int64
	ResolutionNotes      *string
	Upvotes              int
	CreatedAt            time.Time
	ResolvedAt           *time.Time

	// Denormalized display fields, populated by read queries. Every known
	// caller needs the display form, so reads return it directly.
	UserName       string
	UserEmail      string
	CategoryName   *string
	WardName       string
	DepartmentName *string
}

// ComplaintFilter holds conjunctive filters for complaint listing.
// Limit <= 0 means no cap; public-facing callers must clamp it themselves.
type ComplaintFilter struct {
	Status     *ComplaintStatus
	CategoryID *int64
	WardID     *int64
	Search     *string
	Limit      int
	Offset     int
}

// RefChange expresses a tri-state reference update: Set=false leaves the
// field unchanged, Set=true with nil ID clears it (the explicit unassign
// sentinel), Set=true with an ID assigns it.
type RefChange struct {
	Set bool
	ID  *int64
}

// KeepRef leaves a reference unchanged.
func KeepRef() RefChange { return RefChange{} }

// ClearRef clears a reference.
func ClearRef() RefChange { return RefChange{Set: true} }

// SetRef assigns a reference.
func SetRef(id int64) RefChange { return RefChange{Set: true, ID: &id} }

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	TotalComplaints    int
	PendingCount       int
	InProgressCount    int
	ResolvedCount      int
	TotalCitizens      int
	AvgResolutionHours *float64
	ByCategory         []NamedCount
	ByWard             []NamedCount
}

// NamedCount is a (display name, count) aggregation row.
type NamedCount struct {
	Name  string
	Count int
}
