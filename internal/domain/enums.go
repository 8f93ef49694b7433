package domain

// UserKind separates citizen accounts from admin accounts. Kind alone does
// not grant admin access: an AdminRole row must also exist.
type UserKind string

const (
	UserKindCitizen UserKind = "citizen"
	UserKindAdmin   UserKind = "admin"
)

func (k UserKind) String() string { return string(k) }

func (k UserKind) IsValid() bool {
	switch k {
	case UserKindCitizen, UserKindAdmin:
		return true
	}
	return false
}

// AdminRole is the fine-grained permission tag required, in addition to
// UserKindAdmin, for admin-panel operations.
type AdminRole string

const (
	AdminRoleSuperAdmin        AdminRole = "super_admin"
	AdminRoleMunicipalOfficial AdminRole = "municipal_official"
	AdminRoleDepartmentWorker  AdminRole = "department_worker"
)

func (r AdminRole) String() string { return string(r) }

func (r AdminRole) IsValid() bool {
	switch r {
	case AdminRoleSuperAdmin, AdminRoleMunicipalOfficial, AdminRoleDepartmentWorker:
		return true
	}
	return false
}

// ComplaintStatus is a flat set: any status may transition to any other,
// including resolved back to pending (officials may reopen issues).
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
)

func (s ComplaintStatus) String() string { return string(s) }

func (s ComplaintStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ComplaintPriority defaults to medium on creation and is never changed by
// the core lifecycle operations.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

func (p ComplaintPriority) String() string { return string(p) }

func (p ComplaintPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ActivityAction tags an activity-log entry with the kind of mutation.
type ActivityAction string

const (
	ActivityCreated       ActivityAction = "created"
	ActivityStatusUpdated ActivityAction = "status_updated"
	ActivityAssigned      ActivityAction = "assigned"
	ActivityUpvoted       ActivityAction = "upvoted"
	ActivityCommented     ActivityAction = "commented"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityCreated, ActivityStatusUpdated, ActivityAssigned, ActivityUpvoted, ActivityCommented:
		return true
	}
	return false
}
