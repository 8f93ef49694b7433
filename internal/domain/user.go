package domain

import "time"

// User represents a registered account, citizen or admin.
type User struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	Kind          UserKind
	Blocked       bool
	DefaultWardID *int64
	LastLogin     *time.Time
	CreatedAt     time.Time
}

// AdminUser is a user joined with its admin_roles row. Only users of admin
// kind with a role present can be loaded as AdminUser.
type AdminUser struct {
	User
	Role AdminRole
}

// CitizenSummary is the admin user-list view: a citizen plus the number of
// complaints they have filed.
type CitizenSummary struct {
	User
	ComplaintCount int
}

// Session is a stored refresh-token record backing logout revocation.
type Session struct {
	ID        string
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked reports whether the session has been revoked.
func (s *Session) IsRevoked() bool { return s.RevokedAt != nil }

// IsExpired reports whether the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool { return s.ExpiresAt.Before(now) }
