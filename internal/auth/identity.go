// Package auth holds the identity model and JWT token management.
package auth

import "github.com/civicvoice/civicvoice-backend/internal/domain"

// AdminIdentity carries the admin-specific facts of a session. It only
// exists when the user both has admin kind and an AdminRole row.
type AdminIdentity struct {
	AdminID int64
	Role    domain.AdminRole
}

// Identity is the fact set established by a successful login. It is passed
// explicitly into every core operation; there is no ambient session state.
// Admin is nil for citizen sessions.
type Identity struct {
	UserID int64
	Kind   domain.UserKind
	Name   string
	Admin  *AdminIdentity
}

// IsAdmin requires both the admin user kind and the admin marker. Checking
// only one of the two is the bug class this type exists to eliminate.
func (i Identity) IsAdmin() bool {
	return i.Kind == domain.UserKindAdmin && i.Admin != nil && i.Admin.Role.IsValid()
}
