package auth

import "github.com/civicvoice/civicvoice-backend/internal/auth"

// AuthResult is returned by Login, AdminLogin and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	Identity     auth.Identity
}
