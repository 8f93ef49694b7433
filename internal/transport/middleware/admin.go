package middleware

import (
	"context"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
	"github.com/civicvoice/civicvoice-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden unless the context identity is an
// admin with a role. Use in REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok || !identity.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
