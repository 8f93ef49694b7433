package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// CitizenPage is one page of the admin citizen listing.
type CitizenPage struct {
	Citizens []domain.CitizenSummary
	Total    int
}

// ListCitizens returns a page of citizen accounts with their complaint
// counts. Admin-only.
func (s *Service) ListCitizens(ctx context.Context, identity auth.Identity, limit, offset int) (*CitizenPage, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	citizens, err := s.users.ListCitizens(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListCitizens: %w", err)
	}
	total, err := s.users.CountCitizens(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListCitizens count: %w", err)
	}

	return &CitizenPage{Citizens: citizens, Total: total}, nil
}

// SetBlocked blocks or unblocks an account. Blocking also revokes every live
// session, so refresh tokens stop working immediately. Admin-only.
func (s *Service) SetBlocked(ctx context.Context, identity auth.Identity, userID int64, blocked bool) error {
	if !identity.IsAdmin() {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.SetBlocked(ctx, userID, blocked); err != nil {
			return fmt.Errorf("set blocked: %w", err)
		}
		if blocked {
			if err := s.sessions.RevokeAllByUser(ctx, userID); err != nil {
				return fmt.Errorf("revoke sessions: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("user.SetBlocked: %w", err)
	}

	s.log.InfoContext(ctx, "user block state changed",
		slog.Int64("user_id", userID),
		slog.Bool("blocked", blocked),
		slog.Int64("admin_id", identity.UserID))

	return nil
}

// CreateAdminInput holds parameters for provisioning an admin account.
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.AdminRole
}

// Validate validates the admin provisioning input.
func (i CreateAdminInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email == "" || !strings.Contains(i.Email, "@") || len(i.Email) > 320 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(i.Password) < 8 || len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be 8 to 72 characters"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be super_admin, municipal_official or department_worker"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateAdmin provisions an admin account: the user row and its role row are
// created in one transaction so a half-provisioned admin can never exist.
// Callable from the provisioning CLI (identity.UserID == 0) or by a
// super_admin.
func (s *Service) CreateAdmin(ctx context.Context, identity auth.Identity, input CreateAdminInput) (*domain.AdminUser, error) {
	if identity.UserID != 0 && (!identity.IsAdmin() || identity.Admin.Role != domain.AdminRoleSuperAdmin) {
		return nil, domain.ErrForbidden
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("user.CreateAdmin hash password: %w", err)
	}

	admin := &domain.AdminUser{
		User: domain.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: string(hash),
			Kind:         domain.UserKindAdmin,
		},
		Role: input.Role,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Create(ctx, &admin.User)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		admin.User = *created

		if err := s.users.CreateAdminRole(ctx, admin.ID, input.Role); err != nil {
			return fmt.Errorf("insert role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin created",
		slog.Int64("user_id", admin.ID),
		slog.String("role", input.Role.String()))

	return admin, nil
}
