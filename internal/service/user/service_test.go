package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/config"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:        "test-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  30 * 24 * time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func citizenIdentity() auth.Identity {
	return auth.Identity{UserID: 7, Kind: domain.UserKindCitizen, Name: "Asha"}
}

func officialIdentity() auth.Identity {
	return auth.Identity{
		UserID: 3,
		Kind:   domain.UserKindAdmin,
		Name:   "Officer",
		Admin:  &auth.AdminIdentity{AdminID: 3, Role: domain.AdminRoleMunicipalOfficial},
	}
}

func superAdminIdentity() auth.Identity {
	return auth.Identity{
		UserID: 1,
		Kind:   domain.UserKindAdmin,
		Name:   "Root",
		Admin:  &auth.AdminIdentity{AdminID: 1, Role: domain.AdminRoleSuperAdmin},
	}
}

func existingWards() *wardCheckerMock {
	return &wardCheckerMock{
		WardExistsFunc: func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}
}

func TestService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("updates fields without touching the password", func(t *testing.T) {
		t.Parallel()

		passwordTouched := false
		users := &userRepoMock{
			UpdateProfileFunc: func(ctx context.Context, id int64, name, email string, wardID *int64) error {
				if id != 7 || name != "Asha Verma" || email != "asha@new.example.com" {
					t.Errorf("UpdateProfile repo args = (%d, %q, %q)", id, name, email)
				}
				return nil
			},
			UpdatePasswordFunc: func(ctx context.Context, id int64, hash string) error {
				passwordTouched = true
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: id, Name: "Asha Verma", Email: "asha@new.example.com"}, nil
			},
		}
		svc := NewService(testLogger(), users, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		got, err := svc.UpdateProfile(context.Background(), citizenIdentity(), UpdateProfileInput{
			Name:  " Asha Verma ",
			Email: "asha@new.example.com",
		})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if got.Email != "asha@new.example.com" {
			t.Errorf("UpdateProfile() email = %q", got.Email)
		}
		if passwordTouched {
			t.Error("UpdateProfile() rotated the password without being asked")
		}
	})

	t.Run("rotates the password when given", func(t *testing.T) {
		t.Parallel()

		var storedHash string
		users := &userRepoMock{
			UpdateProfileFunc: func(ctx context.Context, id int64, name, email string, wardID *int64) error {
				return nil
			},
			UpdatePasswordFunc: func(ctx context.Context, id int64, hash string) error {
				storedHash = hash
				return nil
			},
			GetByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: id}, nil
			},
		}
		svc := NewService(testLogger(), users, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		pw := "new password"
		_, err := svc.UpdateProfile(context.Background(), citizenIdentity(), UpdateProfileInput{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: &pw,
		})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if storedHash == "" || storedHash == pw {
			t.Errorf("UpdateProfile() stored hash = %q, want a bcrypt hash", storedHash)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw)); err != nil {
			t.Errorf("UpdateProfile() stored hash does not verify: %v", err)
		}
	})

	t.Run("unknown default ward", func(t *testing.T) {
		t.Parallel()

		wards := &wardCheckerMock{
			WardExistsFunc: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		}
		svc := NewService(testLogger(), &userRepoMock{}, wards, &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		wardID := int64(42)
		_, err := svc.UpdateProfile(context.Background(), citizenIdentity(), UpdateProfileInput{
			Name:          "Asha",
			Email:         "asha@example.com",
			DefaultWardID: &wardID,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("UpdateProfile() error = %v, want validation error", err)
		}
	})

	t.Run("email conflict", func(t *testing.T) {
		t.Parallel()

		users := &userRepoMock{
			UpdateProfileFunc: func(ctx context.Context, id int64, name, email string, wardID *int64) error {
				return domain.ErrAlreadyExists
			},
		}
		svc := NewService(testLogger(), users, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		_, err := svc.UpdateProfile(context.Background(), citizenIdentity(), UpdateProfileInput{
			Name:  "Asha",
			Email: "taken@example.com",
		})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("UpdateProfile() error = %v, want ErrAlreadyExists", err)
		}
	})
}

func TestService_ListCitizens(t *testing.T) {
	t.Parallel()

	t.Run("admin only", func(t *testing.T) {
		t.Parallel()

		svc := NewService(testLogger(), &userRepoMock{}, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		_, err := svc.ListCitizens(context.Background(), citizenIdentity(), 10, 0)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("ListCitizens() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("defaults the page size", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		users := &userRepoMock{
			ListCitizensFunc: func(ctx context.Context, limit, offset int) ([]domain.CitizenSummary, error) {
				gotLimit = limit
				return []domain.CitizenSummary{{ComplaintCount: 3}}, nil
			},
			CountCitizensFunc: func(ctx context.Context) (int, error) { return 120, nil },
		}
		svc := NewService(testLogger(), users, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		page, err := svc.ListCitizens(context.Background(), officialIdentity(), 0, -5)
		if err != nil {
			t.Fatalf("ListCitizens() error = %v", err)
		}
		if gotLimit != 50 {
			t.Errorf("ListCitizens() limit = %d, want the 50 default", gotLimit)
		}
		if page.Total != 120 || len(page.Citizens) != 1 {
			t.Errorf("ListCitizens() page = %+v", page)
		}
	})
}

func TestService_SetBlocked(t *testing.T) {
	t.Parallel()

	t.Run("admin only", func(t *testing.T) {
		t.Parallel()

		svc := NewService(testLogger(), &userRepoMock{}, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		err := svc.SetBlocked(context.Background(), citizenIdentity(), 7, true)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("SetBlocked() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("blocking revokes live sessions", func(t *testing.T) {
		t.Parallel()

		users := &userRepoMock{
			SetBlockedFunc: func(ctx context.Context, id int64, blocked bool) error {
				if id != 7 || !blocked {
					t.Errorf("SetBlocked repo args = (%d, %v)", id, blocked)
				}
				return nil
			},
		}
		var revokedUser int64
		sessions := &sessionRevokerMock{
			RevokeAllByUserFunc: func(ctx context.Context, userID int64) error {
				revokedUser = userID
				return nil
			},
		}
		svc := NewService(testLogger(), users, existingWards(), sessions, &txManagerMock{}, defaultCfg())

		if err := svc.SetBlocked(context.Background(), officialIdentity(), 7, true); err != nil {
			t.Fatalf("SetBlocked() error = %v", err)
		}
		if revokedUser != 7 {
			t.Errorf("SetBlocked() revoked sessions of %d, want 7", revokedUser)
		}
	})

	t.Run("unblocking leaves sessions alone", func(t *testing.T) {
		t.Parallel()

		users := &userRepoMock{
			SetBlockedFunc: func(ctx context.Context, id int64, blocked bool) error { return nil },
		}
		sessions := &sessionRevokerMock{
			RevokeAllByUserFunc: func(ctx context.Context, userID int64) error {
				t.Error("SetBlocked() must not revoke sessions on unblock")
				return nil
			},
		}
		svc := NewService(testLogger(), users, existingWards(), sessions, &txManagerMock{}, defaultCfg())

		if err := svc.SetBlocked(context.Background(), officialIdentity(), 7, false); err != nil {
			t.Fatalf("SetBlocked() error = %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		users := &userRepoMock{
			SetBlockedFunc: func(ctx context.Context, id int64, blocked bool) error {
				return domain.ErrNotFound
			},
		}
		svc := NewService(testLogger(), users, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		err := svc.SetBlocked(context.Background(), officialIdentity(), 404, true)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("SetBlocked() error = %v, want ErrNotFound", err)
		}
	})
}

func TestService_CreateAdmin(t *testing.T) {
	t.Parallel()

	validInput := CreateAdminInput{
		Name:     "Officer",
		Email:    "officer@city.gov",
		Password: "correct horse",
		Role:     domain.AdminRoleDepartmentWorker,
	}

	t.Run("super admin provisions user and role atomically", func(t *testing.T) {
		t.Parallel()

		var roleUserID int64
		var roleGiven domain.AdminRole
		users := &userRepoMock{
			CreateFunc: func(ctx context.Context, u *domain.User) (*domain.User, error) {
				if u.Kind != domain.UserKindAdmin {
					t.Errorf("CreateAdmin() user kind = %q, want admin", u.Kind)
				}
				out := *u
				out.ID = 5
				return &out, nil
			},
			CreateAdminRoleFunc: func(ctx context.Context, userID int64, role domain.AdminRole) error {
				roleUserID, roleGiven = userID, role
				return nil
			},
		}
		svc := NewService(testLogger(), users, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		admin, err := svc.CreateAdmin(context.Background(), superAdminIdentity(), validInput)
		if err != nil {
			t.Fatalf("CreateAdmin() error = %v", err)
		}
		if admin.ID != 5 || admin.Role != domain.AdminRoleDepartmentWorker {
			t.Errorf("CreateAdmin() = %+v", admin)
		}
		if roleUserID != 5 || roleGiven != domain.AdminRoleDepartmentWorker {
			t.Errorf("CreateAdmin() role row = (%d, %q), want (5, department_worker)", roleUserID, roleGiven)
		}
	})

	t.Run("provisioning CLI identity is allowed", func(t *testing.T) {
		t.Parallel()

		users := &userRepoMock{
			CreateFunc: func(ctx context.Context, u *domain.User) (*domain.User, error) {
				out := *u
				out.ID = 5
				return &out, nil
			},
			CreateAdminRoleFunc: func(ctx context.Context, userID int64, role domain.AdminRole) error {
				return nil
			},
		}
		svc := NewService(testLogger(), users, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		if _, err := svc.CreateAdmin(context.Background(), auth.Identity{}, validInput); err != nil {
			t.Fatalf("CreateAdmin() error = %v", err)
		}
	})

	t.Run("non-super admins are forbidden", func(t *testing.T) {
		t.Parallel()

		svc := NewService(testLogger(), &userRepoMock{}, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		for _, identity := range []auth.Identity{citizenIdentity(), officialIdentity()} {
			if _, err := svc.CreateAdmin(context.Background(), identity, validInput); !errors.Is(err, domain.ErrForbidden) {
				t.Errorf("CreateAdmin() as %q error = %v, want ErrForbidden", identity.Name, err)
			}
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		t.Parallel()

		svc := NewService(testLogger(), &userRepoMock{}, existingWards(), &sessionRevokerMock{}, &txManagerMock{}, defaultCfg())

		input := validInput
		input.Role = domain.AdminRole("janitor")
		_, err := svc.CreateAdmin(context.Background(), superAdminIdentity(), input)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateAdmin() error = %v, want validation error", err)
		}
	})
}
