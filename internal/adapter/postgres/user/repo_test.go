package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/testutil"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var userCols = []string{
	"id", "name", "email", "password_hash", "kind", "blocked",
	"default_ward_id", "last_login", "created_at",
}

func TestRepo_GetByEmail(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, u *domain.User)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(userCols).
					AddRow(int64(7), "Asha Rao", "asha@example.com", "hash", domain.UserKindCitizen, false, (*int64)(nil), (*time.Time)(nil), now)
				mock.ExpectQuery(`SELECT`).
					WithArgs("asha@example.com").
					WillReturnRows(rows)
			},
			check: func(t *testing.T, u *domain.User) {
				if u.ID != 7 {
					t.Errorf("GetByEmail() id = %d, want 7", u.ID)
				}
				if u.Kind != domain.UserKindCitizen {
					t.Errorf("GetByEmail() kind = %q, want citizen", u.Kind)
				}
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT`).
					WithArgs("asha@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockPool(t)
			repo := New(mock)
			tt.setup(mock)

			u, err := repo.GetByEmail(context.Background(), "asha@example.com")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetByEmail() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetByEmail() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, u)
			}

			testutil.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_GetAdminByEmail(t *testing.T) {
	now := time.Now()

	t.Run("admin with role", func(t *testing.T) {
		mock := testutil.NewMockPool(t)
		repo := New(mock)

		cols := append(append([]string{}, userCols...), "role")
		rows := pgxmock.NewRows(cols).
			AddRow(int64(3), "Priya Iyer", "priya@gov.example", "hash", domain.UserKindAdmin, false,
				(*int64)(nil), (*time.Time)(nil), now, domain.AdminRoleMunicipalOfficial)
		mock.ExpectQuery(`SELECT .* JOIN admin_roles`).
			WithArgs("priya@gov.example", domain.UserKindAdmin).
			WillReturnRows(rows)

		admin, err := repo.GetAdminByEmail(context.Background(), "priya@gov.example")
		if err != nil {
			t.Fatalf("GetAdminByEmail() error = %v", err)
		}
		if admin.Role != domain.AdminRoleMunicipalOfficial {
			t.Errorf("GetAdminByEmail() role = %q, want municipal_official", admin.Role)
		}

		testutil.ExpectationsWereMet(t, mock)
	})

	t.Run("citizen is not found", func(t *testing.T) {
		mock := testutil.NewMockPool(t)
		repo := New(mock)

		mock.ExpectQuery(`SELECT .* JOIN admin_roles`).
			WithArgs("asha@example.com", domain.UserKindAdmin).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetAdminByEmail(context.Background(), "asha@example.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetAdminByEmail() error = %v, want ErrNotFound", err)
		}

		testutil.ExpectationsWereMet(t, mock)
	})
}

func TestRepo_Create(t *testing.T) {
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock := testutil.NewMockPool(t)
		repo := New(mock)

		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Asha Rao", "asha@example.com", "hash", domain.UserKindCitizen, (*int64)(nil)).
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), &domain.User{
			Name:         "Asha Rao",
			Email:        "asha@example.com",
			PasswordHash: "hash",
			Kind:         domain.UserKindCitizen,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if created.ID != 11 {
			t.Errorf("Create() id = %d, want 11", created.ID)
		}

		testutil.ExpectationsWereMet(t, mock)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock := testutil.NewMockPool(t)
		repo := New(mock)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Asha Rao", "asha@example.com", "hash", domain.UserKindCitizen, (*int64)(nil)).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Create(context.Background(), &domain.User{
			Name:         "Asha Rao",
			Email:        "asha@example.com",
			PasswordHash: "hash",
			Kind:         domain.UserKindCitizen,
		})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Errorf("Create() error = %v, want ErrAlreadyExists", err)
		}

		testutil.ExpectationsWereMet(t, mock)
	})
}

func TestRepo_SetBlocked(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := testutil.NewMockPool(t)
		repo := New(mock)

		mock.ExpectExec(`UPDATE users`).
			WithArgs(true, int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		if err := repo.SetBlocked(context.Background(), 5, true); err != nil {
			t.Fatalf("SetBlocked() error = %v", err)
		}

		testutil.ExpectationsWereMet(t, mock)
	})

	t.Run("missing user", func(t *testing.T) {
		mock := testutil.NewMockPool(t)
		repo := New(mock)

		mock.ExpectExec(`UPDATE users`).
			WithArgs(true, int64(999)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SetBlocked(context.Background(), 999, true)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("SetBlocked() error = %v, want ErrNotFound", err)
		}

		testutil.ExpectationsWereMet(t, mock)
	})
}

func TestRepo_GetAdminRole(t *testing.T) {
	t.Run("no role row", func(t *testing.T) {
		mock := testutil.NewMockPool(t)
		repo := New(mock)

		mock.ExpectQuery(`SELECT role FROM admin_roles`).
			WithArgs(int64(4)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetAdminRole(context.Background(), 4)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetAdminRole() error = %v, want ErrNotFound", err)
		}

		testutil.ExpectationsWereMet(t, mock)
	})
}

func TestRepo_ListCitizens(t *testing.T) {
	now := time.Now()

	mock := testutil.NewMockPool(t)
	repo := New(mock)

	cols := append(append([]string{}, userCols...), "complaint_count")
	rows := pgxmock.NewRows(cols).
		AddRow(int64(1), "Asha Rao", "asha@example.com", "hash", domain.UserKindCitizen, false,
			(*int64)(nil), (*time.Time)(nil), now, 3).
		AddRow(int64(2), "Vikram Shah", "vikram@example.com", "hash", domain.UserKindCitizen, true,
			(*int64)(nil), (*time.Time)(nil), now, 0)
	mock.ExpectQuery(`SELECT .* FROM users u LEFT JOIN complaints`).
		WillReturnRows(rows)

	citizens, err := repo.ListCitizens(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("ListCitizens() error = %v", err)
	}
	if len(citizens) != 2 {
		t.Fatalf("ListCitizens() returned %d rows, want 2", len(citizens))
	}
	if citizens[0].ComplaintCount != 3 {
		t.Errorf("ListCitizens()[0].ComplaintCount = %d, want 3", citizens[0].ComplaintCount)
	}
	if !citizens[1].Blocked {
		t.Error("ListCitizens()[1].Blocked = false, want true")
	}

	testutil.ExpectationsWereMet(t, mock)
}
