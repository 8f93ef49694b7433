package user

import (
	"context"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Hand-maintained moq-style mocks for the service interfaces.

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.User, error)
	CreateFunc          func(ctx context.Context, u *domain.User) (*domain.User, error)
	CreateAdminRoleFunc func(ctx context.Context, userID int64, role domain.AdminRole) error
	UpdateProfileFunc   func(ctx context.Context, id int64, name, email string, wardID *int64) error
	UpdatePasswordFunc  func(ctx context.Context, id int64, hash string) error
	SetBlockedFunc      func(ctx context.Context, id int64, blocked bool) error
	ListCitizensFunc    func(ctx context.Context, limit, offset int) ([]domain.CitizenSummary, error)
	CountCitizensFunc   func(ctx context.Context) (int, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) CreateAdminRole(ctx context.Context, userID int64, role domain.AdminRole) error {
	if m.CreateAdminRoleFunc == nil {
		panic("userRepoMock.CreateAdminRoleFunc is nil")
	}
	return m.CreateAdminRoleFunc(ctx, userID, role)
}

func (m *userRepoMock) UpdateProfile(ctx context.Context, id int64, name, email string, wardID *int64) error {
	if m.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc is nil")
	}
	return m.UpdateProfileFunc(ctx, id, name, email, wardID)
}

func (m *userRepoMock) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if m.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc is nil")
	}
	return m.UpdatePasswordFunc(ctx, id, hash)
}

func (m *userRepoMock) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	if m.SetBlockedFunc == nil {
		panic("userRepoMock.SetBlockedFunc is nil")
	}
	return m.SetBlockedFunc(ctx, id, blocked)
}

func (m *userRepoMock) ListCitizens(ctx context.Context, limit, offset int) ([]domain.CitizenSummary, error) {
	if m.ListCitizensFunc == nil {
		panic("userRepoMock.ListCitizensFunc is nil")
	}
	return m.ListCitizensFunc(ctx, limit, offset)
}

func (m *userRepoMock) CountCitizens(ctx context.Context) (int, error) {
	if m.CountCitizensFunc == nil {
		panic("userRepoMock.CountCitizensFunc is nil")
	}
	return m.CountCitizensFunc(ctx)
}

var _ wardChecker = &wardCheckerMock{}

type wardCheckerMock struct {
	WardExistsFunc func(ctx context.Context, id int64) (bool, error)
}

func (m *wardCheckerMock) WardExists(ctx context.Context, id int64) (bool, error) {
	if m.WardExistsFunc == nil {
		panic("wardCheckerMock.WardExistsFunc is nil")
	}
	return m.WardExistsFunc(ctx, id)
}

var _ sessionRevoker = &sessionRevokerMock{}

type sessionRevokerMock struct {
	RevokeAllByUserFunc func(ctx context.Context, userID int64) error
}

func (m *sessionRevokerMock) RevokeAllByUser(ctx context.Context, userID int64) error {
	if m.RevokeAllByUserFunc == nil {
		panic("sessionRevokerMock.RevokeAllByUserFunc is nil")
	}
	return m.RevokeAllByUserFunc(ctx, userID)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, with no real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
