package auth

import (
	"context"
	"time"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Hand-maintained moq-style mocks for the service interfaces.

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	GetAdminByEmailFunc func(ctx context.Context, email string) (*domain.AdminUser, error)
	GetAdminRoleFunc    func(ctx context.Context, userID int64) (domain.AdminRole, error)
	CreateFunc          func(ctx context.Context, u *domain.User) (*domain.User, error)
	RecordLoginFunc     func(ctx context.Context, id int64, at time.Time) error
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc is nil")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) GetAdminByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	if m.GetAdminByEmailFunc == nil {
		panic("userRepoMock.GetAdminByEmailFunc is nil")
	}
	return m.GetAdminByEmailFunc(ctx, email)
}

func (m *userRepoMock) GetAdminRole(ctx context.Context, userID int64) (domain.AdminRole, error) {
	if m.GetAdminRoleFunc == nil {
		panic("userRepoMock.GetAdminRoleFunc is nil")
	}
	return m.GetAdminRoleFunc(ctx, userID)
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) RecordLogin(ctx context.Context, id int64, at time.Time) error {
	if m.RecordLoginFunc == nil {
		panic("userRepoMock.RecordLoginFunc is nil")
	}
	return m.RecordLoginFunc(ctx, id, at)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc          func(ctx context.Context, s *domain.Session) error
	GetByTokenHashFunc  func(ctx context.Context, hash string) (*domain.Session, error)
	RevokeByIDFunc      func(ctx context.Context, id string) error
	RevokeAllByUserFunc func(ctx context.Context, userID int64) error
}

func (m *sessionRepoMock) Create(ctx context.Context, s *domain.Session) error {
	if m.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, s)
}

func (m *sessionRepoMock) GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	if m.GetByTokenHashFunc == nil {
		panic("sessionRepoMock.GetByTokenHashFunc is nil")
	}
	return m.GetByTokenHashFunc(ctx, hash)
}

func (m *sessionRepoMock) RevokeByID(ctx context.Context, id string) error {
	if m.RevokeByIDFunc == nil {
		panic("sessionRepoMock.RevokeByIDFunc is nil")
	}
	return m.RevokeByIDFunc(ctx, id)
}

func (m *sessionRepoMock) RevokeAllByUser(ctx context.Context, userID int64) error {
	if m.RevokeAllByUserFunc == nil {
		panic("sessionRepoMock.RevokeAllByUserFunc is nil")
	}
	return m.RevokeAllByUserFunc(ctx, userID)
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

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(identity auth.Identity) (string, error)
	ValidateAccessTokenFunc  func(token string) (auth.Identity, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(identity auth.Identity) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc is nil")
	}
	return m.GenerateAccessTokenFunc(identity)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (auth.Identity, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc is nil")
	}
	return m.ValidateAccessTokenFunc(token)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if m.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc is nil")
	}
	return m.GenerateRefreshTokenFunc()
}
