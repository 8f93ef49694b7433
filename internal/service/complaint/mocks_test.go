package complaint

import (
	"context"
	"time"

	pgcomplaint "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/complaint"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Hand-maintained moq-style mocks for the service interfaces.

var _ complaintRepo = &complaintRepoMock{}

type complaintRepoMock struct {
	CreateFunc             func(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Complaint, error)
	ListFunc               func(ctx context.Context, f domain.ComplaintFilter) ([]domain.Complaint, error)
	ListByUserFunc         func(ctx context.Context, userID int64) ([]domain.Complaint, error)
	GetStatusForUpdateFunc func(ctx context.Context, id int64) (domain.ComplaintStatus, *time.Time, error)
	UpdateStatusFunc       func(ctx context.Context, id int64, upd pgcomplaint.StatusUpdate) error
	UpdateAssignmentFunc   func(ctx context.Context, id int64, department, assignee domain.RefChange) error
}

func (m *complaintRepoMock) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	if m.CreateFunc == nil {
		panic("complaintRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, c)
}

func (m *complaintRepoMock) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	if m.GetByIDFunc == nil {
		panic("complaintRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *complaintRepoMock) List(ctx context.Context, f domain.ComplaintFilter) ([]domain.Complaint, error) {
	if m.ListFunc == nil {
		panic("complaintRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, f)
}

func (m *complaintRepoMock) ListByUser(ctx context.Context, userID int64) ([]domain.Complaint, error) {
	if m.ListByUserFunc == nil {
		panic("complaintRepoMock.ListByUserFunc is nil")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *complaintRepoMock) GetStatusForUpdate(ctx context.Context, id int64) (domain.ComplaintStatus, *time.Time, error) {
	if m.GetStatusForUpdateFunc == nil {
		panic("complaintRepoMock.GetStatusForUpdateFunc is nil")
	}
	return m.GetStatusForUpdateFunc(ctx, id)
}

func (m *complaintRepoMock) UpdateStatus(ctx context.Context, id int64, upd pgcomplaint.StatusUpdate) error {
	if m.UpdateStatusFunc == nil {
		panic("complaintRepoMock.UpdateStatusFunc is nil")
	}
	return m.UpdateStatusFunc(ctx, id, upd)
}

func (m *complaintRepoMock) UpdateAssignment(ctx context.Context, id int64, department, assignee domain.RefChange) error {
	if m.UpdateAssignmentFunc == nil {
		panic("complaintRepoMock.UpdateAssignmentFunc is nil")
	}
	return m.UpdateAssignmentFunc(ctx, id, department, assignee)
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

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	AppendFunc          func(ctx context.Context, e domain.ActivityEntry) error
	ListByComplaintFunc func(ctx context.Context, complaintID int64) ([]domain.ActivityEntry, error)
}

func (m *activityRepoMock) Append(ctx context.Context, e domain.ActivityEntry) error {
	if m.AppendFunc == nil {
		panic("activityRepoMock.AppendFunc is nil")
	}
	return m.AppendFunc(ctx, e)
}

func (m *activityRepoMock) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.ActivityEntry, error) {
	if m.ListByComplaintFunc == nil {
		panic("activityRepoMock.ListByComplaintFunc is nil")
	}
	return m.ListByComplaintFunc(ctx, complaintID)
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
