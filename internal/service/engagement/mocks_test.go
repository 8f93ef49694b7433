package engagement

import (
	"context"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Hand-maintained moq-style mocks for the service interfaces.

var _ upvoteRepo = &upvoteRepoMock{}

type upvoteRepoMock struct {
	InsertUpvoteFunc       func(ctx context.Context, complaintID, userID int64) (bool, error)
	InsertCommentFunc      func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListPublicCommentsFunc func(ctx context.Context, complaintID int64) ([]domain.Comment, error)
}

func (m *upvoteRepoMock) InsertUpvote(ctx context.Context, complaintID, userID int64) (bool, error) {
	if m.InsertUpvoteFunc == nil {
		panic("upvoteRepoMock.InsertUpvoteFunc is nil")
	}
	return m.InsertUpvoteFunc(ctx, complaintID, userID)
}

func (m *upvoteRepoMock) InsertComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if m.InsertCommentFunc == nil {
		panic("upvoteRepoMock.InsertCommentFunc is nil")
	}
	return m.InsertCommentFunc(ctx, c)
}

func (m *upvoteRepoMock) ListPublicComments(ctx context.Context, complaintID int64) ([]domain.Comment, error) {
	if m.ListPublicCommentsFunc == nil {
		panic("upvoteRepoMock.ListPublicCommentsFunc is nil")
	}
	return m.ListPublicCommentsFunc(ctx, complaintID)
}

var _ counterRepo = &counterRepoMock{}

type counterRepoMock struct {
	RecountUpvotesFunc func(ctx context.Context, id int64) (int, error)
}

func (m *counterRepoMock) RecountUpvotes(ctx context.Context, id int64) (int, error) {
	if m.RecountUpvotesFunc == nil {
		panic("counterRepoMock.RecountUpvotesFunc is nil")
	}
	return m.RecountUpvotesFunc(ctx, id)
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	AppendFunc func(ctx context.Context, e domain.ActivityEntry) error
}

func (m *activityRepoMock) Append(ctx context.Context, e domain.ActivityEntry) error {
	if m.AppendFunc == nil {
		panic("activityRepoMock.AppendFunc is nil")
	}
	return m.AppendFunc(ctx, e)
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
