//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/mocks"
	"github.com/warewise/packaging-service/internal/repository"
)

func TestLoggingService_CreateLog(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("Create", ctx, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
		return doc.Message == "pick plan computed" &&
			doc.ProductID == "PRD-1042" &&
			doc.ActionType == "plan_pick" &&
			!doc.ID.IsZero() &&
			!doc.Timestamp.IsZero()
	})).Return(nil)

	svc := NewLoggingService(repo)

	entry := &model.LogEntry{
		Level:      "info",
		Message:    "pick plan computed",
		ProductID:  "PRD-1042",
		ActionType: "plan_pick",
	}
	require.NoError(t, svc.CreateLog(ctx, entry))
	repo.AssertExpectations(t)
}

func TestLoggingService_CreateLogs(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("CreateMany", ctx, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
		return len(docs) == 2
	})).Return(nil)

	svc := NewLoggingService(repo)

	entries := []*model.LogEntry{
		{Level: "info", Message: "a"},
		{Level: "warn", Message: "b"},
	}
	require.NoError(t, svc.CreateLogs(ctx, entries))
	repo.AssertExpectations(t)
}

func TestLoggingService_CreateLogs_Empty(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := NewLoggingService(repo)

	require.NoError(t, svc.CreateLogs(context.Background(), nil))
	repo.AssertNotCalled(t, "CreateMany")
}

func TestLoggingService_QueryLogs(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("Query", ctx, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
		return opts.ProductID == "PRD-1042" && opts.Limit == 10
	})).Return([]*repository.LogEntryDocument{
		{Timestamp: now, Level: "info", Message: "consolidated", ProductID: "PRD-1042", ActionType: "consolidate"},
	}, nil)

	svc := NewLoggingService(repo)

	entries, err := svc.QueryLogs(ctx, model.LogQueryOptions{ProductID: "PRD-1042", Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "consolidated", entries[0].Message)
	assert.Equal(t, "PRD-1042", entries[0].ProductID)
}

func TestLoggingService_QueryLogs_Error(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("Query", ctx, mock.Anything).Return(nil, errors.New("down"))

	svc := NewLoggingService(repo)

	_, err := svc.QueryLogs(ctx, model.LogQueryOptions{})
	assert.Error(t, err)
}

func TestLoggingService_CountLogs(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("Count", ctx, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
		return opts.Level == "warn"
	})).Return(int64(7), nil)

	svc := NewLoggingService(repo)

	count, err := svc.CountLogs(ctx, model.LogQueryOptions{Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
