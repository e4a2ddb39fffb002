package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"osonish/internal/core/application/usecases/commands"
	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/core/domain/model/order"
	"osonish/internal/core/domain/services"
	"osonish/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) NotifyTransitioned(
	ctx context.Context, o *order.Order, transition services.Transition,
) error {
	args := m.Called(ctx, o, transition)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func allScopeCommand(t *testing.T) commands.AutoTransitionOrdersCommand {
	t.Helper()
	cmd, err := commands.NewAutoTransitionOrdersCommand(kernel.NewAllScope())
	require.NoError(t, err)
	return cmd
}

func dueOrder(t *testing.T, status order.Status, flagged bool) *order.Order {
	t.Helper()

	autoCompleted := flagged && status == order.Completed
	autoCancelled := flagged && status == order.Cancelled
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Apartment renovation",
		kernel.ServiceDateOf(handlerNow),
		500000,
		2,
		status,
		autoCompleted,
		autoCancelled,
		handlerNow.Add(-24*time.Hour),
		handlerNow.Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

func newEngine(
	repo *MockOrderRepository, dispatcher ports.NotificationDispatcher,
) commands.AutoTransitionOrdersCommandHandler {
	return commands.NewAutoTransitionOrdersCommandHandler(
		repo,
		services.NewTransitionResolver(),
		dispatcher,
		fixedClock{now: handlerNow},
		discardLogger(),
	)
}

func TestAutoTransitionOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	day := kernel.ServiceDateOf(handlerNow)

	inProgress := dueOrder(t, order.InProgress, false)
	unanswered := dueOrder(t, order.New, false)
	responded := dueOrder(t, order.ResponseReceived, false)

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForCompletion", ctx, day, kernel.NewAllScope()).
		Return([]*order.Order{inProgress}, nil).Once()
	repo.On("GetAllDueForCancellation", ctx, day, kernel.NewAllScope()).
		Return([]*order.Order{unanswered, responded}, nil).Once()
	repo.On("Update", ctx, inProgress).Return(nil).Once()
	repo.On("Update", ctx, unanswered).Return(nil).Once()
	repo.On("Update", ctx, responded).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("NotifyTransitioned", ctx, inProgress, services.TransitionComplete).Return(nil).Once()
	dispatcher.On("NotifyTransitioned", ctx, unanswered, services.TransitionCancel).Return(nil).Once()
	dispatcher.On("NotifyTransitioned", ctx, responded, services.TransitionCancel).Return(nil).Once()

	h := newEngine(repo, dispatcher)
	result, err := h.Handle(ctx, allScopeCommand(t))
	require.NoError(t, err)

	assert.Equal(t, 1, result.CompletedCount)
	assert.Equal(t, 2, result.CancelledCount)
	assert.Equal(t, 0, result.SkippedCount)
	assert.Empty(t, result.Errors)

	assert.Equal(t, order.Completed, inProgress.Status())
	assert.True(t, inProgress.IsAutoCompleted())
	assert.Equal(t, handlerNow, inProgress.UpdatedAt())
	assert.Equal(t, order.Cancelled, unanswered.Status())
	assert.True(t, unanswered.IsAutoCancelled())
	assert.Equal(t, order.Cancelled, responded.Status())
	assert.True(t, responded.IsAutoCancelled())

	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAutoTransitionOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)

	h := newEngine(repo, nil)
	_, err := h.Handle(ctx, commands.AutoTransitionOrdersCommand{})
	require.Error(t, err)
	repo.AssertNotCalled(t, "GetAllDueForCompletion", mock.Anything, mock.Anything, mock.Anything)
}

func TestAutoTransitionOrdersCommandHandler_Handle_SelectionError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForCompletion", ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	h := newEngine(repo, nil)
	result, err := h.Handle(ctx, allScopeCommand(t))
	require.Error(t, err)
	assert.Equal(t, 0, result.Processed())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAutoTransitionOrdersCommandHandler_Handle_SkipsFlaggedOrders(t *testing.T) {
	ctx := t.Context()

	flagged := dueOrder(t, order.Completed, true)

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForCompletion", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{flagged}, nil).Once()
	repo.On("GetAllDueForCancellation", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{}, nil).Once()

	h := newEngine(repo, nil)
	result, err := h.Handle(ctx, allScopeCommand(t))
	require.NoError(t, err)

	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 0, result.CompletedCount)
	assert.Empty(t, result.Errors)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAutoTransitionOrdersCommandHandler_Handle_UpdateFailureIsIsolated(t *testing.T) {
	ctx := t.Context()

	broken := dueOrder(t, order.InProgress, false)
	healthy := dueOrder(t, order.New, false)

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForCompletion", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{broken}, nil).Once()
	repo.On("GetAllDueForCancellation", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{healthy}, nil).Once()
	repo.On("Update", ctx, broken).Return(errors.New("row locked")).Once()
	repo.On("Update", ctx, healthy).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("NotifyTransitioned", ctx, healthy, services.TransitionCancel).Return(nil).Once()

	h := newEngine(repo, dispatcher)
	result, err := h.Handle(ctx, allScopeCommand(t))
	require.NoError(t, err)

	assert.Equal(t, 0, result.CompletedCount)
	assert.Equal(t, 1, result.CancelledCount)
	require.Len(t, result.Errors, 1)
	assert.True(t, result.Errors[0].OrderID.IsEqual(broken.ID()))
	assert.Contains(t, result.Errors[0].Message, "row locked")

	assert.Equal(t, order.Cancelled, healthy.Status())
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAutoTransitionOrdersCommandHandler_Handle_NotificationFailureIsIgnored(t *testing.T) {
	ctx := t.Context()

	candidate := dueOrder(t, order.InProgress, false)

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForCompletion", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{candidate}, nil).Once()
	repo.On("GetAllDueForCancellation", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{}, nil).Once()
	repo.On("Update", ctx, candidate).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("NotifyTransitioned", ctx, candidate, services.TransitionComplete).
		Return(errors.New("broker unavailable")).Once()

	h := newEngine(repo, dispatcher)
	result, err := h.Handle(ctx, allScopeCommand(t))
	require.NoError(t, err)

	assert.Equal(t, 1, result.CompletedCount)
	assert.Empty(t, result.Errors)
	assert.True(t, candidate.IsAutoCompleted())
	dispatcher.AssertExpectations(t)
}

func TestAutoTransitionOrdersCommandHandler_Handle_NilDispatcher(t *testing.T) {
	ctx := t.Context()

	candidate := dueOrder(t, order.New, false)

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForCompletion", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{}, nil).Once()
	repo.On("GetAllDueForCancellation", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{candidate}, nil).Once()
	repo.On("Update", ctx, candidate).Return(nil).Once()

	h := newEngine(repo, nil)
	result, err := h.Handle(ctx, allScopeCommand(t))
	require.NoError(t, err)
	assert.Equal(t, 1, result.CancelledCount)
}

func TestAutoTransitionOrdersCommandHandler_Handle_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	first := dueOrder(t, order.InProgress, false)
	second := dueOrder(t, order.New, false)

	repo := new(MockOrderRepository)
	repo.On("GetAllDueForCompletion", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{first}, nil).Once()
	repo.On("GetAllDueForCancellation", ctx, mock.Anything, mock.Anything).
		Return([]*order.Order{second}, nil).Once()

	h := newEngine(repo, nil)
	result, err := h.Handle(ctx, allScopeCommand(t))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processed())
	assert.Equal(t, order.InProgress, first.Status())
	assert.Equal(t, order.New, second.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
