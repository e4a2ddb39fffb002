package commands

import (
	"context"
	"errors"
	"log/slog"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/core/domain/model/order"
	"osonish/internal/core/domain/services"
	"osonish/internal/core/ports"
)

// AutoTransitionOrdersCommandHandler runs the daily cutoff over the order
// store. It selects every order whose service date equals the current
// business day, resolves the transition its status calls for, applies it
// and persists the result one order at a time.
//
// Failure semantics:
//   - A selection failure aborts the run before anything is written
//   - A failure on one order is recorded in the result and the run moves on
//   - A candidate already carrying an auto-transition flag is counted as
//     skipped, never rewritten
//   - A failed notification is logged and dropped; the state change stands
//   - A cancelled or expired context stops the run between orders and the
//     partial result is returned without error
type AutoTransitionOrdersCommandHandler struct {
	orderRepo  ports.OrderRepository
	resolver   services.TransitionResolver
	dispatcher ports.NotificationDispatcher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewAutoTransitionOrdersCommandHandler creates a handler for cutoff runs.
// The dispatcher may be nil when no notification transport is configured.
func NewAutoTransitionOrdersCommandHandler(
	orderRepo ports.OrderRepository,
	resolver services.TransitionResolver,
	dispatcher ports.NotificationDispatcher,
	clock ports.Clock,
	logger *slog.Logger,
) AutoTransitionOrdersCommandHandler {
	return AutoTransitionOrdersCommandHandler{
		orderRepo:  orderRepo,
		resolver:   resolver,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle executes one cutoff run for the command's scope.
//
// The business day is the calendar date of the clock at the moment the run
// starts; both candidate sets are selected against it before any order is
// written. A non-nil error means the run could not select its candidates
// and nothing was changed. Per-order failures never surface here; they are
// collected in the returned BatchResult.
func (h *AutoTransitionOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AutoTransitionOrdersCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	now := h.clock.Now()
	day := kernel.ServiceDateOf(now)

	h.logger.Info("cutoff run started",
		"business_day", day.String(),
		"scope", cmd.Scope().String())

	dueForCompletion, err := h.orderRepo.GetAllDueForCompletion(ctx, day, cmd.Scope())
	if err != nil {
		return BatchResult{}, err
	}

	dueForCancellation, err := h.orderRepo.GetAllDueForCancellation(ctx, day, cmd.Scope())
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, candidate := range append(dueForCompletion, dueForCancellation...) {
		if ctx.Err() != nil {
			h.logger.Warn("cutoff run stopped early",
				"reason", ctx.Err().Error(),
				"processed", result.Processed())
			return result, nil
		}

		h.processOrder(ctx, candidate, &result)
	}

	h.logger.Info("cutoff run finished",
		"completed", result.CompletedCount,
		"cancelled", result.CancelledCount,
		"skipped", result.SkippedCount,
		"failed", len(result.Errors))

	return result, nil
}

// processOrder applies the resolved transition to a single candidate and
// records the outcome in the result.
func (h *AutoTransitionOrdersCommandHandler) processOrder(
	ctx context.Context,
	candidate *order.Order,
	result *BatchResult,
) {
	if candidate.IsAutoTransitioned() {
		result.SkippedCount++
		return
	}

	transition, err := h.resolver.Resolve(candidate)
	if err != nil {
		h.recordFailure(candidate, err, result)
		return
	}

	now := h.clock.Now()
	switch transition {
	case services.TransitionComplete:
		err = candidate.AutoComplete(now)
	case services.TransitionCancel:
		err = candidate.AutoCancel(now)
	default:
		err = services.ErrOrderNotEligible
	}

	if errors.Is(err, order.ErrOrderAlreadyTransitioned) {
		result.SkippedCount++
		return
	}
	if err != nil {
		h.recordFailure(candidate, err, result)
		return
	}

	if err = h.orderRepo.Update(ctx, candidate); err != nil {
		h.recordFailure(candidate, err, result)
		return
	}

	switch transition {
	case services.TransitionComplete:
		result.CompletedCount++
	case services.TransitionCancel:
		result.CancelledCount++
	}

	h.notify(ctx, candidate, transition)
}

// recordFailure appends a per-order error and logs it. The run continues.
func (h *AutoTransitionOrdersCommandHandler) recordFailure(
	candidate *order.Order,
	err error,
	result *BatchResult,
) {
	result.Errors = append(result.Errors, OrderError{
		OrderID: candidate.ID(),
		Message: err.Error(),
	})
	h.logger.Error("order transition failed",
		"order_id", candidate.ID().String(),
		"error", err.Error())
}

// notify publishes the transition event. Dispatch failures are logged and
// dropped so the persisted state change is never rolled back over them.
func (h *AutoTransitionOrdersCommandHandler) notify(
	ctx context.Context,
	candidate *order.Order,
	transition services.Transition,
) {
	if h.dispatcher == nil {
		return
	}

	if err := h.dispatcher.NotifyTransitioned(ctx, candidate, transition); err != nil {
		h.logger.Warn("transition notification failed",
			"order_id", candidate.ID().String(),
			"transition", transition.String(),
			"error", err.Error())
	}
}
