package commands

import (
	"context"

	"osonish/internal/core/domain/model/order"
	"osonish/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for posting an order.
// Creates new orders in "new" status with both auto-transition flags unset.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, "House cleaning", serviceDate, 200000, 1)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now posted and visible to workers
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a Clock for
// the creation timestamp.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// Creates the order in "new" status with the current instant as both the
// creation and update timestamp.
// Uses transaction to ensure order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	order, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Title(),
		cmd.ServiceDate(),
		cmd.Budget(),
		cmd.WorkersNeeded(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
