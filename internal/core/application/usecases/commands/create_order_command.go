package commands

import (
	"errors"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTitleIsRequired       = errors.New("title is required")
	ErrBudgetIsInvalid       = errors.New("budget must not be negative")
	ErrWorkersCountIsInvalid = errors.New("workers needed must be greater than 0")
)

// CreateOrderCommand represents a request to post a new marketplace order.
// Encapsulates the order details a customer submits: what to do, on which day,
// for what budget and for how many workers.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "Apartment renovation", serviceDate, 500000, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s posted and awaiting worker responses", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	title         string
	serviceDate   kernel.ServiceDate
	budget        int
	workersNeeded int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new order.
// Validates the identifiers and service date, requires a non-empty title,
// a non-negative budget and a positive workers count.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	title string,
	serviceDate kernel.ServiceDate,
	budget int,
	workersNeeded int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setTitle(title),
		orderCommand.setServiceDate(serviceDate),
		orderCommand.setBudget(budget),
		orderCommand.setWorkersNeeded(workersNeeded),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the posting customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Title returns the customer-facing headline of the order.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// ServiceDate returns the calendar day the work is scheduled for.
func (c CreateOrderCommand) ServiceDate() kernel.ServiceDate {
	return c.serviceDate
}

// Budget returns the offered payment in the smallest currency unit.
func (c CreateOrderCommand) Budget() int {
	return c.budget
}

// WorkersNeeded returns the requested worker count.
func (c CreateOrderCommand) WorkersNeeded() int {
	return c.workersNeeded
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateOrderCommand) setServiceDate(serviceDate kernel.ServiceDate) error {
	if err := serviceDate.Validate(); err != nil {
		return err
	}

	c.serviceDate = serviceDate
	return nil
}

func (c *CreateOrderCommand) setBudget(budget int) error {
	if budget < 0 {
		return ErrBudgetIsInvalid
	}

	c.budget = budget
	return nil
}

func (c *CreateOrderCommand) setWorkersNeeded(workersNeeded int) error {
	if workersNeeded <= 0 {
		return ErrWorkersCountIsInvalid
	}

	c.workersNeeded = workersNeeded
	return nil
}
