package order

import (
	"errors"
	"fmt"
	"time"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyTransitioned is returned when an auto transition is applied
	// to an order that already carries an auto-transition flag. The engine treats
	// this as a skip, never as a second write.
	ErrOrderAlreadyTransitioned = errors.New("order was already auto-transitioned")
)

// Order represents a marketplace order in the system. It is the aggregate root
// that manages the order lifecycle from posting through worker acceptance to a
// terminal completed or cancelled state.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers and a non-empty title
//   - Must have a valid service date, non-negative budget and positive workers count
//   - Status transitions follow the rules encoded in Status
//   - autoCompleted and autoCancelled are mutually exclusive and, once set,
//     are never reset (terminal markers)
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who posted the order
	customerID kernel.UUID

	// title is the customer-facing headline; restricted engine scopes
	// match sandbox orders by a marker inside it
	title string

	// serviceDate is the calendar day the work is scheduled for;
	// immutable after creation
	serviceDate kernel.ServiceDate

	// budget is the offered payment in the smallest currency unit
	budget int

	// workersNeeded is how many workers the customer asked for
	workersNeeded int

	// status represents the current state in the order lifecycle
	status Status

	// autoCompleted marks an order force-completed by the cutoff engine
	autoCompleted bool

	// autoCancelled marks an order force-cancelled by the cutoff engine
	autoCancelled bool

	// createdAt is when the order was posted
	createdAt time.Time

	// updatedAt is rewritten on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid order from scratch; it enters the store in status New with both
// auto-transition flags unset.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: identifier of the posting customer
//   - title: customer-facing headline (must be non-empty)
//   - serviceDate: calendar day the work is scheduled for
//   - budget: offered payment (must not be negative)
//   - workersNeeded: requested worker count (must be positive)
//   - now: creation instant, recorded as createdAt and updatedAt
//
// Returns the created order, or a joined validation error if any parameter
// is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	title string,
	serviceDate kernel.ServiceDate,
	budget int,
	workersNeeded int,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setTitle(title),
		order.setServiceDate(serviceDate),
		order.setBudget(budget),
		order.setWorkersNeeded(workersNeeded),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// lifecycle. The status and auto-transition flags are validated for
// consistency: flags must not contradict each other, and a set flag must
// agree with the terminal status it implies.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	title string,
	serviceDate kernel.ServiceDate,
	budget int,
	workersNeeded int,
	status Status,
	autoCompleted bool,
	autoCancelled bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		autoCompleted: autoCompleted,
		autoCancelled: autoCancelled,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setTitle(title),
		order.setServiceDate(serviceDate),
		order.setBudget(budget),
		order.setWorkersNeeded(workersNeeded),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if autoCompleted && autoCancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause("auto transition flags",
			fmt.Errorf("order %s has both auto_completed and auto_cancelled set", id))
	}
	if autoCompleted && status != Completed {
		return nil, errs.NewValueIsInvalidErrorWithCause("auto transition flags",
			fmt.Errorf("order %s is auto_completed but has status %s", id, status))
	}
	if autoCancelled && status != Cancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause("auto transition flags",
			fmt.Errorf("order %s is auto_cancelled but has status %s", id, status))
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who posted the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Title returns the customer-facing headline of the order.
func (o *Order) Title() string {
	return o.title
}

// ServiceDate returns the calendar day the work is scheduled for.
func (o *Order) ServiceDate() kernel.ServiceDate {
	return o.serviceDate
}

// Budget returns the offered payment in the smallest currency unit.
func (o *Order) Budget() int {
	return o.budget
}

// WorkersNeeded returns the requested worker count.
func (o *Order) WorkersNeeded() int {
	return o.workersNeeded
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsAutoCompleted reports whether the cutoff engine force-completed the order.
func (o *Order) IsAutoCompleted() bool {
	return o.autoCompleted
}

// IsAutoCancelled reports whether the cutoff engine force-cancelled the order.
func (o *Order) IsAutoCancelled() bool {
	return o.autoCancelled
}

// IsAutoTransitioned reports whether either auto-transition flag is set.
// The engine's idempotency guard checks this before writing, so a stale
// candidate from an overlapping run becomes a no-op instead of a second write.
func (o *Order) IsAutoTransitioned() bool {
	return o.autoCompleted || o.autoCancelled
}

// CreatedAt returns when the order was posted.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Respond records a worker application, moving the order to ResponseReceived.
// Allowed from New and ResponseReceived only.
func (o *Order) Respond(now time.Time) error {
	newStatus, err := o.status.Respond()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Start records the customer accepting a worker, moving the order to InProgress.
// Allowed from ResponseReceived only.
func (o *Order) Start(now time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// AutoComplete force-completes an in-progress order whose service date has
// arrived, setting the autoCompleted marker.
//
// Business rules:
//   - The order must not carry an auto-transition flag already
//     (returns ErrOrderAlreadyTransitioned)
//   - The order must be in InProgress status
//
// On success the order is Completed, autoCompleted is true and updatedAt is
// rewritten. The marker is never reset afterwards.
func (o *Order) AutoComplete(now time.Time) error {
	if o.IsAutoTransitioned() {
		return ErrOrderAlreadyTransitioned
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.autoCompleted = true
	o.updatedAt = now
	return nil
}

// AutoCancel force-cancels an unstarted order whose service date has arrived,
// setting the autoCancelled marker.
//
// Business rules:
//   - The order must not carry an auto-transition flag already
//     (returns ErrOrderAlreadyTransitioned)
//   - The order must be in New or ResponseReceived status
//
// On success the order is Cancelled, autoCancelled is true and updatedAt is
// rewritten. The marker is never reset afterwards.
func (o *Order) AutoCancel(now time.Time) error {
	if o.IsAutoTransitioned() {
		return ErrOrderAlreadyTransitioned
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.autoCancelled = true
	o.updatedAt = now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the posting customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setTitle validates and sets the order title.
// This is a private method used only during construction.
func (o *Order) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

// setServiceDate validates and sets the scheduled service date.
// This is a private method used only during construction.
func (o *Order) setServiceDate(serviceDate kernel.ServiceDate) error {
	if err := serviceDate.Validate(); err != nil {
		return err
	}
	o.serviceDate = serviceDate
	return nil
}

// setBudget validates and sets the order budget.
// Budget must not be negative. A zero budget is allowed for orders where
// payment is negotiated off-platform.
// This is a private method used only during construction.
func (o *Order) setBudget(budget int) error {
	if budget < 0 {
		return errs.NewValueIsInvalidErrorWithCause("budget", fmt.Errorf("%d is negative", budget))
	}
	o.budget = budget
	return nil
}

// setWorkersNeeded validates and sets the requested worker count.
// The count must be positive.
// This is a private method used only during construction.
func (o *Order) setWorkersNeeded(workersNeeded int) error {
	if workersNeeded <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("workers needed",
			fmt.Errorf("%d is not greater than 0", workersNeeded))
	}
	o.workersNeeded = workersNeeded
	return nil
}

// setStatus validates and sets the restored status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
