package queries

import (
	"errors"
	"time"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/pkg/guard"
)

var ErrGetAutoTransitionedOrdersQueryIsNotConstructed = errors.New(
	"GetAutoTransitionedOrdersQuery must be created via NewGetAutoTransitionedOrdersQuery constructor",
)

// GetAutoTransitionedOrdersQuery retrieves the orders a cutoff run already
// acted on for the given business day. This is the audit view of a run: which
// orders were force-completed, which were force-cancelled, and when.
//
// Example:
//
//	query, err := NewGetAutoTransitionedOrdersQuery(day)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetAutoTransitionedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get transitioned orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s at %s\n", o.ID, o.Status, o.UpdatedAt)
//	}
type GetAutoTransitionedOrdersQuery struct {
	day kernel.ServiceDate

	guard guard.ConstructorGuard
}

// NewGetAutoTransitionedOrdersQuery creates a query for the orders already
// auto-transitioned on the given day.
func NewGetAutoTransitionedOrdersQuery(day kernel.ServiceDate) (GetAutoTransitionedOrdersQuery, error) {
	if err := day.Validate(); err != nil {
		return GetAutoTransitionedOrdersQuery{}, err
	}

	return GetAutoTransitionedOrdersQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAutoTransitionedOrdersQueryIsNotConstructed if validation fails.
func (q GetAutoTransitionedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAutoTransitionedOrdersQueryIsNotConstructed)
}

// Day returns the business day the query covers.
func (q GetAutoTransitionedOrdersQuery) Day() kernel.ServiceDate {
	return q.day
}

// GetAutoTransitionedOrdersQueryResponse represents one order the cutoff
// engine transitioned, with the flag that tells which way it went.
type GetAutoTransitionedOrdersQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Status        string
	AutoCompleted bool
	AutoCancelled bool
	UpdatedAt     time.Time
}
