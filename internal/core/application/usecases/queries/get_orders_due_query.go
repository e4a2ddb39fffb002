// Package queries contains read-only operations against the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return lightweight response structs, bypassing the
// domain aggregates.
package queries

import (
	"errors"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/pkg/guard"
)

var ErrGetOrdersDueQueryIsNotConstructed = errors.New(
	"GetOrdersDueQuery must be created via NewGetOrdersDueQuery constructor",
)

// GetOrdersDueQuery retrieves the orders a cutoff run for the given business
// day would act on. Used to preview a run before the scheduled cutoff fires.
//
// Example:
//
//	query, err := NewGetOrdersDueQuery(kernel.ServiceDateOf(time.Now()))
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrdersDueQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get due orders: %w", err)
//	}
//	fmt.Printf("%d orders due today\n", len(orders))
type GetOrdersDueQuery struct {
	day kernel.ServiceDate

	guard guard.ConstructorGuard
}

// NewGetOrdersDueQuery creates a query for the orders due on the given day.
func NewGetOrdersDueQuery(day kernel.ServiceDate) (GetOrdersDueQuery, error) {
	if err := day.Validate(); err != nil {
		return GetOrdersDueQuery{}, err
	}

	return GetOrdersDueQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersDueQueryIsNotConstructed if validation fails.
func (q GetOrdersDueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersDueQueryIsNotConstructed)
}

// Day returns the business day the query covers.
func (q GetOrdersDueQuery) Day() kernel.ServiceDate {
	return q.day
}

// GetOrdersDueQueryResponse represents one order a cutoff run would touch.
type GetOrdersDueQueryResponse struct {
	ID     kernel.UUID
	Title  string
	Status string
}
