package ports

import (
	"context"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and selecting the candidate
// sets the daily cutoff engine acts on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists an automatic transition applied to an existing order.
	// Only the status, the auto-transition flags and the update timestamp
	// are written; all other columns are left untouched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllDueForCompletion retrieves in-progress orders whose service date
	// equals the given business day, restricted to the given scope.
	GetAllDueForCompletion(ctx context.Context, day kernel.ServiceDate, scope kernel.Scope) ([]*order.Order, error)

	// GetAllDueForCancellation retrieves orders still in New or
	// ResponseReceived status whose service date equals the given business
	// day, restricted to the given scope.
	GetAllDueForCancellation(ctx context.Context, day kernel.ServiceDate, scope kernel.Scope) ([]*order.Order, error)
}
