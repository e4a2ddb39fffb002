package ports

import (
	"context"

	"osonish/internal/core/domain/model/order"
	"osonish/internal/core/domain/services"
)

// NotificationDispatcher publishes transition events so downstream consumers
// can inform the affected customer and workers.
//
// Delivery is best-effort. The cutoff engine logs a failed dispatch and moves
// on; a lost notification never rolls back or blocks the state change that
// caused it.
type NotificationDispatcher interface {
	// NotifyTransitioned publishes an event describing the automatic
	// transition just applied to the order.
	NotifyTransitioned(ctx context.Context, aggregate *order.Order, transition services.Transition) error
}
