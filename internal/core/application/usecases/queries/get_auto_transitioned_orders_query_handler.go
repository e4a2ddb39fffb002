package queries

import (
	"context"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAutoTransitionedOrdersQueryHandler reads the audit trail of cutoff runs
// from the database: every order carrying an auto-transition flag for the
// queried business day.
type GetAutoTransitionedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAutoTransitionedOrdersQueryHandler creates a handler for transitioned order queries.
// Requires a GORM database connection for query execution.
func NewGetAutoTransitionedOrdersQueryHandler(db *gorm.DB) GetAutoTransitionedOrdersQueryHandler {
	return GetAutoTransitionedOrdersQueryHandler{db: db}
}

// Handle executes the query for orders auto-transitioned on the query's day.
// Results are sorted by update time so the run's order of work is preserved.
func (h GetAutoTransitionedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAutoTransitionedOrdersQuery,
) ([]GetAutoTransitionedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAutoTransitionedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			status,
			auto_completed,
			auto_cancelled,
			updated_at
		FROM orders
		WHERE service_date = ?
		  AND (auto_completed OR auto_cancelled)
		ORDER BY updated_at, id
	`, query.Day().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAutoTransitionedOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderResp.Title,
			&status,
			&orderResp.AutoCompleted,
			&orderResp.AutoCancelled,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
