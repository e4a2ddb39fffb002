package queries

import (
	"context"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersDueQueryHandler reads the cutoff candidates for a business day
// straight from the database. Returns every order scheduled for that day that
// is still in a status the engine acts on.
type GetOrdersDueQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersDueQueryHandler creates a handler for due order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersDueQueryHandler(db *gorm.DB) GetOrdersDueQueryHandler {
	return GetOrdersDueQueryHandler{db: db}
}

// Handle executes the query for the orders due on the query's day.
// Returns orders in "new", "response_received" or "in_progress" status whose
// service date equals the day. Results are sorted by status then ID for
// consistent output.
func (h GetOrdersDueQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersDueQuery,
) ([]GetOrdersDueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersDueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			status
		FROM orders
		WHERE service_date = ?
		  AND status IN (?, ?, ?)
		ORDER BY status, id
	`, query.Day().Time(), order.New, order.ResponseReceived, order.InProgress).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersDueQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderResp.Title,
			&status,
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
