// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient selection of cutoff candidates by service date and status.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	Title         string
	ServiceDate   time.Time `gorm:"type:date;index:idx_orders_due"`
	Budget        int
	WorkersNeeded int
	Status        int `gorm:"index:idx_orders_due"`
	AutoCompleted bool
	AutoCancelled bool
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Timestamps come from the aggregate, never from the database layer, so the
// update instant written by a cutoff run is the one the engine decided on.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:            order.ID().Bytes(),
		CustomerID:    order.CustomerID().Bytes(),
		Title:         order.Title(),
		ServiceDate:   order.ServiceDate().Time(),
		Budget:        order.Budget(),
		WorkersNeeded: order.WorkersNeeded(),
		Status:        int(order.Status()),
		AutoCompleted: order.IsAutoCompleted(),
		AutoCancelled: order.IsAutoCancelled(),
		CreatedAt:     order.CreatedAt(),
		UpdatedAt:     order.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and auto-transition flags using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	year, month, day := dto.ServiceDate.UTC().Date()
	serviceDate, err := kernel.NewServiceDate(year, month, day)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Title,
		serviceDate,
		dto.Budget,
		dto.WorkersNeeded,
		order.Status(dto.Status),
		dto.AutoCompleted,
		dto.AutoCancelled,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
