package orderrepo

import (
	"context"
	"errors"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/core/domain/model/order"
	"osonish/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// noopTracker stands in when the repository is used outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// NewGormOrderRepository creates a new GORM order repository.
// A nil tracker means the repository runs outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	if tracker == nil {
		tracker = noopTracker{}
	}
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists an applied transition. Only the status, the auto-transition
// flags and the update timestamp are written; the rest of the row stays as
// the customer left it.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":         dto.Status,
			"auto_completed": dto.AutoCompleted,
			"auto_cancelled": dto.AutoCancelled,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDueForCompletion retrieves in-progress orders scheduled for the given
// business day, restricted to the given scope.
func (r *GormOrderRepository) GetAllDueForCompletion(
	ctx context.Context,
	day kernel.ServiceDate,
	scope kernel.Scope,
) ([]*order.Order, error) {
	return r.getAllDue(ctx, day, scope, []int{int(order.InProgress)})
}

// GetAllDueForCancellation retrieves orders still waiting for acceptance that
// are scheduled for the given business day, restricted to the given scope.
func (r *GormOrderRepository) GetAllDueForCancellation(
	ctx context.Context,
	day kernel.ServiceDate,
	scope kernel.Scope,
) ([]*order.Order, error) {
	return r.getAllDue(ctx, day, scope, []int{int(order.New), int(order.ResponseReceived)})
}

func (r *GormOrderRepository) getAllDue(
	ctx context.Context,
	day kernel.ServiceDate,
	scope kernel.Scope,
	statuses []int,
) ([]*order.Order, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("service_date = ?", day.Time()).
		Where("status IN ?", statuses)
	if scope.IsRestricted() {
		query = query.Where("title LIKE ?", "%"+scope.Marker()+"%")
	}

	var dtos []OrderDTO
	if err := query.Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
