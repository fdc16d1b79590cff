package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
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

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the lines whose status changed since they were read. Each
// write is conditional on the stored status; a line moved by someone else in
// the meantime fails the whole update with a conflict.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	for _, item := range aggregate.SaleItems() {
		if !item.IsChanged() {
			continue
		}
		result := db.Model(&SaleItemDTO{}).
			Where("id = ? AND status = ?", item.ID().Bytes(), item.StoredStatus().String()).
			Update("status", item.Status().String())
		if err := checkConditionalWrite(result, "sale item", item.ID()); err != nil {
			return err
		}
	}

	for _, booking := range aggregate.RentBookings() {
		if !booking.IsChanged() {
			continue
		}
		result := db.Model(&RentBookingDTO{}).
			Where("id = ? AND status = ?", booking.ID().Bytes(), booking.StoredStatus().String()).
			Updates(map[string]any{
				"status":      booking.Status().String(),
				"returned_at": booking.ReturnedAt(),
				"late_fee":    booking.LateFee().Decimal(),
			})
		if err := checkConditionalWrite(result, "rent booking", booking.ID()); err != nil {
			return err
		}
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func checkConditionalWrite(result *gorm.DB, resource string, id kernel.UUID) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError(resource,
			fmt.Errorf("%s was changed concurrently", id))
	}
	return nil
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySaleItem retrieves the order owning a sale item.
func (r *GormOrderRepository) GetBySaleItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	return r.getByLine(ctx, &SaleItemDTO{}, "sale item", itemID)
}

// GetByRentBooking retrieves the order owning a rent booking.
func (r *GormOrderRepository) GetByRentBooking(ctx context.Context, bookingID kernel.UUID) (*order.Order, error) {
	return r.getByLine(ctx, &RentBookingDTO{}, "rent booking", bookingID)
}

func (r *GormOrderRepository) getByLine(
	ctx context.Context,
	model any,
	resource string,
	lineID kernel.UUID,
) (*order.Order, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}

	var orderIDs []uuid.UUID
	if err := r.db.WithContext(ctx).Model(model).
		Where("id = ?", lineID.Bytes()).
		Pluck("order_id", &orderIDs).Error; err != nil {
		return nil, err
	}
	if len(orderIDs) == 0 {
		return nil, errs.NewObjectNotFoundError(resource, lineID.String())
	}

	orderID, err := kernel.UUIDFromBytes(orderIDs[0][:])
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, orderID)
}

// GetWithPastDueRentals retrieves orders holding an Active booking whose
// period ended before the day of now.
func (r *GormOrderRepository) GetWithPastDueRentals(ctx context.Context, now time.Time) ([]*order.Order, error) {
	today := kernel.Date(now)

	var dtos []OrderDTO
	if err := r.withLines(ctx).
		Where("id IN (?)", r.db.WithContext(ctx).Model(&RentBookingDTO{}).
			Select("order_id").
			Where("status = ? AND end_date < ?", order.RentActive.String(), today)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
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

func (r *GormOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("SaleItems", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RentBookings", func(db *gorm.DB) *gorm.DB { return db.Order("start_date, id") })
}
