package deliveryrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
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

// Update writes the delivery only if its stored status is still the one it
// was loaded with.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, aggregate.StoredStatus().String()).
		Updates(map[string]any{
			"agent_id":     dto.AgentID,
			"status":       dto.Status,
			"code":         dto.Code,
			"issued_codes": dto.IssuedCodes,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrConflict(ctx, aggregate.ID())
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) missingOrConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	return errs.NewConflictError("delivery", fmt.Errorf("%s was changed concurrently", id))
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "id = ?", id)
}

func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "order_id = ?", orderID)
}

func (r *GormDeliveryRepository) first(ctx context.Context, where string, id kernel.UUID) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, where, id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountOpenByAgent counts assigned deliveries that are neither Delivered nor Failed.
func (r *GormDeliveryRepository) CountOpenByAgent(ctx context.Context) (map[kernel.UUID]int, error) {
	var rows []struct {
		AgentID uuid.UUID
		Open    int
	}
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Select("agent_id, COUNT(*) AS open").
		Where("agent_id IS NOT NULL AND status NOT IN ?",
			[]string{delivery.StatusDelivered.String(), delivery.StatusFailed.String()}).
		Group("agent_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[kernel.UUID]int, len(rows))
	for _, row := range rows {
		agentID, err := kernel.UUIDFromBytes(row.AgentID[:])
		if err != nil {
			return nil, err
		}
		counts[agentID] = row.Open
	}
	return counts, nil
}
