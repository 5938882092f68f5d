// Package orderrepo persists order aggregates with their items using GORM.
// Status events raised on an aggregate are written to the outbox within the same transaction.
package orderrepo

import (
	"context"
	"errors"

	"sales/internal/adapters/out/postgres/outboxrepo"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository.
// Every aggregate passed to Add or Update is reported to the tracker.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Create(&dto).Error; err != nil {
		return pgerr.Translate("insert order", err)
	}

	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return pgerr.Translate("insert order items", err)
		}
	}

	if err := r.writeEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"total_amount": dto.TotalAmount,
		"updated_at":   dto.UpdatedAt,
	})
	if result.Error != nil {
		return pgerr.Translate("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.saveItems(ctx, dto); err != nil {
		return err
	}

	if err := r.writeEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE. Item rows are protected
// by the same lock because every item write loads the order through this method first.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerr.Translate("load order", err)
	}

	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&dto.Items).Error
	if err != nil {
		return nil, pgerr.Translate("load order items", err)
	}

	return toDomain(dto)
}

// Delete removes the order row. Its items go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// saveItems makes order_items match dto.Items: removed lines are deleted and the rest upserted.
func (r *GormOrderRepository) saveItems(ctx context.Context, dto OrderDTO) error {
	db := r.db.WithContext(ctx)

	keep := make([]uuid.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		keep = append(keep, item.ID)
	}

	remove := db.Where("order_id = ?", dto.ID)
	if len(keep) > 0 {
		remove = remove.Where("id NOT IN ?", keep)
	}
	if err := remove.Delete(&ItemDTO{}).Error; err != nil {
		return pgerr.Translate("delete order items", err)
	}

	if len(dto.Items) == 0 {
		return nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "quantity", "unit_price", "line_total"}),
	}).Create(&dto.Items).Error
	return pgerr.Translate("upsert order items", err)
}

func (r *GormOrderRepository) writeEvents(ctx context.Context, aggregate *order.Order) error {
	events := aggregate.DomainEvents()
	if len(events) == 0 {
		return nil
	}

	messages := make([]outboxrepo.MessageDTO, 0, len(events))
	for _, event := range events {
		m, err := outboxrepo.FromStatusChanged(event)
		if err != nil {
			return err
		}
		messages = append(messages, m)
	}

	return outboxrepo.NewGormOutboxRepository(r.db).Add(ctx, messages...)
}
