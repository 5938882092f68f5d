// Package outboxrepo stores serialized domain events until the relay publishes them.
package outboxrepo

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// GetUnpublished locks the oldest unpublished messages. SKIP LOCKED lets several relay
// instances work on disjoint batches.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("load outbox messages", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		m, convErr := toPort(dto)
		if convErr != nil {
			return nil, convErr
		}
		messages = append(messages, m)
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids ...kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", time.Now().UTC()).Error
	return pgerr.Translate("mark outbox messages published", err)
}

// Add writes messages in the caller's transaction. Message ids are the event ids, so writing
// the same pending event twice keeps a single row.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...MessageDTO) error {
	if len(messages) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&messages).Error
	return pgerr.Translate("write outbox messages", err)
}
