// Package sequencerepo issues order numbers from the order_number_sequences table.
package sequencerepo

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/pgerr"

	"gorm.io/gorm"
)

type GormOrderNumberSequence struct {
	db *gorm.DB
}

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next increments the counter of day's UTC date and returns the resulting number.
// The upsert keeps the row locked until the surrounding transaction ends, so concurrent
// creations on the same day queue behind each other and receive consecutive values.
func (s *GormOrderNumberSequence) Next(ctx context.Context, day time.Time) (order.Number, error) {
	y, m, d := day.UTC().Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var next int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_sequences (day, last_value)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE
			SET last_value = order_number_sequences.last_value + 1
		RETURNING last_value
	`, date).Scan(&next).Error
	if err != nil {
		return order.Number{}, pgerr.Translate("next order number", err)
	}

	return order.NewNumber(date, next)
}
