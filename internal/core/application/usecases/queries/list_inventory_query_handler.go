package queries

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListInventoryQueryHandler pages through stock levels by product SKU.
type ListInventoryQueryHandler struct {
	db *gorm.DB
}

// NewListInventoryQueryHandler creates a handler reading through db.
func NewListInventoryQueryHandler(db *gorm.DB) ListInventoryQueryHandler {
	return ListInventoryQueryHandler{db: db}
}

// Handle returns one entry per stocked product. Products without an inventory row are
// left out.
func (h ListInventoryQueryHandler) Handle(ctx context.Context, query ListInventoryQuery) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.product_id, p.sku, p.name, i.quantity, i.updated_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		ORDER BY p.sku
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, pgerr.Translate("list inventory", err)
	}
	defer rows.Close()

	stock := make([]GetInventoryQueryResponse, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			entry     GetInventoryQueryResponse
			updatedAt time.Time
		)
		if err = rows.Scan(&productID, &entry.SKU, &entry.Name, &entry.Quantity, &updatedAt); err != nil {
			return nil, pgerr.Translate("scan inventory", err)
		}
		if entry.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		entry.UpdatedAt = updatedAt.UTC()
		stock = append(stock, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("read inventory", err)
	}

	return stock, nil
}
