package queries

import (
	"context"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"gorm.io/gorm"
)

// GetInventoryQueryHandler reports the available quantity of one product along with its SKU and name.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler reading through db.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound when the product has no inventory row.
func (h GetInventoryQueryHandler) Handle(ctx context.Context, query GetInventoryQuery) (GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.sku, p.name, i.quantity, i.updated_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.product_id = ?
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return GetInventoryQueryResponse{}, pgerr.Translate("get inventory", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetInventoryQueryResponse{}, pgerr.Translate("get inventory", err)
		}
		return GetInventoryQueryResponse{}, errs.NewObjectNotFoundError("inventory", query.ProductID().String())
	}

	resp := GetInventoryQueryResponse{ProductID: query.ProductID()}
	var updatedAt time.Time
	if err = rows.Scan(&resp.SKU, &resp.Name, &resp.Quantity, &updatedAt); err != nil {
		return GetInventoryQueryResponse{}, pgerr.Translate("scan inventory", err)
	}
	resp.UpdatedAt = updatedAt.UTC()

	return resp, nil
}
