package queries

import (
	"context"
	"database/sql"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const selectProducts = `SELECT id, sku, name, description, price, created_at FROM products`

// GetProductQueryHandler reads one catalog entry.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler reading through db.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound for an unknown product.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectProducts+` WHERE id = ?`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return ProductResponse{}, pgerr.Translate("get product", err)
	}

	products, err := scanProducts(rows)
	if err != nil {
		return ProductResponse{}, err
	}
	if len(products) == 0 {
		return ProductResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	return products[0], nil
}

// ListProductsQueryHandler pages through the catalog by SKU.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler reading through db.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectProducts+` ORDER BY sku LIMIT ? OFFSET ?`, query.Limit(), query.Offset()).
		Rows()
	if err != nil {
		return nil, pgerr.Translate("list products", err)
	}

	return scanProducts(rows)
}

// scanProducts consumes and closes rows selected by selectProducts.
func scanProducts(rows *sql.Rows) ([]ProductResponse, error) {
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var (
			id                     uuid.UUID
			sku, name, description string
			price                  decimal.Decimal
			createdAt              time.Time
		)
		if err := rows.Scan(&id, &sku, &name, &description, &price, &createdAt); err != nil {
			return nil, pgerr.Translate("scan product", err)
		}

		p := ProductResponse{SKU: sku, Name: name, Description: description, CreatedAt: createdAt.UTC()}

		var err error
		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if p.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, pgerr.Translate("read products", err)
	}

	return products, nil
}
