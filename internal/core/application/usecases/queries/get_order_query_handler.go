package queries

import (
	"context"
	"database/sql"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its items from one read-only REPEATABLE READ
// snapshot, so the returned total always matches the returned lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler reading through db without taking row locks.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its items in position order.
// It fails with errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if tx.Error != nil {
		return GetOrderQueryResponse{}, pgerr.Translate("begin order snapshot", tx.Error)
	}
	defer tx.Rollback()

	rows, err := tx.Raw(`
		SELECT id, order_number, dealer_id, status, total_amount, created_at, updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, pgerr.Translate("get order", err)
	}

	var summaries []OrderSummary
	summaries, err = scanSummaries(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(summaries) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	items, err := h.items(tx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = tx.Commit().Error; err != nil {
		return GetOrderQueryResponse{}, pgerr.Translate("end order snapshot", err)
	}

	return GetOrderQueryResponse{OrderSummary: summaries[0], Items: items}, nil
}

// items reads the lines of orderID through tx, ordered by position.
func (h GetOrderQueryHandler) items(tx *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := tx.Raw(`
		SELECT id, product_id, quantity, unit_price, line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, pgerr.Translate("get order items", err)
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			id, productID        uuid.UUID
			quantity             int
			unitPrice, lineTotal decimal.Decimal
		)
		if err = rows.Scan(&id, &productID, &quantity, &unitPrice, &lineTotal); err != nil {
			return nil, pgerr.Translate("scan order item", err)
		}

		item := OrderItemResponse{Quantity: quantity}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.LineTotal, err = kernel.NewMoney(lineTotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("read order items", err)
	}

	return items, nil
}

// scanSummaries consumes and closes rows selected as
// id, order_number, dealer_id, status, total_amount, created_at, updated_at.
func scanSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			id, dealerID         uuid.UUID
			number, status       string
			total                decimal.Decimal
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &number, &dealerID, &status, &total, &createdAt, &updatedAt); err != nil {
			return nil, pgerr.Translate("scan order", err)
		}

		summary := OrderSummary{Number: number, CreatedAt: createdAt.UTC(), UpdatedAt: updatedAt.UTC()}

		var err error
		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.DealerID, err = kernel.UUIDFromBytes(dealerID[:]); err != nil {
			return nil, err
		}
		if summary.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		if summary.TotalAmount, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, pgerr.Translate("read orders", err)
	}

	return summaries, nil
}
