package queries

import (
	"context"

	"sales/internal/pkg/pgerr"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns order summaries without items.
//
// Example:
//
//	confirmed := order.Confirmed
//	query, _ := NewListOrdersQuery(&confirmed, &dealerID, 0, 0)
//
//	summaries, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	// summaries holds up to DefaultListOrdersLimit confirmed orders of the dealer, newest first
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler reading through db.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns a page of order summaries. Ties on created_at are broken by order number.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("orders").
		Select("id, order_number, dealer_id, status, total_amount, created_at, updated_at")

	if status, ok := query.Status(); ok {
		stmt = stmt.Where("status = ?", status.String())
	}
	if dealerID, ok := query.DealerID(); ok {
		stmt = stmt.Where("dealer_id = ?", dealerID.Bytes())
	}

	rows, err := stmt.
		Order("created_at DESC, order_number DESC").
		Limit(query.Limit()).
		Offset(query.Offset()).
		Rows()
	if err != nil {
		return nil, pgerr.Translate("list orders", err)
	}

	return scanSummaries(rows)
}
