package queries

import (
	"context"
	"database/sql"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectDealers = `SELECT id, name, email, phone, address, created_at FROM dealers`

// GetDealerQueryHandler reads one dealer without locking it.
type GetDealerQueryHandler struct {
	db *gorm.DB
}

// NewGetDealerQueryHandler creates a handler reading through db.
func NewGetDealerQueryHandler(db *gorm.DB) GetDealerQueryHandler {
	return GetDealerQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound for an unknown dealer.
func (h GetDealerQueryHandler) Handle(ctx context.Context, query GetDealerQuery) (DealerResponse, error) {
	if err := query.Validate(); err != nil {
		return DealerResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectDealers+` WHERE id = ?`, query.DealerID().Bytes()).Rows()
	if err != nil {
		return DealerResponse{}, pgerr.Translate("get dealer", err)
	}

	dealers, err := scanDealers(rows)
	if err != nil {
		return DealerResponse{}, err
	}
	if len(dealers) == 0 {
		return DealerResponse{}, errs.NewObjectNotFoundError("dealer", query.DealerID().String())
	}

	return dealers[0], nil
}

// ListDealersQueryHandler pages through dealers by name.
//
// Example:
//
//	handler := NewListDealersQueryHandler(db)
//	query, _ := NewListDealersQuery(20, 0)
//
//	dealers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("first page has %d dealers\n", len(dealers))
type ListDealersQueryHandler struct {
	db *gorm.DB
}

// NewListDealersQueryHandler creates a handler reading through db.
func NewListDealersQueryHandler(db *gorm.DB) ListDealersQueryHandler {
	return ListDealersQueryHandler{db: db}
}

func (h ListDealersQueryHandler) Handle(ctx context.Context, query ListDealersQuery) ([]DealerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectDealers+` ORDER BY name, id LIMIT ? OFFSET ?`, query.Limit(), query.Offset()).
		Rows()
	if err != nil {
		return nil, pgerr.Translate("list dealers", err)
	}

	return scanDealers(rows)
}

// scanDealers consumes and closes rows selected by selectDealers.
func scanDealers(rows *sql.Rows) ([]DealerResponse, error) {
	defer rows.Close()

	dealers := make([]DealerResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			d         DealerResponse
			createdAt time.Time
		)
		if err := rows.Scan(&id, &d.Name, &d.Email, &d.Phone, &d.Address, &createdAt); err != nil {
			return nil, pgerr.Translate("scan dealer", err)
		}

		var err error
		if d.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		d.CreatedAt = createdAt.UTC()
		dealers = append(dealers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, pgerr.Translate("read dealers", err)
	}

	return dealers, nil
}
