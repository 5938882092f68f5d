package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"
)

const (
	DefaultListOrdersLimit = DefaultListLimit
	MaxListOrdersLimit     = MaxListLimit
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders newest first, optionally narrowed to one status
// and one dealer. A limit of zero selects DefaultListOrdersLimit.
type ListOrdersQuery struct {
	status   *order.Status
	dealerID *kernel.UUID
	page     page
	guard    guard.ConstructorGuard
}

func NewListOrdersQuery(status *order.Status, dealerID *kernel.UUID, limit, offset int) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if dealerID != nil {
		if err := dealerID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	p, err := newPage(limit, offset)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		status:   status,
		dealerID: dealerID,
		page:     p,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

func (q ListOrdersQuery) DealerID() (kernel.UUID, bool) {
	if q.dealerID == nil {
		return kernel.UUID{}, false
	}
	return *q.dealerID, true
}

func (q ListOrdersQuery) Limit() int {
	return q.page.limit
}

func (q ListOrdersQuery) Offset() int {
	return q.page.offset
}
