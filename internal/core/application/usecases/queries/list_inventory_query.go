package queries

import (
	"errors"

	"sales/internal/pkg/guard"
)

var ErrListInventoryQueryIsNotConstructed = errors.New(
	"ListInventoryQuery must be created via NewListInventoryQuery constructor",
)

// ListInventoryQuery pages through stock levels ordered by product SKU.
type ListInventoryQuery struct {
	page  page
	guard guard.ConstructorGuard
}

func NewListInventoryQuery(limit, offset int) (ListInventoryQuery, error) {
	p, err := newPage(limit, offset)
	if err != nil {
		return ListInventoryQuery{}, err
	}
	return ListInventoryQuery{page: p, guard: guard.NewConstructorGuard()}, nil
}

func (q ListInventoryQuery) Validate() error {
	return q.guard.Validate(ErrListInventoryQueryIsNotConstructed)
}

func (q ListInventoryQuery) Limit() int {
	return q.page.limit
}

func (q ListInventoryQuery) Offset() int {
	return q.page.offset
}
