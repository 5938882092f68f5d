package queries

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var (
	ErrGetDealerQueryIsNotConstructed = errors.New(
		"GetDealerQuery must be created via NewGetDealerQuery constructor",
	)
	ErrListDealersQueryIsNotConstructed = errors.New(
		"ListDealersQuery must be created via NewListDealersQuery constructor",
	)
)

type DealerResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

type GetDealerQuery struct {
	dealerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetDealerQuery(dealerID kernel.UUID) (GetDealerQuery, error) {
	if err := dealerID.Validate(); err != nil {
		return GetDealerQuery{}, err
	}
	return GetDealerQuery{dealerID: dealerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDealerQuery) Validate() error {
	return q.guard.Validate(ErrGetDealerQueryIsNotConstructed)
}

func (q GetDealerQuery) DealerID() kernel.UUID {
	return q.dealerID
}

// ListDealersQuery pages through dealers by name. Dealers sharing a name keep a stable
// order by id.
type ListDealersQuery struct {
	page  page
	guard guard.ConstructorGuard
}

func NewListDealersQuery(limit, offset int) (ListDealersQuery, error) {
	p, err := newPage(limit, offset)
	if err != nil {
		return ListDealersQuery{}, err
	}
	return ListDealersQuery{page: p, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDealersQuery) Validate() error {
	return q.guard.Validate(ErrListDealersQueryIsNotConstructed)
}

func (q ListDealersQuery) Limit() int {
	return q.page.limit
}

func (q ListDealersQuery) Offset() int {
	return q.page.offset
}
