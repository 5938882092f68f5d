package services

import (
	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderLifecycle drives an order through its states and coordinates it with the inventory ledger.
//
// Business rules:
//   - Items may only change while the order is a draft; EnsureMutable is the one check every
//     item operation goes through
//   - Confirm validates stock for every distinct product before deducting any of it
//   - All shortfalls are reported at once; on a shortfall neither the stocks nor the order change
//   - Deliver has no stock side effects
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle()
//	stocks, _ := inventoryRepo.GetForUpdate(ctx, o.ProductIDs())
//	if err := lifecycle.Confirm(o, stocks); err != nil {
//	    var stockErr *inventory.InsufficientStockError
//	    if errors.As(err, &stockErr) {
//	        // stockErr.Shortfalls lists every line that cannot be served
//	    }
//	    return err
//	}
type OrderLifecycle struct{}

// NewOrderLifecycle creates a new OrderLifecycle instance.
func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// EnsureMutable fails with order.ErrInvalidState unless o is a draft.
func (l OrderLifecycle) EnsureMutable(o *order.Order, operation string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.EnsureMutable(operation)
}

// Confirm deducts the requested quantities from stocks and moves o to Confirmed.
//
// stocks must hold the locked inventory rows for o.ProductIDs(). A product without a row
// is reported as a shortfall with nothing available. Requested quantities are summed per
// product, so two lines for the same product are checked against one row.
func (l OrderLifecycle) Confirm(o *order.Order, stocks []*inventory.Stock) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.ValidateConfirm(); err != nil {
		return err
	}

	byProduct := make(map[kernel.UUID]*inventory.Stock, len(stocks))
	for _, s := range stocks {
		if err := s.Validate(); err != nil {
			return err
		}
		byProduct[s.ProductID()] = s
	}

	requested := o.RequestedQuantities()
	productIDs := o.ProductIDs()

	var shortfalls []inventory.Shortfall
	for _, productID := range productIDs {
		stock, ok := byProduct[productID]
		if !ok {
			shortfalls = append(shortfalls, inventory.Shortfall{
				ProductID: productID,
				Available: 0,
				Requested: requested[productID],
			})
			continue
		}
		if shortfall, short := stock.Shortfall(requested[productID]); short {
			shortfalls = append(shortfalls, shortfall)
		}
	}

	if len(shortfalls) > 0 {
		return inventory.NewInsufficientStockError(shortfalls)
	}

	for _, productID := range productIDs {
		if err := byProduct[productID].Deduct(requested[productID]); err != nil {
			return err
		}
	}

	return o.Confirm()
}

// Deliver moves a confirmed order to Delivered.
func (l OrderLifecycle) Deliver(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Deliver()
}
