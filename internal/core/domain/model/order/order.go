package order

import (
	"errors"
	"slices"
	"time"

	"sales/internal/core/domain/model/kernel"
)

// Order is the aggregate root for a dealer's sales order.
//
// Order follows these invariants:
//   - It has a valid id, order number and dealer reference
//   - totalAmount equals the sum of its items' line totals after every mutation
//   - Items change only while status is Draft
//   - Status moves Draft -> Confirmed -> Delivered and never back
type Order struct {
	id          kernel.UUID
	number      Number
	dealerID    kernel.UUID
	status      Status
	items       []*Item
	totalAmount kernel.Money
	createdAt   time.Time
	updatedAt   time.Time

	// events holds transitions not yet handed to the outbox
	events []StatusChanged

	isConstructed bool
}

// NewOrder creates an empty draft order with a zero total.
//
// Parameters:
//   - id: Identifier of the new order (must be a constructed UUID)
//   - number: Order number taken from the per-day sequence
//   - dealerID: The dealer placing the order
//   - createdAt: Creation time, stored in UTC and used as the first updatedAt
//
// Returns:
//   - *Order: A draft order without items
//   - error: Joined validation errors for every invalid argument
//
// Example:
//
//	number, _ := order.NewNumber(time.Now(), 1)
//	o, err := order.NewOrder(kernel.NewUUID(), number, dealerID, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, number Number, dealerID kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Draft,
		totalAmount:   kernel.ZeroMoney(),
		createdAt:     createdAt.UTC(),
		updatedAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDealerID(dealerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates a persisted order. The total is recomputed from the items,
// so a stored total that disagrees with its lines never reaches the domain.
// No events are pending on a restored order.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	dealerID kernel.UUID,
	status Status,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDealerID(dealerID),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate fails for nil or zero-value orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
//
// Returns:
//   - true if other has the same id
//   - false if other is nil or the ids differ
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number, e.g. ORD-20250301-0001.
func (o *Order) Number() Number {
	return o.number
}

// DealerID returns the dealer the order was placed for.
func (o *Order) DealerID() kernel.UUID {
	return o.dealerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of the line totals. It is zero for an order without items.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last item change or status transition, in UTC.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the lines in insertion order. The slice is a copy.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Item finds a line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	idx := o.indexOf(itemID)
	if idx < 0 {
		return nil, newItemNotFoundError(itemID)
	}
	return o.items[idx], nil
}

// EnsureMutable fails with ErrInvalidState unless the order is a draft.
func (o *Order) EnsureMutable(operation string) error {
	return o.status.ValidateMutation(operation)
}

// AddItem appends a line for productID priced at unitPrice, the product's current price.
func (o *Order) AddItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	if err := o.EnsureMutable("add item"); err != nil {
		return nil, err
	}

	item, err := NewItem(kernel.NewUUID(), productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.touch()
	return item, nil
}

// UpdateItemQuantity changes the quantity of an existing line. The unit price snapshot is kept.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, quantity int) error {
	if err := o.EnsureMutable("update item"); err != nil {
		return err
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.setQuantity(quantity); err != nil {
		return err
	}

	o.touch()
	return nil
}

// RemoveItem deletes a line from the order.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.EnsureMutable("remove item"); err != nil {
		return err
	}

	idx := o.indexOf(itemID)
	if idx < 0 {
		return newItemNotFoundError(itemID)
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	o.touch()
	return nil
}

// ProductIDs returns the distinct products referenced by the items in ascending order.
// Locks on inventory rows are taken in exactly this order.
func (o *Order) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		ids = append(ids, item.productID)
	}
	slices.SortFunc(ids, kernel.UUID.Compare)
	return slices.CompactFunc(ids, kernel.UUID.IsEqual)
}

// RequestedQuantities sums item quantities per product. Two lines for the same product
// draw on the same inventory row, so they are checked together.
func (o *Order) RequestedQuantities() map[kernel.UUID]int {
	requested := make(map[kernel.UUID]int, len(o.items))
	for _, item := range o.items {
		requested[item.productID] += item.quantity
	}
	return requested
}

// ValidateConfirm checks the preconditions of confirmation that do not involve stock:
// the order must be a draft and must have at least one item.
func (o *Order) ValidateConfirm() error {
	if _, err := o.status.Confirm(); err != nil {
		return err
	}
	if len(o.items) == 0 {
		return ErrEmptyOrder
	}
	return nil
}

// Confirm moves a non-empty draft to Confirmed. Stock must already have been deducted
// by the caller within the same transaction. The total is not recomputed here: items
// were frozen before the transition.
func (o *Order) Confirm() error {
	if err := o.ValidateConfirm(); err != nil {
		return err
	}
	o.transition(Confirmed)
	return nil
}

// Deliver moves a confirmed order to Delivered.
func (o *Order) Deliver() error {
	if _, err := o.status.Deliver(); err != nil {
		return err
	}
	o.transition(Delivered)
	return nil
}

// DomainEvents returns transitions raised since the order was loaded.
func (o *Order) DomainEvents() []StatusChanged {
	return slices.Clone(o.events)
}

// ClearDomainEvents drops events once they have been persisted.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) transition(to Status) {
	now := time.Now().UTC()
	o.events = append(o.events, StatusChanged{
		EventID:     kernel.NewUUID(),
		OrderID:     o.id,
		OrderNumber: o.number,
		DealerID:    o.dealerID,
		From:        o.status,
		To:          to,
		TotalAmount: o.totalAmount,
		OccurredAt:  now,
	})
	o.status = to
	o.updatedAt = now
}

// touch recomputes the total after an item mutation.
func (o *Order) touch() {
	o.recomputeTotal()
	o.updatedAt = time.Now().UTC()
}

func (o *Order) recomputeTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.lineTotal)
	}
	o.totalAmount = total
}

func (o *Order) indexOf(itemID kernel.UUID) int {
	return slices.IndexFunc(o.items, func(item *Item) bool {
		return item.id.IsEqual(itemID)
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setDealerID(dealerID kernel.UUID) error {
	if err := dealerID.Validate(); err != nil {
		return err
	}
	o.dealerID = dealerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	o.recomputeTotal()
	return nil
}
