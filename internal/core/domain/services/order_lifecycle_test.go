package services_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewNumber(time.Now(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

func addItem(t *testing.T, o *order.Order, productID kernel.UUID, qty int, price string) {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	_, err = o.AddItem(productID, qty, unitPrice)
	require.NoError(t, err)
}

func createStock(t *testing.T, productID kernel.UUID, qty int) *inventory.Stock {
	t.Helper()
	s, err := inventory.NewStock(productID, qty)
	require.NoError(t, err)
	return s
}

func TestOrderLifecycle_Confirm(t *testing.T) {
	lifecycle := services.NewOrderLifecycle()

	t.Run("should deduct stock and confirm", func(t *testing.T) {
		productA := kernel.NewUUID()
		o := createDraftOrder(t)
		addItem(t, o, productA, 2, "10.00")
		stockA := createStock(t, productA, 10)

		err := lifecycle.Confirm(o, []*inventory.Stock{stockA})

		require.NoError(t, err)
		assert.Equal(t, 8, stockA.Quantity())
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, "20.00", o.TotalAmount().String())
		require.Len(t, o.DomainEvents(), 1)
	})

	t.Run("should report only short lines and change nothing", func(t *testing.T) {
		productA, productB := kernel.NewUUID(), kernel.NewUUID()
		o := createDraftOrder(t)
		addItem(t, o, productA, 5, "1.00")
		addItem(t, o, productB, 1, "1.00")
		stockA := createStock(t, productA, 3)
		stockB := createStock(t, productB, 10)

		err := lifecycle.Confirm(o, []*inventory.Stock{stockA, stockB})

		require.ErrorIs(t, err, inventory.ErrInsufficientStock)
		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, []inventory.Shortfall{{ProductID: productA, Available: 3, Requested: 5}}, stockErr.Shortfalls)
		assert.Equal(t, 3, stockA.Quantity())
		assert.Equal(t, 10, stockB.Quantity())
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should collect every shortfall", func(t *testing.T) {
		productA, productB := kernel.NewUUID(), kernel.NewUUID()
		o := createDraftOrder(t)
		addItem(t, o, productA, 2, "1.00")
		addItem(t, o, productB, 4, "1.00")

		err := lifecycle.Confirm(o, []*inventory.Stock{createStock(t, productA, 1), createStock(t, productB, 0)})

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Len(t, stockErr.Shortfalls, 2)
	})

	t.Run("should sum lines that share a product", func(t *testing.T) {
		productA := kernel.NewUUID()
		o := createDraftOrder(t)
		addItem(t, o, productA, 2, "1.00")
		addItem(t, o, productA, 2, "1.00")
		stockA := createStock(t, productA, 3)

		err := lifecycle.Confirm(o, []*inventory.Stock{stockA})

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, []inventory.Shortfall{{ProductID: productA, Available: 3, Requested: 4}}, stockErr.Shortfalls)
		assert.Equal(t, 3, stockA.Quantity())
	})

	t.Run("should treat a missing inventory row as nothing available", func(t *testing.T) {
		productA := kernel.NewUUID()
		o := createDraftOrder(t)
		addItem(t, o, productA, 1, "1.00")

		err := lifecycle.Confirm(o, nil)

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 0, stockErr.Shortfalls[0].Available)
	})

	t.Run("should reject empty order", func(t *testing.T) {
		o := createDraftOrder(t)
		require.ErrorIs(t, lifecycle.Confirm(o, nil), order.ErrEmptyOrder)
	})

	t.Run("should not deduct twice", func(t *testing.T) {
		productA := kernel.NewUUID()
		o := createDraftOrder(t)
		addItem(t, o, productA, 1, "1.00")
		stockA := createStock(t, productA, 5)
		require.NoError(t, lifecycle.Confirm(o, []*inventory.Stock{stockA}))

		err := lifecycle.Confirm(o, []*inventory.Stock{stockA})

		require.ErrorIs(t, err, order.ErrInvalidState)
		assert.Equal(t, 4, stockA.Quantity())
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		require.ErrorIs(t, lifecycle.Confirm(&order.Order{}, nil), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderLifecycle_Deliver(t *testing.T) {
	lifecycle := services.NewOrderLifecycle()

	t.Run("should reject draft", func(t *testing.T) {
		o := createDraftOrder(t)
		addItem(t, o, kernel.NewUUID(), 1, "1.00")

		require.ErrorIs(t, lifecycle.Deliver(o), order.ErrInvalidState)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("should deliver confirmed order once", func(t *testing.T) {
		productA := kernel.NewUUID()
		o := createDraftOrder(t)
		addItem(t, o, productA, 1, "1.00")
		require.NoError(t, lifecycle.Confirm(o, []*inventory.Stock{createStock(t, productA, 1)}))

		require.NoError(t, lifecycle.Deliver(o))
		assert.Equal(t, order.Delivered, o.Status())

		err := lifecycle.Deliver(o)
		require.ErrorIs(t, err, order.ErrInvalidState)
		var stateErr *order.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, order.Delivered, stateErr.Status)
	})
}

func TestOrderLifecycle_EnsureMutable(t *testing.T) {
	lifecycle := services.NewOrderLifecycle()
	o := createDraftOrder(t)
	require.NoError(t, lifecycle.EnsureMutable(o, "add item"))

	productA := kernel.NewUUID()
	addItem(t, o, productA, 1, "1.00")
	require.NoError(t, lifecycle.Confirm(o, []*inventory.Stock{createStock(t, productA, 1)}))

	require.ErrorIs(t, lifecycle.EnsureMutable(o, "add item"), order.ErrInvalidState)
}
