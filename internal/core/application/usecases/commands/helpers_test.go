package commands_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewNumber(time.Now(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

func newProduct(t *testing.T, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "SKU-"+kernel.NewUUID().String()[:8], "Oil filter", "", mustMoney(t, price))
	require.NoError(t, err)
	return p
}

func newStock(t *testing.T, productID kernel.UUID, qty int) *inventory.Stock {
	t.Helper()
	s, err := inventory.NewStock(productID, qty)
	require.NoError(t, err)
	return s
}
