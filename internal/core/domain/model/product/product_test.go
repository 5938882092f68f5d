package product_test

import (
	"strings"
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price, err := kernel.MoneyFromString("12.50")
	require.NoError(t, err)

	t.Run("should create product with trimmed fields", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := product.NewProduct(id, "  SKU-1 ", " Brake pad ", " front ", price)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "SKU-1", p.SKU())
		assert.Equal(t, "Brake pad", p.Name())
		assert.Equal(t, "front", p.Description())
		assert.True(t, p.Price().IsEqual(price))
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		p, err := product.NewProduct(kernel.UUID{}, " ", "", "", kernel.Money{})

		assert.Nil(t, p)
		require.ErrorIs(t, err, product.ErrSKUIsRequired)
		require.ErrorIs(t, err, product.ErrNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("should reject overly long sku", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), strings.Repeat("x", 65), "n", "", price)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProduct_ChangePrice(t *testing.T) {
	price, err := kernel.MoneyFromString("1.00")
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "SKU", "Name", "", price)
	require.NoError(t, err)

	newPrice, err := kernel.MoneyFromString("2.00")
	require.NoError(t, err)
	require.NoError(t, p.ChangePrice(newPrice))
	assert.Equal(t, "2.00", p.Price().String())

	require.ErrorIs(t, p.ChangePrice(kernel.Money{}), kernel.ErrMoneyIsNotConstructed)
	assert.Equal(t, "2.00", p.Price().String())
}
