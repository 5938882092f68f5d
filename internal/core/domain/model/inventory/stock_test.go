package inventory_test

import (
	"testing"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStock(t *testing.T) {
	t.Run("should create stock with zero or positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, 1, 500} {
			s, err := inventory.NewStock(kernel.NewUUID(), qty)
			require.NoError(t, err)
			require.NoError(t, s.Validate())
			assert.Equal(t, qty, s.Quantity())
		}
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		s, err := inventory.NewStock(kernel.NewUUID(), -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, s)
	})

	t.Run("should reject missing product", func(t *testing.T) {
		_, err := inventory.NewStock(kernel.UUID{}, 1)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		require.ErrorIs(t, (&inventory.Stock{}).Validate(), inventory.ErrStockIsNotConstructed)
	})
}

func TestStock_Deduct(t *testing.T) {
	t.Run("should deduct available amount", func(t *testing.T) {
		s, err := inventory.NewStock(kernel.NewUUID(), 10)
		require.NoError(t, err)

		require.NoError(t, s.Deduct(2))
		assert.Equal(t, 8, s.Quantity())
	})

	t.Run("should deduct down to zero", func(t *testing.T) {
		s, err := inventory.NewStock(kernel.NewUUID(), 1)
		require.NoError(t, err)

		require.NoError(t, s.Deduct(1))
		assert.Equal(t, 0, s.Quantity())
	})

	t.Run("should reject deduction that would go negative", func(t *testing.T) {
		productID := kernel.NewUUID()
		s, err := inventory.NewStock(productID, 3)
		require.NoError(t, err)

		err = s.Deduct(5)

		require.ErrorIs(t, err, inventory.ErrInsufficientStock)
		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		require.Len(t, stockErr.Shortfalls, 1)
		assert.Equal(t, inventory.Shortfall{ProductID: productID, Available: 3, Requested: 5}, stockErr.Shortfalls[0])
		assert.Equal(t, 3, s.Quantity())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		s, err := inventory.NewStock(kernel.NewUUID(), 3)
		require.NoError(t, err)

		require.ErrorIs(t, s.Deduct(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, s.Deduct(-2), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 3, s.Quantity())
	})
}

func TestInsufficientStockError_Error(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()
	err := inventory.NewInsufficientStockError([]inventory.Shortfall{
		{ProductID: a, Available: 3, Requested: 5},
		{ProductID: b, Available: 0, Requested: 1},
	})

	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Contains(t, err.Error(), "product "+a.String()+": requested 5, available 3")
	assert.Contains(t, err.Error(), "product "+b.String()+": requested 1, available 0")
}
