package dealer_test

import (
	"testing"

	"sales/internal/core/domain/model/dealer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDealer(t *testing.T) {
	t.Run("should create dealer with normalised email", func(t *testing.T) {
		id := kernel.NewUUID()
		d, err := dealer.NewDealer(id, " Acme Motors ", "Sales@Acme.Example", "+1 555 0100", "1 Main St")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Acme Motors", d.Name())
		assert.Equal(t, "sales@acme.example", d.Email())
		assert.Equal(t, "+1 555 0100", d.Phone())
		assert.Equal(t, "1 Main St", d.Address())
	})

	t.Run("should require name and email", func(t *testing.T) {
		d, err := dealer.NewDealer(kernel.NewUUID(), "", " ", "", "")

		assert.Nil(t, d)
		require.ErrorIs(t, err, dealer.ErrNameIsRequired)
		require.ErrorIs(t, err, dealer.ErrEmailIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		for _, email := range []string{"not-an-email", "Bob <bob@example.com>", "a@"} {
			_, err := dealer.NewDealer(kernel.NewUUID(), "Bob", email, "", "")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, email)
		}
	})
}

func TestDealer_ChangeContact(t *testing.T) {
	newDealer := func(t *testing.T) *dealer.Dealer {
		d, err := dealer.NewDealer(kernel.NewUUID(), "Acme", "sales@acme.example", "+1 555 0100", "1 Main St")
		require.NoError(t, err)
		return d
	}

	t.Run("should replace every contact field", func(t *testing.T) {
		d := newDealer(t)

		require.NoError(t, d.ChangeContact(" Acme North ", "North@Acme.Example", "", " 2 High St "))

		assert.Equal(t, "Acme North", d.Name())
		assert.Equal(t, "north@acme.example", d.Email())
		assert.Empty(t, d.Phone())
		assert.Equal(t, "2 High St", d.Address())
	})

	t.Run("should leave dealer unchanged on invalid input", func(t *testing.T) {
		d := newDealer(t)

		err := d.ChangeContact("", "broken", "0", "elsewhere")

		require.ErrorIs(t, err, dealer.ErrNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Acme", d.Name())
		assert.Equal(t, "sales@acme.example", d.Email())
		assert.Equal(t, "+1 555 0100", d.Phone())
		assert.Equal(t, "1 Main St", d.Address())
	})
}
