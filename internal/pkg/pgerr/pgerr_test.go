package pgerr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"lock timeout", &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, errs.ErrConcurrencyConflict},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, errs.ErrConcurrencyConflict},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, errs.ErrConcurrencyConflict},
		{"statement timeout", &pgconn.PgError{Code: pgerrcode.QueryCanceled}, errs.ErrTimeout},
		{"context deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), errs.ErrTimeout},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "products_sku_key"}, errs.ErrValueIsInvalid},
		{"check", &pgconn.PgError{Code: pgerrcode.CheckViolation}, errs.ErrValueIsInvalid},
		{
			"referenced on delete",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, TableName: "dealers", Detail: `Key (id)=(x) is still referenced from table "orders".`},
			errs.ErrObjectIsReferenced,
		},
		{
			"missing on insert",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Detail: `Key (dealer_id)=(x) is not present in table "dealers".`},
			errs.ErrObjectNotFound,
		},
		{"other pg error", &pgconn.PgError{Code: pgerrcode.DiskFull}, errs.ErrStorage},
		{"non pg error", errors.New("connection reset"), errs.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pgerr.Translate("op", fmt.Errorf("wrapped: %w", tt.err))
			require.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, pgerr.Translate("op", nil))
	})
}
