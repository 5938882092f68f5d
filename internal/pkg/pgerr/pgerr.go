// Package pgerr translates PostgreSQL driver errors into the error kinds of internal/pkg/errs.
package pgerr

import (
	"context"
	"errors"
	"strings"

	"sales/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Translate classifies err, which was returned while performing operation.
//
//   - lock_not_available, deadlock_detected and serialization_failure become ErrConcurrencyConflict
//   - query_canceled and context deadlines become ErrTimeout
//   - foreign_key_violation becomes ErrObjectIsReferenced on delete, ErrObjectNotFound on insert
//   - unique_violation and check_violation become ErrValueIsInvalid
//   - everything else becomes ErrStorage
//
// nil stays nil.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError(operation, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errs.NewStorageError(operation, err)
	}

	switch pgErr.Code {
	case pgerrcode.LockNotAvailable, pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure:
		return errs.NewConcurrencyConflictError(operation, err)
	case pgerrcode.QueryCanceled:
		return errs.NewTimeoutError(operation, err)
	case pgerrcode.ForeignKeyViolation:
		if strings.Contains(pgErr.Detail, "is still referenced") {
			return errs.NewObjectIsReferencedErrorWithCause(pgErr.TableName, pgErr.Detail, err)
		}
		return errs.NewObjectNotFoundErrorWithCause(pgErr.ConstraintName, pgErr.Detail, err)
	case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
		return errs.NewValueIsInvalidErrorWithCause(pgErr.ConstraintName, err)
	default:
		return errs.NewStorageError(operation, err)
	}
}
