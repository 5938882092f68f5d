package errs

import (
	"errors"
	"fmt"
)

// ErrObjectIsReferenced is returned when removing an object that other records still point at.
var ErrObjectIsReferenced = errors.New("object is referenced")

// ObjectIsReferencedError identifies the protected object.
type ObjectIsReferencedError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectIsReferencedError creates an ObjectIsReferencedError.
func NewObjectIsReferencedError(paramName string, id any) *ObjectIsReferencedError {
	return &ObjectIsReferencedError{ParamName: paramName, ID: id}
}

// NewObjectIsReferencedErrorWithCause creates an ObjectIsReferencedError with the storage cause.
func NewObjectIsReferencedErrorWithCause(paramName string, id any, cause error) *ObjectIsReferencedError {
	return &ObjectIsReferencedError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectIsReferencedError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectIsReferenced, e.ParamName, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *ObjectIsReferencedError) Unwrap() error {
	return ErrObjectIsReferenced
}
