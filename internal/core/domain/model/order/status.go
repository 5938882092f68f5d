package order

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown is the zero value and never a valid persisted status.
	Unknown Status = iota

	// Draft orders accept item mutations.
	Draft

	// Confirmed orders have had their stock deducted and are frozen.
	Confirmed

	// Delivered is terminal.
	Delivered
)

var statusNames = map[Status]string{
	Unknown:   "unknown",
	Draft:     "draft",
	Confirmed: "confirmed",
	Delivered: "delivered",
}

// StatusFromString parses the lower-case name used by storage and the API.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Draft || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsMutable reports whether items may still change.
func (s Status) IsMutable() bool {
	return s == Draft
}

// ValidateMutation is the single mutability check shared by every item operation.
func (s Status) ValidateMutation(operation string) error {
	if !s.IsMutable() {
		return newInvalidStateError(operation, s)
	}
	return nil
}

// Confirm returns the status after confirmation. Only drafts can be confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return Unknown, newInvalidStateError("confirm order", s)
	}
	return Confirmed, nil
}

// Deliver returns the status after delivery. Only confirmed orders can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != Confirmed {
		return Unknown, newInvalidStateError("deliver order", s)
	}
	return Delivered, nil
}
