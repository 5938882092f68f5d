package order

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"sales/internal/pkg/errs"
)

const (
	numberPrefix     = "ORD"
	numberDateLayout = "20060102"
)

var numberPattern = regexp.MustCompile(`^ORD-(\d{8})-(\d{4,})$`)

// Number is the human readable order identifier, unique across all orders.
// It combines the creation day with that day's sequence: ORD-20260105-0042.
type Number struct {
	day      time.Time
	sequence int
}

// NewNumber builds a number for the given day (its UTC date is used) and per-day sequence.
func NewNumber(day time.Time, sequence int) (Number, error) {
	if sequence < 1 {
		return Number{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, "unbounded")
	}
	y, m, d := day.UTC().Date()
	return Number{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), sequence: sequence}, nil
}

// ParseNumber reads a number previously produced by String.
func ParseNumber(s string) (Number, error) {
	match := numberPattern.FindStringSubmatch(s)
	if match == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q has unexpected format", s))
	}
	day, err := time.Parse(numberDateLayout, match[1])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	seq, err := strconv.Atoi(match[2])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return NewNumber(day, seq)
}

// Day is the UTC date the number was issued for.
func (n Number) Day() time.Time {
	return n.day
}

// Sequence is the position of the order within its day, starting at 1.
func (n Number) Sequence() int {
	return n.sequence
}

// Validate fails for the zero value.
func (n Number) Validate() error {
	if n.sequence < 1 {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}

func (n Number) String() string {
	return fmt.Sprintf("%s-%s-%04d", numberPrefix, n.day.Format(numberDateLayout), n.sequence)
}
