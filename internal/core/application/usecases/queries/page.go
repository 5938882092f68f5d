package queries

import "sales/internal/pkg/errs"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// page holds a validated limit and offset. A zero limit selects DefaultListLimit.
type page struct {
	limit  int
	offset int
}

func newPage(limit, offset int) (page, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if offset < 0 {
		return page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return page{limit: limit, offset: offset}, nil
}
