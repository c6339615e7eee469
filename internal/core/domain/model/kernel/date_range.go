package kernel

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
)

// ErrDateRangeInverted is returned when a range ends before it starts.
var ErrDateRangeInverted = errors.New("Date from cannot be greater than date to")

const dateLayout = "2006-01-02"

// DateRange is an optional calendar-day filter for listings. Either bound
// may be absent; when both are present, from <= to.
type DateRange struct {
	from *time.Time
	to   *time.Time
}

// ParseDateRange builds a range from optional Y-m-d strings. Empty strings
// leave the corresponding bound open.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange

	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return DateRange{}, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
		r.from = &t
	}

	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return DateRange{}, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
		r.to = &t
	}

	if r.from != nil && r.to != nil && r.from.After(*r.to) {
		return DateRange{}, ErrDateRangeInverted
	}

	return r, nil
}

// From returns the lower bound, or nil when open.
func (r DateRange) From() *time.Time {
	return r.from
}

// To returns the upper bound, or nil when open.
func (r DateRange) To() *time.Time {
	return r.to
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.from == nil && r.to == nil
}
