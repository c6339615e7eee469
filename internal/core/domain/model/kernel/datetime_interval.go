package kernel

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	// ErrDateFromAfterDateTo is returned when an interval starts after it ends.
	ErrDateFromAfterDateTo = errors.New("Date from cannot be greater than date to")

	// ErrDateTimeIntervalIsNotConstructed is returned when a zero-value DateTimeInterval is used.
	ErrDateTimeIntervalIsNotConstructed = errors.New(
		"DateTimeInterval must be created via NewDateTimeInterval or ParseDateTimeInterval constructors")
)

// dateTimeLayouts are the wire formats accepted for interval boundaries.
// "2006-01-02 15:04:05" is what the booking wizard submits; RFC3339 covers
// API clients; a bare date is taken as midnight.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTimeInterval is a validated [from, to] time window, used for pickup
// scheduling. The invariant from <= to is enforced at construction.
type DateTimeInterval struct { //nolint:recvcheck //using for validation
	from  time.Time
	to    time.Time
	guard guard.ConstructorGuard
}

// NewDateTimeInterval creates an interval from two instants.
func NewDateTimeInterval(from, to time.Time) (DateTimeInterval, error) {
	i := DateTimeInterval{
		guard: guard.NewConstructorGuard(),
	}

	if err := i.setBounds(from, to); err != nil {
		return DateTimeInterval{}, err
	}

	return i, nil
}

// ParseDateTimeInterval creates an interval from two date-time strings,
// accepting any of the supported wire formats.
func ParseDateTimeInterval(from, to string) (DateTimeInterval, error) {
	fromTime, err := parseDateTime(from)
	if err != nil {
		return DateTimeInterval{}, errs.NewValueIsInvalidErrorWithCause("from", err)
	}

	toTime, err := parseDateTime(to)
	if err != nil {
		return DateTimeInterval{}, errs.NewValueIsInvalidErrorWithCause("to", err)
	}

	return NewDateTimeInterval(fromTime, toTime)
}

// Validate ensures the interval was created through a constructor.
func (i DateTimeInterval) Validate() error {
	return i.guard.Validate(ErrDateTimeIntervalIsNotConstructed)
}

// From returns the interval start.
func (i DateTimeInterval) From() time.Time {
	return i.from
}

// To returns the interval end.
func (i DateTimeInterval) To() time.Time {
	return i.to
}

// IsEqual compares two intervals by their bounds.
func (i DateTimeInterval) IsEqual(other DateTimeInterval) bool {
	return i.from.Equal(other.from) && i.to.Equal(other.to)
}

func (i *DateTimeInterval) setBounds(from, to time.Time) error {
	if from.After(to) {
		return ErrDateFromAfterDateTo
	}

	i.from = from
	i.to = to
	return nil
}

func parseDateTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
