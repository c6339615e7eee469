package transportation

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a transportation request.
//
// State transitions:
//
//	New ──> Processing ──┬──> Completed
//	                     ├──> Cancelled ──> Refunded
//	                     └──> Refunded
//
// Completed and Refunded are final states. Cancelled requests may still
// be refunded. Status is persisted and exposed on the wire by its
// lowercase name and carries a human-readable label for listings.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// New is the initial status assigned at registration, before an
	// operator has picked the request up.
	New

	// Processing indicates the request has been confirmed and is being
	// handled.
	Processing

	// Completed indicates the transportation was fulfilled.
	Completed

	// Cancelled indicates the request was cancelled before fulfilment.
	Cancelled

	// Refunded indicates money was returned after a cancellation.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		New:        "new",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Refunded:   "refunded",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no user-facing label
	return map[Status]string{
		New:        "Waiting for confirmation",
		Processing: "In progress",
		Completed:  "Fulfilled",
		Cancelled:  "Order cancelled",
		Refunded:   "Payment refunded",
	}
}

// StatusFromString maps a persisted or wire status name back to a Status.
//
// Returns:
//   - the matching Status for a known name
//   - error if the name is not a valid status
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("new", "processing", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the human-readable status label shown in listings.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "unknown"
}

// IsFinalized reports whether the request reached a terminal state in
// which it can no longer be edited.
func (s Status) IsFinalized() bool {
	return s == Completed || s == Cancelled || s == Refunded
}
