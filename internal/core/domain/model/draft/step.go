package draft

import (
	"shipping/internal/pkg/errs"
)

// ErrUnknownStep is raised when a draft save names a wizard step that does
// not exist. It fires before any cache mutation.
var ErrUnknownStep = errs.NewBusinessError("Unknown transportation step")

// Step is one named stage of the booking wizard. The wire names are fixed
// by the front-end step schema.
type Step string

const (
	// TransportationStep collects the request name and pickup window.
	TransportationStep Step = "transportationStep"

	// PickupAddressStep collects the pickup address.
	PickupAddressStep Step = "pickupAddressStep"

	// DeliveryAddressStep collects the delivery address.
	DeliveryAddressStep Step = "deliveryAddressStep"

	// CargoStep collects cargo items.
	CargoStep Step = "cargoStep"

	// ConfirmationStep is the final review stage. It carries no data of its
	// own and is never saved as a draft.
	ConfirmationStep Step = "confirmationStep"
)

// ParseStep maps a wire value to a savable wizard step. ConfirmationStep is
// not savable and is rejected like any unknown value.
func ParseStep(s string) (Step, error) {
	switch Step(s) {
	case TransportationStep, PickupAddressStep, DeliveryAddressStep, CargoStep:
		return Step(s), nil
	default:
		return "", ErrUnknownStep
	}
}

// String returns the wire name of the step.
func (s Step) String() string {
	return string(s)
}

// IsAddress reports whether the step collects an address.
func (s Step) IsAddress() bool {
	return s == PickupAddressStep || s == DeliveryAddressStep
}
