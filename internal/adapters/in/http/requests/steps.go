package requests

import (
	"fmt"

	"shipping/internal/core/domain/model/draft"
)

// ValidateTransportationStep checks the first wizard step, shared with the
// register-transportation endpoint.
func ValidateTransportationStep(data map[string]any) ValidationErrors {
	v := newValidator(data)

	v.requireString("name", 255)

	from, fromOK := v.requireDate("pickupFrom")
	to, toOK := v.requireDate("pickupTo")
	if fromOK && toOK && to.Before(from) {
		v.errors.add("pickupTo",
			"The pickup to field must be a date after or equal to pickup from.")
	}

	return v.errors
}

// ValidateAddressStep checks the pickup and delivery address steps, shared
// with the add-transportation-address endpoint.
func ValidateAddressStep(data map[string]any) ValidationErrors {
	v := newValidator(data)

	v.requireUUID("transportation_id")
	v.requireString("alias", 255)
	v.requireIn("type", "pickup", "delivery")
	v.requireString("contact", 0)
	v.requireString("city", 0)
	v.requireString("addressLine1", 0)
	v.requirePhone("phoneNumber")

	return v.errors
}

// ValidateCargoStep checks the cargo step, shared with the add-cargo endpoint.
func ValidateCargoStep(data map[string]any) ValidationErrors {
	v := newValidator(data)

	v.requireUUID("transportation_id")
	v.requireString("name", 255)
	v.requirePositiveInt("length")
	v.requirePositiveInt("width")
	v.requirePositiveInt("height")
	v.requirePositiveInt("weight")
	v.requirePositiveInt("price")
	v.optionalIn("currency", "EUR", "USD", "RUB")

	return v.errors
}

// ForStep dispatches a draft payload to the rule set of its wizard step.
func ForStep(step draft.Step, data map[string]any) (ValidationErrors, error) {
	if step.IsAddress() {
		return ValidateAddressStep(data), nil
	}

	switch step {
	case draft.TransportationStep:
		return ValidateTransportationStep(data), nil
	case draft.CargoStep:
		return ValidateCargoStep(data), nil
	default:
		return nil, fmt.Errorf("no rule set for step %q", step)
	}
}
