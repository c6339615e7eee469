package address

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Type marks the role an address plays on a transportation request.
type Type int

const (
	// UnknownType represents an invalid or undefined address role.
	UnknownType Type = iota

	// Pickup marks the address cargo is collected from.
	Pickup

	// Delivery marks the address cargo is brought to.
	Delivery
)

func getTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType has no wire name
	return map[Type]string{
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

// TypeFromString maps a wire value ("pickup" or "delivery") to a Type.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid",
		fmt.Errorf("%q is not a valid address type", s))
}

// Validate checks if the Type value is defined.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid",
			fmt.Errorf("%d is not a valid address type", t))
	}
	return nil
}

// String returns the wire name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// IsDelivery reports whether the address is a delivery destination.
func (t Type) IsDelivery() bool {
	return t == Delivery
}
