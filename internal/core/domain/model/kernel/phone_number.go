package kernel

import (
	"errors"

	"shipping/internal/pkg/guard"

	"github.com/nyaruka/phonenumbers"
)

var (
	// ErrPhoneNumberIsInvalid is returned when the input cannot be parsed as a valid phone number.
	ErrPhoneNumberIsInvalid = errors.New("Invalid phone number entered")

	// ErrPhoneNumberIsNotConstructed is returned when a zero-value PhoneNumber is used.
	ErrPhoneNumberIsNotConstructed = errors.New("PhoneNumber must be created via NewPhoneNumber constructor")
)

// defaultPhoneRegion is assumed for numbers entered without a country prefix.
const defaultPhoneRegion = "RU"

// PhoneNumber is a validated phone number normalized to international format,
// e.g. "+7 978 965-89-65". Parsing and validity checks are delegated to the
// phonenumbers library.
type PhoneNumber struct {
	number string
	guard  guard.ConstructorGuard
}

// NewPhoneNumber parses and validates the input, rejecting numbers that do
// not pass validity checks for their region.
func NewPhoneNumber(input string) (PhoneNumber, error) {
	parsed, err := phonenumbers.Parse(input, defaultPhoneRegion)
	if err != nil {
		return PhoneNumber{}, ErrPhoneNumberIsInvalid
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return PhoneNumber{}, ErrPhoneNumberIsInvalid
	}

	return PhoneNumber{
		number: phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PhoneNumber was created through the constructor.
func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}

// String returns the number in international format.
func (p PhoneNumber) String() string {
	return p.number
}
