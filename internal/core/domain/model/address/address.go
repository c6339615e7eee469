package address

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

const maxAliasLength = 255

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New(
	"Address must be created via NewAddress or RestoreAddress constructors")

// Address is a pickup or delivery location owned by a client and linked to
// a transportation request. City and country are stored as resolved
// reference identifiers and coordinates come from geocoding; an address
// without coordinates cannot be constructed.
type Address struct {
	id               kernel.UUID
	clientID         kernel.UUID
	transportationID kernel.UUID
	addressType      Type

	alias        string
	contact      string
	phone        kernel.PhoneNumber
	cityID       int
	countryID    int
	addressLine1 string
	addressLine2 string
	addressLine3 string
	comment      string
	coordinates  kernel.Coordinates

	deletedAt *time.Time

	isConstructed bool
}

// NewAddress creates a validated address record.
//
// Parameters:
//   - id: unique identifier for the address
//   - clientID: the owning client's identifier
//   - transportationID: the request the address is attached to
//   - addressType: Pickup or Delivery
//   - alias: short user-facing label (required, at most 255 characters)
//   - contact: name of the person at the location (required)
//   - phone: validated contact phone
//   - cityID, countryID: resolved reference identifiers (must be positive)
//   - addressLine1: street address (required); lines 2 and 3 are optional
//   - comment: optional free-form note for the driver
//   - coordinates: geocoded point (required)
//
// Returns:
//   - *Address: the created address if all validations pass
//   - error: validation error if any parameter is invalid
func NewAddress(
	id kernel.UUID,
	clientID kernel.UUID,
	transportationID kernel.UUID,
	addressType Type,
	alias string,
	contact string,
	phone kernel.PhoneNumber,
	cityID int,
	countryID int,
	addressLine1 string,
	addressLine2 string,
	addressLine3 string,
	comment string,
	coordinates kernel.Coordinates,
) (*Address, error) {
	a := &Address{
		addressLine2:  addressLine2,
		addressLine3:  addressLine3,
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setClientID(clientID),
		a.setTransportationID(transportationID),
		a.setType(addressType),
		a.setAlias(alias),
		a.setContact(contact),
		a.setPhone(phone),
		a.setCity(cityID),
		a.setCountry(countryID),
		a.setAddressLine1(addressLine1),
		a.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an address from persistence, including the
// soft-delete marker. Used by the repository layer.
func RestoreAddress(
	id kernel.UUID,
	clientID kernel.UUID,
	transportationID kernel.UUID,
	addressType Type,
	alias string,
	contact string,
	phone kernel.PhoneNumber,
	cityID int,
	countryID int,
	addressLine1 string,
	addressLine2 string,
	addressLine3 string,
	comment string,
	coordinates kernel.Coordinates,
	deletedAt *time.Time,
) (*Address, error) {
	a, err := NewAddress(
		id, clientID, transportationID, addressType,
		alias, contact, phone, cityID, countryID,
		addressLine1, addressLine2, addressLine3, comment, coordinates,
	)
	if err != nil {
		return nil, err
	}

	a.deletedAt = deletedAt
	return a, nil
}

// Validate ensures the instance was created through a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// IsEqual compares two addresses by their unique identifiers.
func (a *Address) IsEqual(other *Address) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// ClientID returns the owning client's identifier.
func (a *Address) ClientID() kernel.UUID {
	return a.clientID
}

// TransportationID returns the request the address belongs to.
func (a *Address) TransportationID() kernel.UUID {
	return a.transportationID
}

// Type returns the address role (pickup or delivery).
func (a *Address) Type() Type {
	return a.addressType
}

// Alias returns the user-facing label.
func (a *Address) Alias() string {
	return a.alias
}

// Contact returns the name of the person at the location.
func (a *Address) Contact() string {
	return a.contact
}

// Phone returns the contact phone number.
func (a *Address) Phone() kernel.PhoneNumber {
	return a.phone
}

// CityID returns the resolved city reference identifier.
func (a *Address) CityID() int {
	return a.cityID
}

// CountryID returns the resolved country reference identifier.
func (a *Address) CountryID() int {
	return a.countryID
}

// AddressLine1 returns the street address.
func (a *Address) AddressLine1() string {
	return a.addressLine1
}

// AddressLine2 returns the optional second address line.
func (a *Address) AddressLine2() string {
	return a.addressLine2
}

// AddressLine3 returns the optional third address line.
func (a *Address) AddressLine3() string {
	return a.addressLine3
}

// Comment returns the optional note for the driver.
func (a *Address) Comment() string {
	return a.comment
}

// Coordinates returns the geocoded point.
func (a *Address) Coordinates() kernel.Coordinates {
	return a.coordinates
}

// DeletedAt returns the soft-delete marker, nil while the address is live.
func (a *Address) DeletedAt() *time.Time {
	return a.deletedAt
}

// Update replaces the editable attributes of the address. Identity, owner
// and parent request never change.
func (a *Address) Update(
	addressType Type,
	alias string,
	contact string,
	phone kernel.PhoneNumber,
	cityID int,
	countryID int,
	addressLine1 string,
	addressLine2 string,
	addressLine3 string,
	comment string,
	coordinates kernel.Coordinates,
) error {
	if err := errors.Join(
		a.setType(addressType),
		a.setAlias(alias),
		a.setContact(contact),
		a.setPhone(phone),
		a.setCity(cityID),
		a.setCountry(countryID),
		a.setAddressLine1(addressLine1),
		a.setCoordinates(coordinates),
	); err != nil {
		return err
	}

	a.addressLine2 = addressLine2
	a.addressLine3 = addressLine3
	a.comment = comment
	return nil
}

// MarkDeleted stamps the soft-delete marker.
func (a *Address) MarkDeleted(at time.Time) {
	a.deletedAt = &at
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	a.clientID = clientID
	return nil
}

func (a *Address) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}
	a.transportationID = transportationID
	return nil
}

func (a *Address) setType(addressType Type) error {
	if err := addressType.Validate(); err != nil {
		return err
	}
	a.addressType = addressType
	return nil
}

func (a *Address) setAlias(alias string) error {
	if alias == "" {
		return errs.NewValueIsRequiredError("alias")
	}
	if len(alias) > maxAliasLength {
		return errs.NewValueIsInvalidErrorWithCause("alias is invalid",
			fmt.Errorf("alias length %d exceeds %d characters", len(alias), maxAliasLength))
	}
	a.alias = alias
	return nil
}

func (a *Address) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	a.contact = contact
	return nil
}

func (a *Address) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	a.phone = phone
	return nil
}

func (a *Address) setCity(cityID int) error {
	if cityID < 1 {
		return errs.NewValueIsRequiredError("city")
	}
	a.cityID = cityID
	return nil
}

func (a *Address) setCountry(countryID int) error {
	if countryID < 1 {
		return errs.NewValueIsRequiredError("country")
	}
	a.countryID = countryID
	return nil
}

func (a *Address) setAddressLine1(addressLine1 string) error {
	if addressLine1 == "" {
		return errs.NewValueIsRequiredError("addressLine1")
	}
	a.addressLine1 = addressLine1
	return nil
}

func (a *Address) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	a.coordinates = coordinates
	return nil
}
