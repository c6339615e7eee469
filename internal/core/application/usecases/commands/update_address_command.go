package commands

import (
	"errors"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a request to change an existing
// transportation address. City and country names are re-resolved and the
// address line re-geocoded on every update.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID        kernel.UUID
	transportationID kernel.UUID
	clientID         kernel.UUID
	addressType      address.Type
	alias            string
	contact          string
	phone            kernel.PhoneNumber
	cityName         string
	countryName      string
	addressLine1     string
	addressLine2     string
	addressLine3     string
	comment          string

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to update an address.
func NewUpdateAddressCommand(
	addressID kernel.UUID,
	transportationID kernel.UUID,
	clientID kernel.UUID,
	addressType address.Type,
	alias string,
	contact string,
	phone kernel.PhoneNumber,
	cityName string,
	countryName string,
	addressLine1 string,
	addressLine2 string,
	addressLine3 string,
	comment string,
) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		addressLine2: addressLine2,
		addressLine3: addressLine3,
		comment:      comment,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setTransportationID(transportationID),
		cmd.setClientID(clientID),
		cmd.setType(addressType),
		cmd.setAlias(alias),
		cmd.setContact(contact),
		cmd.setPhone(phone),
		cmd.setCityName(cityName),
		cmd.setCountryName(countryName),
		cmd.setAddressLine1(addressLine1),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// AddressID returns the identifier of the address to update.
func (c UpdateAddressCommand) AddressID() kernel.UUID { return c.addressID }

// TransportationID returns the parent request's identifier.
func (c UpdateAddressCommand) TransportationID() kernel.UUID { return c.transportationID }

// ClientID returns the authenticated actor's identifier.
func (c UpdateAddressCommand) ClientID() kernel.UUID { return c.clientID }

// Type returns the address role (pickup or delivery).
func (c UpdateAddressCommand) Type() address.Type { return c.addressType }

// Alias returns the user-facing label.
func (c UpdateAddressCommand) Alias() string { return c.alias }

// Contact returns the contact person's name.
func (c UpdateAddressCommand) Contact() string { return c.contact }

// Phone returns the contact phone number.
func (c UpdateAddressCommand) Phone() kernel.PhoneNumber { return c.phone }

// CityName returns the city name as entered by the user.
func (c UpdateAddressCommand) CityName() string { return c.cityName }

// CountryName returns the country name as entered by the user.
func (c UpdateAddressCommand) CountryName() string { return c.countryName }

// AddressLine1 returns the street address.
func (c UpdateAddressCommand) AddressLine1() string { return c.addressLine1 }

// AddressLine2 returns the optional second address line.
func (c UpdateAddressCommand) AddressLine2() string { return c.addressLine2 }

// AddressLine3 returns the optional third address line.
func (c UpdateAddressCommand) AddressLine3() string { return c.addressLine3 }

// Comment returns the optional note for the driver.
func (c UpdateAddressCommand) Comment() string { return c.comment }

func (c *UpdateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *UpdateAddressCommand) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}

	c.transportationID = transportationID
	return nil
}

func (c *UpdateAddressCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *UpdateAddressCommand) setType(addressType address.Type) error {
	if err := addressType.Validate(); err != nil {
		return err
	}

	c.addressType = addressType
	return nil
}

func (c *UpdateAddressCommand) setAlias(alias string) error {
	if alias == "" {
		return ErrAliasIsRequired
	}

	c.alias = alias
	return nil
}

func (c *UpdateAddressCommand) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}

	c.contact = contact
	return nil
}

func (c *UpdateAddressCommand) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *UpdateAddressCommand) setCityName(cityName string) error {
	if cityName == "" {
		return ErrCityIsRequired
	}

	c.cityName = cityName
	return nil
}

func (c *UpdateAddressCommand) setCountryName(countryName string) error {
	if countryName == "" {
		return ErrCountryIsRequired
	}

	c.countryName = countryName
	return nil
}

func (c *UpdateAddressCommand) setAddressLine1(addressLine1 string) error {
	if addressLine1 == "" {
		return ErrAddressLineIsRequired
	}

	c.addressLine1 = addressLine1
	return nil
}
