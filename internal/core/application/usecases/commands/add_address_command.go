package commands

import (
	"errors"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrAddAddressCommandIsNotConstructed = errors.New(
		"AddAddressCommand must be created via NewAddAddressCommand constructor",
	)
	ErrAliasIsRequired       = errors.New("alias is required")
	ErrContactIsRequired     = errors.New("contact is required")
	ErrCityIsRequired        = errors.New("city is required")
	ErrCountryIsRequired     = errors.New("country is required")
	ErrAddressLineIsRequired = errors.New("addressLine1 is required")
)

// AddAddressCommand represents a request to attach a pickup or delivery
// address to a transportation. City and country are carried as the names
// the user typed; the handler resolves them against reference data and
// geocodes the address line before anything is persisted.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
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

// NewAddAddressCommand creates a command to attach an address to a request.
func NewAddAddressCommand(
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
) (AddAddressCommand, error) {
	cmd := AddAddressCommand{
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
		return AddAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

// AddressID returns the identifier assigned to the new address.
func (c AddAddressCommand) AddressID() kernel.UUID { return c.addressID }

// TransportationID returns the parent request's identifier.
func (c AddAddressCommand) TransportationID() kernel.UUID { return c.transportationID }

// ClientID returns the authenticated actor's identifier.
func (c AddAddressCommand) ClientID() kernel.UUID { return c.clientID }

// Type returns the address role (pickup or delivery).
func (c AddAddressCommand) Type() address.Type { return c.addressType }

// Alias returns the user-facing label.
func (c AddAddressCommand) Alias() string { return c.alias }

// Contact returns the contact person's name.
func (c AddAddressCommand) Contact() string { return c.contact }

// Phone returns the contact phone number.
func (c AddAddressCommand) Phone() kernel.PhoneNumber { return c.phone }

// CityName returns the city name as entered by the user.
func (c AddAddressCommand) CityName() string { return c.cityName }

// CountryName returns the country name as entered by the user.
func (c AddAddressCommand) CountryName() string { return c.countryName }

// AddressLine1 returns the street address.
func (c AddAddressCommand) AddressLine1() string { return c.addressLine1 }

// AddressLine2 returns the optional second address line.
func (c AddAddressCommand) AddressLine2() string { return c.addressLine2 }

// AddressLine3 returns the optional third address line.
func (c AddAddressCommand) AddressLine3() string { return c.addressLine3 }

// Comment returns the optional note for the driver.
func (c AddAddressCommand) Comment() string { return c.comment }

func (c *AddAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *AddAddressCommand) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}

	c.transportationID = transportationID
	return nil
}

func (c *AddAddressCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *AddAddressCommand) setType(addressType address.Type) error {
	if err := addressType.Validate(); err != nil {
		return err
	}

	c.addressType = addressType
	return nil
}

func (c *AddAddressCommand) setAlias(alias string) error {
	if alias == "" {
		return ErrAliasIsRequired
	}

	c.alias = alias
	return nil
}

func (c *AddAddressCommand) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}

	c.contact = contact
	return nil
}

func (c *AddAddressCommand) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *AddAddressCommand) setCityName(cityName string) error {
	if cityName == "" {
		return ErrCityIsRequired
	}

	c.cityName = cityName
	return nil
}

func (c *AddAddressCommand) setCountryName(countryName string) error {
	if countryName == "" {
		return ErrCountryIsRequired
	}

	c.countryName = countryName
	return nil
}

func (c *AddAddressCommand) setAddressLine1(addressLine1 string) error {
	if addressLine1 == "" {
		return ErrAddressLineIsRequired
	}

	c.addressLine1 = addressLine1
	return nil
}
