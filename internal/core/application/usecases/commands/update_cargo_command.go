package commands

import (
	"errors"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUpdateCargoCommandIsNotConstructed = errors.New(
	"UpdateCargoCommand must be created via NewUpdateCargoCommand constructor",
)

// UpdateCargoCommand represents a request to change an existing cargo item.
type UpdateCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID          kernel.UUID
	transportationID kernel.UUID
	clientID         kernel.UUID
	characteristics  cargo.Characteristics
	priceAmount      int64
	currencyCode     string

	guard guard.ConstructorGuard
}

// NewUpdateCargoCommand creates a command to update a cargo item.
// An empty currency code means the default currency applies.
func NewUpdateCargoCommand(
	cargoID kernel.UUID,
	transportationID kernel.UUID,
	clientID kernel.UUID,
	characteristics cargo.Characteristics,
	priceAmount int64,
	currencyCode string,
) (UpdateCargoCommand, error) {
	cmd := UpdateCargoCommand{
		priceAmount:  priceAmount,
		currencyCode: currencyCode,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCargoID(cargoID),
		cmd.setTransportationID(transportationID),
		cmd.setClientID(clientID),
		cmd.setCharacteristics(characteristics),
	); err != nil {
		return UpdateCargoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCargoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCargoCommandIsNotConstructed)
}

// CargoID returns the identifier of the cargo to update.
func (c UpdateCargoCommand) CargoID() kernel.UUID { return c.cargoID }

// TransportationID returns the parent request's identifier.
func (c UpdateCargoCommand) TransportationID() kernel.UUID { return c.transportationID }

// ClientID returns the authenticated actor's identifier.
func (c UpdateCargoCommand) ClientID() kernel.UUID { return c.clientID }

// Characteristics returns the new physical description.
func (c UpdateCargoCommand) Characteristics() cargo.Characteristics { return c.characteristics }

// PriceAmount returns the new price in minor units.
func (c UpdateCargoCommand) PriceAmount() int64 { return c.priceAmount }

// CurrencyCode returns the submitted ISO currency code, empty for default.
func (c UpdateCargoCommand) CurrencyCode() string { return c.currencyCode }

func (c *UpdateCargoCommand) setCargoID(cargoID kernel.UUID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	c.cargoID = cargoID
	return nil
}

func (c *UpdateCargoCommand) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}

	c.transportationID = transportationID
	return nil
}

func (c *UpdateCargoCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *UpdateCargoCommand) setCharacteristics(characteristics cargo.Characteristics) error {
	if err := characteristics.Validate(); err != nil {
		return err
	}

	c.characteristics = characteristics
	return nil
}
