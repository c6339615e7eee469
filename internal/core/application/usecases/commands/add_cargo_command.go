package commands

import (
	"errors"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrAddCargoCommandIsNotConstructed = errors.New(
	"AddCargoCommand must be created via NewAddCargoCommand constructor",
)

// AddCargoCommand represents a request to add a cargo item to a
// transportation. The physical description is validated at construction;
// the currency code stays a raw string until the handler checks it against
// the reference currency set.
//
// Example:
//
//	characteristics, err := cargo.NewCharacteristics("Box", 10, 10, 10, 5)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewAddCargoCommand(kernel.NewUUID(), trID, actor.ID(), characteristics, 100, "RUB")
type AddCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID          kernel.UUID
	transportationID kernel.UUID
	clientID         kernel.UUID
	characteristics  cargo.Characteristics
	priceAmount      int64
	currencyCode     string

	guard guard.ConstructorGuard
}

// NewAddCargoCommand creates a command to add cargo to a request.
// An empty currency code means the default currency applies.
func NewAddCargoCommand(
	cargoID kernel.UUID,
	transportationID kernel.UUID,
	clientID kernel.UUID,
	characteristics cargo.Characteristics,
	priceAmount int64,
	currencyCode string,
) (AddCargoCommand, error) {
	cmd := AddCargoCommand{
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
		return AddCargoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCargoCommand) Validate() error {
	return c.guard.Validate(ErrAddCargoCommandIsNotConstructed)
}

// CargoID returns the identifier assigned to the new cargo.
func (c AddCargoCommand) CargoID() kernel.UUID { return c.cargoID }

// TransportationID returns the parent request's identifier.
func (c AddCargoCommand) TransportationID() kernel.UUID { return c.transportationID }

// ClientID returns the authenticated actor's identifier.
func (c AddCargoCommand) ClientID() kernel.UUID { return c.clientID }

// Characteristics returns the physical description.
func (c AddCargoCommand) Characteristics() cargo.Characteristics { return c.characteristics }

// PriceAmount returns the declared price in minor units.
func (c AddCargoCommand) PriceAmount() int64 { return c.priceAmount }

// CurrencyCode returns the submitted ISO currency code, empty for default.
func (c AddCargoCommand) CurrencyCode() string { return c.currencyCode }

func (c *AddCargoCommand) setCargoID(cargoID kernel.UUID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	c.cargoID = cargoID
	return nil
}

func (c *AddCargoCommand) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}

	c.transportationID = transportationID
	return nil
}

func (c *AddCargoCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *AddCargoCommand) setCharacteristics(characteristics cargo.Characteristics) error {
	if err := characteristics.Validate(); err != nil {
		return err
	}

	c.characteristics = characteristics
	return nil
}
