package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrDeleteCargoCommandIsNotConstructed = errors.New(
	"DeleteCargoCommand must be created via NewDeleteCargoCommand constructor",
)

// DeleteCargoCommand represents a request to remove a cargo item from a
// transportation. Deletion is a soft delete and is only allowed to the
// owning client through the cargo's own transportation.
type DeleteCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID          kernel.UUID
	transportationID kernel.UUID
	clientID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCargoCommand creates a command to delete a cargo item.
func NewDeleteCargoCommand(
	cargoID kernel.UUID,
	transportationID kernel.UUID,
	clientID kernel.UUID,
) (DeleteCargoCommand, error) {
	cmd := DeleteCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCargoID(cargoID),
		cmd.setTransportationID(transportationID),
		cmd.setClientID(clientID),
	); err != nil {
		return DeleteCargoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCargoCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCargoCommandIsNotConstructed)
}

// CargoID returns the identifier of the cargo to delete.
func (c DeleteCargoCommand) CargoID() kernel.UUID { return c.cargoID }

// TransportationID returns the transportation named in the route.
func (c DeleteCargoCommand) TransportationID() kernel.UUID { return c.transportationID }

// ClientID returns the authenticated actor's identifier.
func (c DeleteCargoCommand) ClientID() kernel.UUID { return c.clientID }

func (c *DeleteCargoCommand) setCargoID(cargoID kernel.UUID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}

	c.cargoID = cargoID
	return nil
}

func (c *DeleteCargoCommand) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}

	c.transportationID = transportationID
	return nil
}

func (c *DeleteCargoCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
