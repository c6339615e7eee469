package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUpdateTransportationCommandIsNotConstructed = errors.New(
	"UpdateTransportationCommand must be created via NewUpdateTransportationCommand constructor",
)

// UpdateTransportationCommand represents a request to change the name and
// pickup window of an existing transportation.
type UpdateTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID
	clientID         kernel.UUID
	name             string
	pickup           kernel.DateTimeInterval

	guard guard.ConstructorGuard
}

// NewUpdateTransportationCommand creates a command to update a transportation.
func NewUpdateTransportationCommand(
	transportationID kernel.UUID,
	clientID kernel.UUID,
	name string,
	pickup kernel.DateTimeInterval,
) (UpdateTransportationCommand, error) {
	cmd := UpdateTransportationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransportationID(transportationID),
		cmd.setClientID(clientID),
		cmd.setName(name),
		cmd.setPickup(pickup),
	); err != nil {
		return UpdateTransportationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTransportationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTransportationCommandIsNotConstructed)
}

// TransportationID returns the identifier of the request to update.
func (c UpdateTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}

// ClientID returns the authenticated actor's identifier.
func (c UpdateTransportationCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the new request name.
func (c UpdateTransportationCommand) Name() string {
	return c.name
}

// Pickup returns the new pickup window.
func (c UpdateTransportationCommand) Pickup() kernel.DateTimeInterval {
	return c.pickup
}

func (c *UpdateTransportationCommand) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}

	c.transportationID = transportationID
	return nil
}

func (c *UpdateTransportationCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *UpdateTransportationCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateTransportationCommand) setPickup(pickup kernel.DateTimeInterval) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}
