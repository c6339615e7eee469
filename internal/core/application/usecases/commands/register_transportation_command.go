package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrRegisterTransportationCommandIsNotConstructed = errors.New(
		"RegisterTransportationCommand must be created via NewRegisterTransportationCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// RegisterTransportationCommand represents a request to register a new
// transportation. Registration requires an authenticated actor; the client
// ID always comes from the bearer token, never from the request body.
//
// Example:
//
//	cmd, err := NewRegisterTransportationCommand(kernel.NewUUID(), actor.ID(), "Office move", pickup)
//	if err != nil {
//	    return fmt.Errorf("invalid transportation data: %w", err)
//	}
//
//	handler := NewRegisterTransportationCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type RegisterTransportationCommand struct { //nolint:recvcheck //using for validation
	transportationID kernel.UUID
	clientID         kernel.UUID
	name             string
	pickup           kernel.DateTimeInterval

	guard guard.ConstructorGuard
}

// NewRegisterTransportationCommand creates a command to register a new
// transportation. Validates identifiers, name presence and the pickup window.
func NewRegisterTransportationCommand(
	transportationID kernel.UUID,
	clientID kernel.UUID,
	name string,
	pickup kernel.DateTimeInterval,
) (RegisterTransportationCommand, error) {
	cmd := RegisterTransportationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransportationID(transportationID),
		cmd.setClientID(clientID),
		cmd.setName(name),
		cmd.setPickup(pickup),
	); err != nil {
		return RegisterTransportationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTransportationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTransportationCommandIsNotConstructed)
}

// TransportationID returns the identifier assigned to the new request.
func (c RegisterTransportationCommand) TransportationID() kernel.UUID {
	return c.transportationID
}

// ClientID returns the authenticated actor's identifier.
func (c RegisterTransportationCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the request name.
func (c RegisterTransportationCommand) Name() string {
	return c.name
}

// Pickup returns the pickup window.
func (c RegisterTransportationCommand) Pickup() kernel.DateTimeInterval {
	return c.pickup
}

func (c *RegisterTransportationCommand) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}

	c.transportationID = transportationID
	return nil
}

func (c *RegisterTransportationCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *RegisterTransportationCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterTransportationCommand) setPickup(pickup kernel.DateTimeInterval) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}
