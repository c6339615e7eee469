package cargo

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrCargoIsNotConstructed is returned when a Cargo instance was not
	// created through NewCargo or RestoreCargo.
	ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo or RestoreCargo constructors")

	// ErrCargoOwnedByOtherClient is raised when a client tries to delete
	// cargo registered by somebody else.
	ErrCargoOwnedByOtherClient = errs.NewBusinessError("Could't delete other user cargo")

	// ErrCargoBelongsToOtherTransportation is raised when the cargo's parent
	// does not match the transportation named in the request.
	ErrCargoBelongsToOtherTransportation = errs.NewBusinessError("Could't delete cargo from different Transportation")
)

// Cargo is a physical item attached to a transportation request. It belongs
// to both a Transportation and the client who registered it, and carries a
// physical description and a price.
type Cargo struct {
	id               kernel.UUID
	transportationID kernel.UUID
	clientID         kernel.UUID
	characteristics  Characteristics
	price            kernel.Money

	deletedAt *time.Time

	isConstructed bool
}

// NewCargo creates a new cargo item attached to a transportation request.
//
// Parameters:
//   - id: unique identifier for the cargo
//   - transportationID: the parent request's identifier
//   - clientID: the registering client's identifier
//   - characteristics: validated physical description
//   - price: validated price with currency
//
// Returns:
//   - *Cargo: the created cargo if all validations pass
//   - error: validation error if any parameter is invalid
func NewCargo(
	id kernel.UUID,
	transportationID kernel.UUID,
	clientID kernel.UUID,
	characteristics Characteristics,
	price kernel.Money,
) (*Cargo, error) {
	c := &Cargo{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setTransportationID(transportationID),
		c.setClientID(clientID),
		c.setCharacteristics(characteristics),
		c.setPrice(price),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCargo reconstructs a cargo item from persistence, including the
// soft-delete marker. Used by the repository layer.
func RestoreCargo(
	id kernel.UUID,
	transportationID kernel.UUID,
	clientID kernel.UUID,
	characteristics Characteristics,
	price kernel.Money,
	deletedAt *time.Time,
) (*Cargo, error) {
	c, err := NewCargo(id, transportationID, clientID, characteristics, price)
	if err != nil {
		return nil, err
	}

	c.deletedAt = deletedAt
	return c, nil
}

// Validate ensures the instance was created through a constructor.
func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}
	return nil
}

// IsEqual compares two cargo items by their unique identifiers.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cargo's unique identifier.
func (c *Cargo) ID() kernel.UUID {
	return c.id
}

// TransportationID returns the parent request's identifier.
func (c *Cargo) TransportationID() kernel.UUID {
	return c.transportationID
}

// ClientID returns the registering client's identifier.
func (c *Cargo) ClientID() kernel.UUID {
	return c.clientID
}

// Characteristics returns the physical description.
func (c *Cargo) Characteristics() Characteristics {
	return c.characteristics
}

// Price returns the declared price.
func (c *Cargo) Price() kernel.Money {
	return c.price
}

// DeletedAt returns the soft-delete marker, nil while the cargo is live.
func (c *Cargo) DeletedAt() *time.Time {
	return c.deletedAt
}

// Update replaces the physical description and price.
func (c *Cargo) Update(characteristics Characteristics, price kernel.Money) error {
	return errors.Join(
		c.setCharacteristics(characteristics),
		c.setPrice(price),
	)
}

// EnsureDeletableBy checks the business preconditions for removing this
// cargo: the acting client must own it and the parent request named in the
// route must match.
//
// Returns:
//   - nil when deletion is allowed
//   - ErrCargoOwnedByOtherClient when the cargo belongs to another client
//   - ErrCargoBelongsToOtherTransportation when the parent mismatches
func (c *Cargo) EnsureDeletableBy(clientID, transportationID kernel.UUID) error {
	if !c.clientID.IsEqual(clientID) {
		return ErrCargoOwnedByOtherClient
	}
	if !c.transportationID.IsEqual(transportationID) {
		return ErrCargoBelongsToOtherTransportation
	}
	return nil
}

// MarkDeleted stamps the soft-delete marker.
func (c *Cargo) MarkDeleted(at time.Time) {
	c.deletedAt = &at
}

func (c *Cargo) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cargo) setTransportationID(transportationID kernel.UUID) error {
	if err := transportationID.Validate(); err != nil {
		return err
	}
	c.transportationID = transportationID
	return nil
}

func (c *Cargo) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *Cargo) setCharacteristics(characteristics Characteristics) error {
	if err := characteristics.Validate(); err != nil {
		return err
	}
	c.characteristics = characteristics
	return nil
}

func (c *Cargo) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
