package transportation

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

const maxNameLength = 255

var (
	// ErrTransportationIsNotConstructed is returned when a Transportation instance
	// was not created through NewTransportation or RestoreTransportation.
	ErrTransportationIsNotConstructed = errors.New(
		"Transportation must be created via NewTransportation or RestoreTransportation constructors")

	// ErrTransportationIsFinalized is returned on attempts to edit a request
	// that reached a terminal status.
	ErrTransportationIsFinalized = errs.NewBusinessError("Transportation is finalized and cannot be changed")

	// ErrAccessForbidden is raised when a client touches a request owned by
	// somebody else. Mapped to HTTP 403.
	ErrAccessForbidden = errs.NewBusinessErrorWithStatus("Access to this Transportation is forbidden", 403)
)

// Transportation is the shipment-request aggregate root. It links a client,
// a named request, a pickup time window, and optional pickup/delivery
// address references.
//
// Transportation follows these invariants:
//   - Must have a valid unique identifier and client identifier
//   - Name is required and at most 255 characters
//   - Pickup window is a valid interval (from <= to)
//   - Finalized requests (completed/cancelled/refunded) reject edits
//   - Can only be created through NewTransportation or RestoreTransportation
type Transportation struct {
	id       kernel.UUID
	clientID kernel.UUID
	name     string
	pickup   kernel.DateTimeInterval
	status   Status

	pickupAddressID   *kernel.UUID
	deliveryAddressID *kernel.UUID

	deletedAt *time.Time

	isConstructed bool
}

// NewTransportation creates a new request with status New and no linked
// addresses. This is the only way to register a fresh request, ensuring
// all business invariants are maintained.
//
// Parameters:
//   - id: unique identifier for the request
//   - clientID: the owning client's identifier
//   - name: user-supplied request name (required, at most 255 characters)
//   - pickup: the desired pickup time window
//
// Returns:
//   - *Transportation: the created request if all validations pass
//   - error: validation error if any parameter is invalid
func NewTransportation(
	id kernel.UUID,
	clientID kernel.UUID,
	name string,
	pickup kernel.DateTimeInterval,
) (*Transportation, error) {
	t := &Transportation{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setClientID(clientID),
		t.setName(name),
		t.setPickup(pickup),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransportation reconstructs a request from persistence, including
// its status, linked addresses and soft-delete marker. Used by the
// repository layer; applies the same field validation as NewTransportation.
func RestoreTransportation(
	id kernel.UUID,
	clientID kernel.UUID,
	name string,
	pickup kernel.DateTimeInterval,
	status Status,
	pickupAddressID *kernel.UUID,
	deliveryAddressID *kernel.UUID,
	deletedAt *time.Time,
) (*Transportation, error) {
	t, err := NewTransportation(id, clientID, name, pickup)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	t.pickupAddressID = pickupAddressID
	t.deliveryAddressID = deliveryAddressID
	t.deletedAt = deletedAt
	return t, nil
}

// Validate ensures the instance was created through a constructor.
func (t *Transportation) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransportationIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (t *Transportation) IsEqual(other *Transportation) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (t *Transportation) ID() kernel.UUID {
	return t.id
}

// ClientID returns the owning client's identifier.
func (t *Transportation) ClientID() kernel.UUID {
	return t.clientID
}

// Name returns the user-supplied request name.
func (t *Transportation) Name() string {
	return t.name
}

// Pickup returns the pickup time window.
func (t *Transportation) Pickup() kernel.DateTimeInterval {
	return t.pickup
}

// Status returns the current lifecycle state.
func (t *Transportation) Status() Status {
	return t.status
}

// PickupAddressID returns the linked pickup address, nil when unset.
func (t *Transportation) PickupAddressID() *kernel.UUID {
	return t.pickupAddressID
}

// DeliveryAddressID returns the linked delivery address, nil when unset.
func (t *Transportation) DeliveryAddressID() *kernel.UUID {
	return t.deliveryAddressID
}

// DeletedAt returns the soft-delete marker, nil while the request is live.
func (t *Transportation) DeletedAt() *time.Time {
	return t.deletedAt
}

// IsOwnedBy reports whether the request belongs to the given client.
func (t *Transportation) IsOwnedBy(clientID kernel.UUID) bool {
	return t.clientID.IsEqual(clientID)
}

// Update changes the name and pickup window of a live request.
//
// Returns:
//   - nil on success
//   - ErrTransportationIsFinalized if the request reached a terminal status
//   - validation error if the new values are invalid
func (t *Transportation) Update(name string, pickup kernel.DateTimeInterval) error {
	if t.status.IsFinalized() {
		return ErrTransportationIsFinalized
	}

	return errors.Join(
		t.setName(name),
		t.setPickup(pickup),
	)
}

// LinkAddress attaches an address to the request in the given role.
// Relinking replaces the previous reference for that role; an address
// moving between roles is unlinked from its old slot so it is never
// referenced twice.
func (t *Transportation) LinkAddress(addressID kernel.UUID, asDelivery bool) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	if asDelivery {
		if t.pickupAddressID != nil && t.pickupAddressID.IsEqual(addressID) {
			t.pickupAddressID = nil
		}
		t.deliveryAddressID = &addressID
	} else {
		if t.deliveryAddressID != nil && t.deliveryAddressID.IsEqual(addressID) {
			t.deliveryAddressID = nil
		}
		t.pickupAddressID = &addressID
	}
	return nil
}

// ChangeStatus transitions the request to a new lifecycle state.
// Terminal states reject further transitions.
func (t *Transportation) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if t.status.IsFinalized() && !(t.status == Cancelled && status == Refunded) {
		return ErrTransportationIsFinalized
	}

	t.status = status
	return nil
}

// MarkDeleted stamps the soft-delete marker.
func (t *Transportation) MarkDeleted(at time.Time) {
	t.deletedAt = &at
}

func (t *Transportation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transportation) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	t.clientID = clientID
	return nil
}

func (t *Transportation) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name is invalid",
			fmt.Errorf("name length %d exceeds %d characters", len(name), maxNameLength))
	}
	t.name = name
	return nil
}

func (t *Transportation) setPickup(pickup kernel.DateTimeInterval) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	t.pickup = pickup
	return nil
}
