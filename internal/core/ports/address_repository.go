package ports

import (
	"context"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for transportation
// addresses.
type AddressRepository interface {
	// Add persists a new address to storage.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, aggregate *address.Address) error

	// Get retrieves a live address by its unique identifier.
	// Returns errs.ObjectNotFoundError when absent or soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// GetByTransportation retrieves the live addresses linked to a request.
	GetByTransportation(ctx context.Context, transportationID kernel.UUID) ([]*address.Address, error)
}
