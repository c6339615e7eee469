package ports

import (
	"context"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo items.
type CargoRepository interface {
	// Add persists a new cargo item to storage.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo item, including the
	// soft-delete marker.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a live cargo item by its unique identifier.
	// Returns errs.ObjectNotFoundError when absent or soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error)

	// GetByTransportation retrieves the live cargo items of a request.
	GetByTransportation(ctx context.Context, transportationID kernel.UUID) ([]*cargo.Cargo, error)
}
