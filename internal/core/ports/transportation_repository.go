// Package ports defines the repository and collaborator interfaces of the
// booking core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
)

// TransportationRepository defines the persistence contract for the
// transportation aggregate. Soft-deleted requests are excluded from reads
// unless stated otherwise.
type TransportationRepository interface {
	// Add persists a new transportation aggregate to storage.
	// The aggregate must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *transportation.Transportation) error

	// Update persists changes to an existing transportation aggregate,
	// including address links, status and the soft-delete marker.
	Update(ctx context.Context, aggregate *transportation.Transportation) error

	// Get retrieves a live transportation aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when absent or soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*transportation.Transportation, error)
}
