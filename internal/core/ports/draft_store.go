package ports

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/model/draft"
	"shipping/internal/core/domain/model/kernel"
)

// DraftKey addresses one wizard draft in the cache. The typed pair of
// owner and draft identifiers replaces string interpolation at call
// sites, so two users can never collide on the same draft.
type DraftKey struct {
	UserID  kernel.UUID
	DraftID kernel.UUID
}

// String renders the cache key for the draft payload.
func (k DraftKey) String() string {
	return fmt.Sprintf("%s_transportation_draft_%s", k.UserID, k.DraftID)
}

// IndexKey renders the cache key of the owner's draft-ID list.
func (k DraftKey) IndexKey() string {
	return fmt.Sprintf("%s_transportation_draft_ids", k.UserID)
}

// DraftStore is the cache abstraction behind the booking wizard. Draft
// payloads and the per-user draft-ID index share one TTL. The payload
// write and the index update are independent operations with no
// transactional guarantee between them; the last write wins under
// concurrent saves of the same draft.
type DraftStore interface {
	// Save writes the draft payload under the given key, resetting its TTL.
	Save(ctx context.Context, key DraftKey, d draft.Draft) error

	// Find reads the draft payload. Returns (nil, nil) when the key is
	// absent or expired.
	Find(ctx context.Context, key DraftKey) (*draft.Draft, error)

	// RegisterID adds the draft ID to the owner's draft-ID list. Adding an
	// ID that is already listed is a no-op, so repeated saves of the same
	// draft keep list membership idempotent.
	RegisterID(ctx context.Context, key DraftKey) error

	// IDs returns the owner's registered draft IDs.
	IDs(ctx context.Context, userID kernel.UUID) ([]kernel.UUID, error)
}
