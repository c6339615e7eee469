package queries

import (
	"context"
	"time"

	"shipping/internal/core/ports"
)

// ListDraftsQueryHandler builds the user's draft list from the draft
// store. The registered ID index may reference drafts whose payloads
// have already expired, those entries are skipped.
type ListDraftsQueryHandler struct {
	store ports.DraftStore
}

// NewListDraftsQueryHandler creates a handler for draft list reads.
func NewListDraftsQueryHandler(store ports.DraftStore) ListDraftsQueryHandler {
	return ListDraftsQueryHandler{store: store}
}

// Handle executes the query. Drafts without a name in their payload are
// listed as "Untitled Transportation".
func (h ListDraftsQueryHandler) Handle(ctx context.Context, query ListDraftsQuery) ([]DraftListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	draftIDs, err := h.store.IDs(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	items := make([]DraftListItem, 0, len(draftIDs))
	for _, draftID := range draftIDs {
		stored, err := h.store.Find(ctx, ports.DraftKey{UserID: query.UserID(), DraftID: draftID})
		if err != nil {
			return nil, err
		}
		if stored == nil {
			continue
		}

		items = append(items, DraftListItem{
			DraftID:   draftID.String(),
			Name:      stored.Name(untitledDraftName),
			Step:      string(stored.Step),
			UpdatedAt: stored.UpdatedAt.Format(time.RFC3339),
		})
	}

	return items, nil
}
