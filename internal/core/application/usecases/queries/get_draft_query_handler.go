package queries

import (
	"context"

	"shipping/internal/core/domain/model/draft"
	"shipping/internal/core/ports"
)

// GetDraftQueryHandler reads a single draft from the draft store.
type GetDraftQueryHandler struct {
	store ports.DraftStore
}

// NewGetDraftQueryHandler creates a handler for single draft reads.
func NewGetDraftQueryHandler(store ports.DraftStore) GetDraftQueryHandler {
	return GetDraftQueryHandler{store: store}
}

// Handle executes the query. Returns nil without error when the draft
// does not exist or has expired.
func (h GetDraftQueryHandler) Handle(ctx context.Context, query GetDraftQuery) (*draft.Draft, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := ports.DraftKey{UserID: query.UserID(), DraftID: query.DraftID()}
	return h.store.Find(ctx, key)
}
