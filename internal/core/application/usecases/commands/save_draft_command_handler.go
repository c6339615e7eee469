package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/draft"
	"shipping/internal/core/ports"
)

// SaveDraftCommandHandler handles the business logic for saving a wizard
// draft step. The payload write and the draft-ID registration are two
// independent cache operations; a failure between them can leave an
// orphaned payload, which expires with its TTL.
type SaveDraftCommandHandler struct {
	store ports.DraftStore
	now   func() time.Time
}

// NewSaveDraftCommandHandler creates a handler for draft saves.
func NewSaveDraftCommandHandler(store ports.DraftStore) SaveDraftCommandHandler {
	return SaveDraftCommandHandler{
		store: store,
		now:   time.Now,
	}
}

// Handle processes the draft save. Writes the step payload and registers
// the draft ID in the owner's draft list; registration is idempotent, so
// repeated saves of the same draft list it once.
func (h *SaveDraftCommandHandler) Handle(ctx context.Context, cmd SaveDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := draft.NewDraft(cmd.Step(), cmd.Data(), h.now().UTC())
	if err != nil {
		return err
	}

	key := ports.DraftKey{
		UserID:  cmd.UserID(),
		DraftID: cmd.DraftID(),
	}

	if err = h.store.Save(ctx, key, d); err != nil {
		return err
	}

	return h.store.RegisterID(ctx, key)
}
