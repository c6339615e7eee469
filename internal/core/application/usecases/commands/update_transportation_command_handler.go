package commands

import (
	"context"

	"shipping/internal/core/domain/model/transportation"
)

// UpdateTransportationCommandHandler handles the business logic for
// updating a transportation request. Only the owner may update a request.
type UpdateTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
}

// NewUpdateTransportationCommandHandler creates a handler for
// transportation updates.
func NewUpdateTransportationCommandHandler(uowFactory TransportationUoWFactory) UpdateTransportationCommandHandler {
	return UpdateTransportationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Loads the request, checks ownership,
// applies the change and re-reads the persisted state.
func (h *UpdateTransportationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTransportationCommand,
) (*transportation.Transportation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportationRepository()
	aggregate, err := repo.Get(ctx, cmd.TransportationID())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsOwnedBy(cmd.ClientID()) {
		return nil, transportation.ErrAccessForbidden
	}

	if err = aggregate.Update(cmd.Name(), cmd.Pickup()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
