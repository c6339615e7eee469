package commands

import (
	"context"

	"shipping/internal/core/domain/model/transportation"
)

// RegisterTransportationCommandHandler handles the business logic for
// registering a transportation request. New requests always start in the
// "new" status.
type RegisterTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
}

// NewRegisterTransportationCommandHandler creates a handler for
// transportation registration. Requires a TransportationUoWFactory for
// transactional persistence.
func NewRegisterTransportationCommandHandler(uowFactory TransportationUoWFactory) RegisterTransportationCommandHandler {
	return RegisterTransportationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Persists the new request and
// re-reads it within the same transaction, so the returned aggregate
// reflects server-computed state.
func (h *RegisterTransportationCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterTransportationCommand,
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
	aggregate, err := transportation.NewTransportation(
		cmd.TransportationID(), cmd.ClientID(), cmd.Name(), cmd.Pickup(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := repo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
