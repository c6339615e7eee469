package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/pkg/errs"
)

// ErrCargoNotFound is raised when the cargo named in the route does not
// exist or was already deleted.
var ErrCargoNotFound = errs.NewBusinessError("Cargo not found")

// DeleteCargoCommandHandler handles the business logic for removing a
// cargo item. Enforces ownership and cross-aggregate consistency before
// stamping the soft-delete marker: the cargo must belong to the acting
// client and to the transportation named in the route.
type DeleteCargoCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewDeleteCargoCommandHandler creates a handler for cargo deletion.
func NewDeleteCargoCommandHandler(uowFactory CargoUoWFactory) DeleteCargoCommandHandler {
	return DeleteCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command and returns the tombstoned cargo.
//
// Returns:
//   - ErrCargoNotFound when the cargo does not exist
//   - cargo.ErrCargoOwnedByOtherClient when the actor does not own it
//   - cargo.ErrCargoBelongsToOtherTransportation when the parent mismatches
func (h *DeleteCargoCommandHandler) Handle(ctx context.Context, cmd DeleteCargoCommand) (*cargo.Cargo, error) {
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

	cargoRepo := uow.CargoRepository()
	aggregate, err := cargoRepo.Get(ctx, cmd.CargoID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrCargoNotFound
		}
		return nil, err
	}

	if err = aggregate.EnsureDeletableBy(cmd.ClientID(), cmd.TransportationID()); err != nil {
		return nil, err
	}

	aggregate.MarkDeleted(time.Now().UTC())

	if err = cargoRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
