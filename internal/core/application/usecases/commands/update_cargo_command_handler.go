package commands

import (
	"context"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ErrCargoFromOtherTransportation is raised when the cargo's parent does
// not match the transportation named in the route on an update.
var ErrCargoFromOtherTransportation = errs.NewBusinessError("Cargo does not belong to this Transportation")

// UpdateCargoCommandHandler handles the business logic for updating a
// cargo item. Only the owner may update, and only through the cargo's own
// transportation.
type UpdateCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	currencies ports.CurrencyRepository
}

// NewUpdateCargoCommandHandler creates a handler for cargo updates.
func NewUpdateCargoCommandHandler(
	uowFactory CargoUoWFactory,
	currencies ports.CurrencyRepository,
) UpdateCargoCommandHandler {
	return UpdateCargoCommandHandler{
		uowFactory: uowFactory,
		currencies: currencies,
	}
}

// Handle processes the update command.
func (h *UpdateCargoCommandHandler) Handle(ctx context.Context, cmd UpdateCargoCommand) (*cargo.Cargo, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	price, err := buildPrice(cmd.PriceAmount(), cmd.CurrencyCode(), h.currencies)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cargoRepo := uow.CargoRepository()
	aggregate, err := cargoRepo.Get(ctx, cmd.CargoID())
	if err != nil {
		return nil, err
	}

	if !aggregate.ClientID().IsEqual(cmd.ClientID()) {
		return nil, transportation.ErrAccessForbidden
	}

	if !aggregate.TransportationID().IsEqual(cmd.TransportationID()) {
		return nil, ErrCargoFromOtherTransportation
	}

	if err = aggregate.Update(cmd.Characteristics(), price); err != nil {
		return nil, err
	}

	if err = cargoRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := cargoRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
