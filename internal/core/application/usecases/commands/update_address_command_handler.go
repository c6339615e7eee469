package commands

import (
	"context"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ErrAddressFromOtherTransportation is raised when the address's parent
// does not match the transportation named in the route.
var ErrAddressFromOtherTransportation = errs.NewBusinessError("Address does not belong to this Transportation")

// UpdateAddressCommandHandler handles the business logic for updating a
// transportation address. Re-resolves reference data and re-geocodes
// before persisting. If the address role changes, the transportation link
// is moved in the same transaction.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	cities     ports.CityRepository
	countries  ports.CountryRepository
	geocoder   ports.Geocoder
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(
	uowFactory AddressUoWFactory,
	cities ports.CityRepository,
	countries ports.CountryRepository,
	geocoder ports.Geocoder,
) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
		cities:     cities,
		countries:  countries,
		geocoder:   geocoder,
	}
}

// Handle processes the update command.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cityID, countryID, coords, err := resolveAddressInputs(
		ctx, h.cities, h.countries, h.geocoder,
		cmd.CityName(), cmd.CountryName(), cmd.AddressLine1(),
	)
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

	addressRepo := uow.AddressRepository()
	aggregate, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return nil, err
	}

	if !aggregate.ClientID().IsEqual(cmd.ClientID()) {
		return nil, transportation.ErrAccessForbidden
	}

	if !aggregate.TransportationID().IsEqual(cmd.TransportationID()) {
		return nil, ErrAddressFromOtherTransportation
	}

	roleChanged := aggregate.Type() != cmd.Type()

	if err = aggregate.Update(
		cmd.Type(), cmd.Alias(), cmd.Contact(), cmd.Phone(), cityID, countryID,
		cmd.AddressLine1(), cmd.AddressLine2(), cmd.AddressLine3(), cmd.Comment(),
		coords,
	); err != nil {
		return nil, err
	}

	if err = addressRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if roleChanged {
		transportationRepo := uow.TransportationRepository()
		parent, parentErr := transportationRepo.Get(ctx, aggregate.TransportationID())
		if parentErr != nil {
			return nil, parentErr
		}

		if err = parent.LinkAddress(aggregate.ID(), cmd.Type().IsDelivery()); err != nil {
			return nil, err
		}

		if err = transportationRepo.Update(ctx, parent); err != nil {
			return nil, err
		}
	}

	updated, err := addressRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
