package commands

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ErrCoordinatesNotResolved is raised when the geocoder cannot derive
// coordinates for the submitted address. An address without coordinates is
// invalid, so this is a hard precondition.
var ErrCoordinatesNotResolved = errs.NewBusinessError("Could not resolve address coordinates")

// AddAddressCommandHandler handles the business logic for attaching an
// address to a transportation. It resolves city and country names to
// reference records and geocodes the address line before persisting; the
// address insert and the transportation link happen in one transaction.
type AddAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	cities     ports.CityRepository
	countries  ports.CountryRepository
	geocoder   ports.Geocoder
}

// NewAddAddressCommandHandler creates a handler for address creation.
func NewAddAddressCommandHandler(
	uowFactory AddressUoWFactory,
	cities ports.CityRepository,
	countries ports.CountryRepository,
	geocoder ports.Geocoder,
) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
		cities:     cities,
		countries:  countries,
		geocoder:   geocoder,
	}
}

// Handle processes the command. Resolution and geocoding run before the
// transaction opens; nothing is written when either fails.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) (*address.Address, error) {
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

	transportationRepo := uow.TransportationRepository()
	parent, err := transportationRepo.Get(ctx, cmd.TransportationID())
	if err != nil {
		return nil, err
	}

	if !parent.IsOwnedBy(cmd.ClientID()) {
		return nil, transportation.ErrAccessForbidden
	}

	aggregate, err := address.NewAddress(
		cmd.AddressID(), cmd.ClientID(), cmd.TransportationID(), cmd.Type(),
		cmd.Alias(), cmd.Contact(), cmd.Phone(), cityID, countryID,
		cmd.AddressLine1(), cmd.AddressLine2(), cmd.AddressLine3(), cmd.Comment(),
		coords,
	)
	if err != nil {
		return nil, err
	}

	addressRepo := uow.AddressRepository()
	if err = addressRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = parent.LinkAddress(aggregate.ID(), cmd.Type().IsDelivery()); err != nil {
		return nil, err
	}

	if err = transportationRepo.Update(ctx, parent); err != nil {
		return nil, err
	}

	created, err := addressRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// resolveAddressInputs maps human-entered city and country names to
// reference identifiers and derives coordinates for the address line.
// Shared by the add and update address handlers.
func resolveAddressInputs(
	ctx context.Context,
	cities ports.CityRepository,
	countries ports.CountryRepository,
	geocoder ports.Geocoder,
	cityName, countryName, addressLine string,
) (cityID int, countryID int, coords kernel.Coordinates, err error) {
	country, err := countries.FindByName(ctx, countryName)
	if err != nil {
		return 0, 0, kernel.Coordinates{}, err
	}
	if country == nil {
		return 0, 0, kernel.Coordinates{},
			errs.NewBusinessError(fmt.Sprintf("Unknown country %s", countryName))
	}

	city, err := cities.FindByName(ctx, cityName)
	if err != nil {
		return 0, 0, kernel.Coordinates{}, err
	}
	if city == nil {
		return 0, 0, kernel.Coordinates{},
			errs.NewBusinessError(fmt.Sprintf("Unknown city %s", cityName))
	}

	coords, err = geocoder.Geocode(ctx, countryName, cityName, addressLine)
	if err != nil {
		return 0, 0, kernel.Coordinates{}, ErrCoordinatesNotResolved
	}

	return city.ID, country.ID, coords, nil
}
