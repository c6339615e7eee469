package commands

import (
	"context"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/core/ports"
)

// AddCargoCommandHandler handles the business logic for adding cargo to a
// transportation. The price currency is checked against the reference
// currency set; an absent code falls back to the default currency.
type AddCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	currencies ports.CurrencyRepository
}

// NewAddCargoCommandHandler creates a handler for cargo creation.
func NewAddCargoCommandHandler(uowFactory CargoUoWFactory, currencies ports.CurrencyRepository) AddCargoCommandHandler {
	return AddCargoCommandHandler{
		uowFactory: uowFactory,
		currencies: currencies,
	}
}

// Handle processes the command. Verifies the parent request exists and is
// owned by the actor, persists the cargo and re-reads the stored state.
func (h *AddCargoCommandHandler) Handle(ctx context.Context, cmd AddCargoCommand) (*cargo.Cargo, error) {
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

	parent, err := uow.TransportationRepository().Get(ctx, cmd.TransportationID())
	if err != nil {
		return nil, err
	}

	if !parent.IsOwnedBy(cmd.ClientID()) {
		return nil, transportation.ErrAccessForbidden
	}

	aggregate, err := cargo.NewCargo(
		cmd.CargoID(), cmd.TransportationID(), cmd.ClientID(),
		cmd.Characteristics(), price,
	)
	if err != nil {
		return nil, err
	}

	cargoRepo := uow.CargoRepository()
	if err = cargoRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := cargoRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// buildPrice constructs a Money value from a raw amount and optional
// currency code, consulting the reference currency set. Shared by the add
// and update cargo handlers.
func buildPrice(amount int64, currencyCode string, catalog ports.CurrencyRepository) (kernel.Money, error) {
	var currency *kernel.Currency
	if currencyCode != "" {
		parsed, err := kernel.NewCurrency(currencyCode, catalog)
		if err != nil {
			return kernel.Money{}, err
		}
		currency = &parsed
	}

	return kernel.NewMoney(amount, currency, catalog)
}
