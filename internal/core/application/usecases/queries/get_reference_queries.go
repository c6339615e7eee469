package queries

import (
	"context"

	"shipping/internal/core/domain/model/ref"
	"shipping/internal/core/ports"
)

// GetCountriesQuery requests the full reference country list.
type GetCountriesQuery struct{}

// NewGetCountriesQuery creates a query for the country list.
func NewGetCountriesQuery() GetCountriesQuery {
	return GetCountriesQuery{}
}

// GetCountriesQueryHandler serves countries from the cached repository.
type GetCountriesQueryHandler struct {
	countries ports.CountryRepository
}

// NewGetCountriesQueryHandler creates a handler for country list reads.
func NewGetCountriesQueryHandler(countries ports.CountryRepository) GetCountriesQueryHandler {
	return GetCountriesQueryHandler{countries: countries}
}

// Handle executes the query.
func (h GetCountriesQueryHandler) Handle(ctx context.Context, _ GetCountriesQuery) ([]ref.Country, error) {
	return h.countries.GetAll(ctx)
}

// GetCitiesQuery requests reference cities, optionally narrowed to one country.
type GetCitiesQuery struct {
	countryID int
}

// NewGetCitiesQuery creates a query for the city list. A zero countryID
// returns every city.
func NewGetCitiesQuery(countryID int) GetCitiesQuery {
	return GetCitiesQuery{countryID: countryID}
}

// CountryID returns the country filter, zero means no filter.
func (q GetCitiesQuery) CountryID() int {
	return q.countryID
}

// GetCitiesQueryHandler serves cities from the cached repository.
type GetCitiesQueryHandler struct {
	cities ports.CityRepository
}

// NewGetCitiesQueryHandler creates a handler for city list reads.
func NewGetCitiesQueryHandler(cities ports.CityRepository) GetCitiesQueryHandler {
	return GetCitiesQueryHandler{cities: cities}
}

// Handle executes the query.
func (h GetCitiesQueryHandler) Handle(ctx context.Context, query GetCitiesQuery) ([]ref.City, error) {
	cities, err := h.cities.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if query.CountryID() == 0 {
		return cities, nil
	}

	filtered := make([]ref.City, 0, len(cities))
	for _, city := range cities {
		if city.CountryID == query.CountryID() {
			filtered = append(filtered, city)
		}
	}

	return filtered, nil
}

// GetCurrenciesQuery requests the full reference currency list.
type GetCurrenciesQuery struct{}

// NewGetCurrenciesQuery creates a query for the currency list.
func NewGetCurrenciesQuery() GetCurrenciesQuery {
	return GetCurrenciesQuery{}
}

// GetCurrenciesQueryHandler serves currencies from the cached repository.
type GetCurrenciesQueryHandler struct {
	currencies ports.CurrencyRepository
}

// NewGetCurrenciesQueryHandler creates a handler for currency list reads.
func NewGetCurrenciesQueryHandler(currencies ports.CurrencyRepository) GetCurrenciesQueryHandler {
	return GetCurrenciesQueryHandler{currencies: currencies}
}

// Handle executes the query.
func (h GetCurrenciesQueryHandler) Handle(ctx context.Context, _ GetCurrenciesQuery) ([]ref.Currency, error) {
	return h.currencies.GetAll(ctx)
}
