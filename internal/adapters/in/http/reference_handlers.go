package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type countryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	ISO2 string `json:"iso2"`
}

type cityItem struct {
	ID        int    `json:"id"`
	CountryID int    `json:"countryId"`
	Name      string `json:"name"`
}

type currencyItem struct {
	ID     int    `json:"id"`
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// GetCountries handles GET /api/countries.
func (s *Server) GetCountries(c echo.Context) error {
	countries, err := s.getCountriesHandler.Handle(c.Request().Context(), queries.NewGetCountriesQuery())
	if err != nil {
		return s.fail(c, "GetCountries", err)
	}

	items := make([]countryItem, 0, len(countries))
	for _, country := range countries {
		items = append(items, countryItem{ID: country.ID, Name: country.Name, ISO2: country.ISO2})
	}

	return respond(c, http.StatusOK, items)
}

// GetCities handles GET /api/cities. An optional country_id query parameter
// narrows the list to one country.
func (s *Server) GetCities(c echo.Context) error {
	countryID, err := intQueryParam(c, "country_id")
	if err != nil {
		return s.fail(c, "GetCities", err)
	}

	cities, err := s.getCitiesHandler.Handle(c.Request().Context(), queries.NewGetCitiesQuery(countryID))
	if err != nil {
		return s.fail(c, "GetCities", err)
	}

	items := make([]cityItem, 0, len(cities))
	for _, city := range cities {
		items = append(items, cityItem{ID: city.ID, CountryID: city.CountryID, Name: city.Name})
	}

	return respond(c, http.StatusOK, items)
}

// GetCurrencies handles GET /api/currencies.
func (s *Server) GetCurrencies(c echo.Context) error {
	currencies, err := s.getCurrenciesHandler.Handle(c.Request().Context(), queries.NewGetCurrenciesQuery())
	if err != nil {
		return s.fail(c, "GetCurrencies", err)
	}

	items := make([]currencyItem, 0, len(currencies))
	for _, currency := range currencies {
		items = append(items, currencyItem{ID: currency.ID, Code: currency.Code, Symbol: currency.Symbol})
	}

	return respond(c, http.StatusOK, items)
}
