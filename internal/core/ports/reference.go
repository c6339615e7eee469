package ports

import (
	"context"

	"shipping/internal/core/domain/model/ref"
)

// CityRepository serves reference city records. Implementations cache the
// full set in memory and refresh it periodically.
type CityRepository interface {
	// GetAll returns every known city.
	GetAll(ctx context.Context) ([]ref.City, error)

	// FindByName resolves a human-entered city name case-insensitively.
	// Returns (nil, nil) when no city matches.
	FindByName(ctx context.Context, name string) (*ref.City, error)

	// FindByID resolves a city reference identifier.
	// Returns (nil, nil) when no city matches.
	FindByID(ctx context.Context, id int) (*ref.City, error)
}

// CountryRepository serves reference country records.
type CountryRepository interface {
	// GetAll returns every known country.
	GetAll(ctx context.Context) ([]ref.Country, error)

	// FindByName resolves a human-entered country name case-insensitively.
	// Returns (nil, nil) when no country matches.
	FindByName(ctx context.Context, name string) (*ref.Country, error)

	// FindByID resolves a country reference identifier.
	// Returns (nil, nil) when no country matches.
	FindByID(ctx context.Context, id int) (*ref.Country, error)
}

// CurrencyRepository serves reference currency records. It doubles as the
// currency catalog consulted by Money construction.
type CurrencyRepository interface {
	// GetAll returns every known currency.
	GetAll(ctx context.Context) ([]ref.Currency, error)

	// HasCurrency reports whether the ISO code is in the reference set.
	HasCurrency(code string) bool
}
