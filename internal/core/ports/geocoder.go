package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// Geocoder resolves a postal address to coordinates. Address creation
// treats an unresolvable address as a hard precondition failure.
type Geocoder interface {
	// Geocode resolves the address line within the given city and country
	// names. Returns an error when no coordinates can be derived.
	Geocode(ctx context.Context, country, city, addressLine string) (kernel.Coordinates, error)
}
