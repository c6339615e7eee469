package kernel

import (
	"math"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when a zero-value Coordinates
// is used.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is a geocoded WGS84 point. Addresses without resolvable
// coordinates are rejected, so this value object is always fully populated.
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates a validated point.
//
// Parameters:
//   - latitude: degrees in [-90, 90]
//   - longitude: degrees in [-180, 180]
//
// Returns:
//   - Coordinates: the created point if both values are in range
//   - error: out-of-range error otherwise
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}

	return Coordinates{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the point was created through the constructor.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// IsEqual compares two points with a small tolerance.
func (c Coordinates) IsEqual(other Coordinates) bool {
	const epsilon = 1e-9
	return math.Abs(c.latitude-other.latitude) < epsilon &&
		math.Abs(c.longitude-other.longitude) < epsilon
}
