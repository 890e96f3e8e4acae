package kernel

import (
	"errors"
	"fmt"
	"math"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in decimal degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in decimal degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in decimal degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in decimal degrees.
	MaxLongitude = 180.0

	earthRadiusKm = 6371.0

	// coordinateEpsilon is the tolerance used for equality comparison.
	// Roughly 11 meters at the equator, plenty for station positions.
	coordinateEpsilon = 0.0001
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an
// improperly initialized Coordinate.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// Coordinate represents a geographic position with validated latitude and
// longitude. It is an immutable value object supporting great-circle distance
// and radius membership, the two geospatial computations the rental domain
// needs.
//
// Example:
//
//	bogota, err := kernel.NewCoordinate(4.6097, -74.0817)
//	if err != nil {
//	    // handle validation error
//	}
//	km, _ := bogota.DistanceTo(station)
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate with the given latitude and longitude in
// decimal degrees. Latitude must fall in [-90, 90] and longitude in [-180, 180].
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	coordinate := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coordinate.setLatitude(latitude),
		coordinate.setLongitude(longitude),
	); err != nil {
		return Coordinate{}, err
	}

	return coordinate, nil
}

// Validate checks the Coordinate was created through the constructor.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// DistanceTo calculates the great-circle distance to another coordinate in
// kilometers using the haversine formula.
func (c Coordinate) DistanceTo(other Coordinate) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(c.latitude)
	lat2 := degreesToRadians(other.latitude)
	deltaLat := degreesToRadians(other.latitude - c.latitude)
	deltaLng := degreesToRadians(other.longitude - c.longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * arc, nil
}

// IsWithinRadius reports whether the coordinate lies within radiusKm of
// center. The boundary is inclusive: a point exactly radiusKm away is inside.
func (c Coordinate) IsWithinRadius(center Coordinate, radiusKm float64) (bool, error) {
	distance, err := c.DistanceTo(center)
	if err != nil {
		return false, err
	}

	return distance <= radiusKm, nil
}

// IsEqual compares two coordinates with a small tolerance to absorb float
// round-trips through serialization.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return math.Abs(c.latitude-other.latitude) < coordinateEpsilon &&
		math.Abs(c.longitude-other.longitude) < coordinateEpsilon, nil
}

// String implements fmt.Stringer, e.g. "4.6097,-74.0817".
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.latitude, c.longitude)
}

func (c *Coordinate) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

func (c *Coordinate) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
