package kernel

import (
	"fmt"
	"math"

	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

const (
	// LongitudeMin is the minimum sane longitude in WGS84 degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum sane longitude in WGS84 degrees.
	LongitudeMax = 180.0
	// LatitudeMin is the minimum sane latitude in WGS84 degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum sane latitude in WGS84 degrees.
	LatitudeMax = 90.0

	// earthRadiusKm is the IUGG mean Earth radius used by the Haversine formula.
	earthRadiusKm = 6371.0088
	// kmToMiles converts kilometers to statute miles.
	kmToMiles = 0.621371
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an improperly
// initialized Coordinate. Coordinates must be created via NewCoordinate.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// DistanceResult carries the great-circle distance between two coordinates and
// the initial bearing of the path connecting them.
type DistanceResult struct {
	Km             float64 `json:"distanceKm"`
	Miles          float64 `json:"distanceMiles"`
	BearingDegrees float64 `json:"bearingDegrees"`
}

// Coordinate represents a geographic point in WGS84 degrees (longitude, latitude).
// Coordinate is an immutable value object. Construction rejects NaN and infinite
// components as well as values outside the global sanity envelope, so a properly
// constructed Coordinate can always be fed into geographic math without producing
// NaN results.
//
// The zero value of Coordinate is invalid and fails validation - use NewCoordinate.
//
// Example:
//
//	damSquare, err := kernel.NewCoordinate(4.8922, 52.3731)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(damSquare) // Output: Coordinate(4.892200,52.373100)
type Coordinate struct { //nolint:recvcheck //using for validation
	longitude float64
	latitude  float64
	guard     guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate from longitude and latitude in WGS84 degrees.
//
// Validation rules:
//   - both components must be finite (no NaN, no ±Inf)
//   - longitude must lie within [-180, 180]
//   - latitude must lie within [-90, 90]
//
// Returns a typed validation error when any rule is violated.
func NewCoordinate(longitude float64, latitude float64) (Coordinate, error) {
	c := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setLongitude(longitude); err != nil {
		return Coordinate{}, err
	}
	if err := c.setLatitude(latitude); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate checks that the Coordinate was created via its constructor.
// Returns ErrCoordinateIsNotConstructed for zero-value instances.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Longitude returns the longitude component in degrees.
func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// Latitude returns the latitude component in degrees.
func (c Coordinate) Latitude() float64 {
	return c.latitude
}

// String implements fmt.Stringer with the format "Coordinate(lon,lat)".
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%f,%f)", c.longitude, c.latitude)
}

// IsEqual compares two coordinates for exact equality of both components.
// Both coordinates must be properly constructed.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return c.longitude == other.longitude && c.latitude == other.latitude, nil
}

// DistanceTo computes the great-circle distance from this coordinate to another
// using the Haversine formula, plus the initial bearing (forward azimuth) of the
// path, normalized to [0, 360) degrees.
//
// Both coordinates must be properly constructed; construction guarantees finite
// inputs, so the result is always finite.
//
// Example:
//
//	centraal, _ := kernel.NewCoordinate(4.9003, 52.3791)
//	dam, _ := kernel.NewCoordinate(4.8932, 52.3730)
//	res, _ := centraal.DistanceTo(dam)
//	// res.Km ≈ 0.83, res.BearingDegrees ≈ 215
func (c Coordinate) DistanceTo(other Coordinate) (DistanceResult, error) {
	if err := c.Validate(); err != nil {
		return DistanceResult{}, err
	}
	if err := other.Validate(); err != nil {
		return DistanceResult{}, err
	}

	km := haversineKm(c.latitude, c.longitude, other.latitude, other.longitude)

	return DistanceResult{
		Km:             km,
		Miles:          km * kmToMiles,
		BearingDegrees: initialBearing(c.latitude, c.longitude, other.latitude, other.longitude),
	}, nil
}

func (c *Coordinate) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%v is not a finite number", longitude))
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}

func (c *Coordinate) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%v is not a finite number", latitude))
	}
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

// haversineKm returns the great-circle distance between two points in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degToRad(lat1)
	lat2Rad := degToRad(lat2)
	deltaLat := degToRad(lat2 - lat1)
	deltaLon := degToRad(lon2 - lon1)

	a := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// initialBearing returns the forward azimuth from the first point to the second,
// normalized to [0, 360) degrees.
func initialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degToRad(lat1)
	lat2Rad := degToRad(lat2)
	deltaLon := degToRad(lon2 - lon1)

	x := math.Sin(deltaLon) * math.Cos(lat2Rad)
	y := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(deltaLon)

	return math.Mod(radToDeg(math.Atan2(x, y))+360, 360)
}

func degToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func radToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
