package kernel

import (
	"fmt"
	"math"

	"fleetsim/internal/pkg/errs"
	"fleetsim/internal/pkg/guard"
)

// Amsterdam operational bounding box. Couriers stepping outside this region are
// clamped back in; the constants are shared with the rendering layer.
const (
	AmsterdamMinLongitude = 4.85
	AmsterdamMaxLongitude = 4.95
	AmsterdamMinLatitude  = 52.34
	AmsterdamMaxLatitude  = 52.40
)

// ErrBoundingBoxIsNotConstructed is returned when attempting to use an improperly
// initialized BoundingBox. Bounding boxes must be created via NewBoundingBox.
var ErrBoundingBoxIsNotConstructed = errs.NewValueIsRequiredError(
	"bounding box must be created via NewBoundingBox constructor")

// BoundingBox is a rectangular geographic region in WGS84 degrees. It defines the
// operational area couriers are allowed to occupy; positions outside it are
// corrected by clamping, never rejected.
//
// BoundingBox is an immutable value object. The zero value is invalid - use
// NewBoundingBox or AmsterdamOperationalBounds.
type BoundingBox struct { //nolint:recvcheck //using for validation
	minLongitude float64
	maxLongitude float64
	minLatitude  float64
	maxLatitude  float64
	guard        guard.ConstructorGuard
}

// NewBoundingBox creates a BoundingBox from its edges in WGS84 degrees.
//
// Validation rules:
//   - all edges must be finite
//   - longitudes within [-180, 180], latitudes within [-90, 90]
//   - min edge strictly below max edge on both axes
func NewBoundingBox(minLongitude, maxLongitude, minLatitude, maxLatitude float64) (BoundingBox, error) {
	bbox := BoundingBox{
		guard: guard.NewConstructorGuard(),
	}

	for name, v := range map[string]float64{
		"minLongitude": minLongitude,
		"maxLongitude": maxLongitude,
		"minLatitude":  minLatitude,
		"maxLatitude":  maxLatitude,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return BoundingBox{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%v is not a finite number", v))
		}
	}

	if minLongitude < LongitudeMin || maxLongitude > LongitudeMax {
		return BoundingBox{}, errs.NewValueIsOutOfRangeError(
			"longitude edges", fmt.Sprintf("[%v, %v]", minLongitude, maxLongitude), LongitudeMin, LongitudeMax)
	}
	if minLatitude < LatitudeMin || maxLatitude > LatitudeMax {
		return BoundingBox{}, errs.NewValueIsOutOfRangeError(
			"latitude edges", fmt.Sprintf("[%v, %v]", minLatitude, maxLatitude), LatitudeMin, LatitudeMax)
	}
	if minLongitude >= maxLongitude {
		return BoundingBox{}, errs.NewValueIsInvalidErrorWithCause("minLongitude",
			fmt.Errorf("%v is not below maxLongitude %v", minLongitude, maxLongitude))
	}
	if minLatitude >= maxLatitude {
		return BoundingBox{}, errs.NewValueIsInvalidErrorWithCause("minLatitude",
			fmt.Errorf("%v is not below maxLatitude %v", minLatitude, maxLatitude))
	}

	bbox.minLongitude = minLongitude
	bbox.maxLongitude = maxLongitude
	bbox.minLatitude = minLatitude
	bbox.maxLatitude = maxLatitude
	return bbox, nil
}

// AmsterdamOperationalBounds returns the bounding box of the Amsterdam operating
// region used by the fleet simulation.
func AmsterdamOperationalBounds() BoundingBox {
	bbox, err := NewBoundingBox(
		AmsterdamMinLongitude, AmsterdamMaxLongitude,
		AmsterdamMinLatitude, AmsterdamMaxLatitude,
	)
	if err != nil {
		// The edges are compile-time constants validated by tests.
		panic(err)
	}
	return bbox
}

// Validate checks that the BoundingBox was created via its constructor.
func (b BoundingBox) Validate() error {
	return b.guard.Validate(ErrBoundingBoxIsNotConstructed)
}

// MinLongitude returns the western edge in degrees.
func (b BoundingBox) MinLongitude() float64 { return b.minLongitude }

// MaxLongitude returns the eastern edge in degrees.
func (b BoundingBox) MaxLongitude() float64 { return b.maxLongitude }

// MinLatitude returns the southern edge in degrees.
func (b BoundingBox) MinLatitude() float64 { return b.minLatitude }

// MaxLatitude returns the northern edge in degrees.
func (b BoundingBox) MaxLatitude() float64 { return b.maxLatitude }

// Contains reports whether the coordinate lies within the box (edges inclusive).
func (b BoundingBox) Contains(c Coordinate) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}
	if err := c.Validate(); err != nil {
		return false, err
	}

	return c.Longitude() >= b.minLongitude && c.Longitude() <= b.maxLongitude &&
		c.Latitude() >= b.minLatitude && c.Latitude() <= b.maxLatitude, nil
}

// Clamp constrains the coordinate to the box, clamping longitude and latitude
// independently. The second return value reports whether clamping changed the
// position; clamping an in-bounds coordinate is a fixed point and returns it
// unchanged with false.
func (b BoundingBox) Clamp(c Coordinate) (Coordinate, bool, error) {
	if err := b.Validate(); err != nil {
		return Coordinate{}, false, err
	}
	if err := c.Validate(); err != nil {
		return Coordinate{}, false, err
	}

	lon := math.Min(math.Max(c.Longitude(), b.minLongitude), b.maxLongitude)
	lat := math.Min(math.Max(c.Latitude(), b.minLatitude), b.maxLatitude)

	if lon == c.Longitude() && lat == c.Latitude() {
		return c, false, nil
	}

	clamped, err := NewCoordinate(lon, lat)
	if err != nil {
		return Coordinate{}, false, err
	}
	return clamped, true, nil
}
