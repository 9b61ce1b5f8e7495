package services

import (
	"math"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/model/kernel"
)

// Movement step scales in degrees per tick. Idle couriers drift by roughly GPS
// noise scale; active couriers take a purposeful step an order of magnitude
// larger.
const (
	movementIdleDegrees   = 0.0002
	movementActiveDegrees = 0.001
)

// MovementResult carries the moved records and the tick's movement counters.
type MovementResult struct {
	Couriers          []courier.Courier `json:"couriers"`
	MovementsApplied  uint32            `json:"movementsApplied"`
	BoundsCorrections uint32            `json:"boundsCorrections"`
}

// MovementModel advances courier positions by one tick. It is stateless; the
// operational bounding box is configuration, not state.
type MovementModel struct {
	bounds kernel.BoundingBox
}

// NewMovementModel creates a MovementModel clamping into the given bounds.
func NewMovementModel(bounds kernel.BoundingBox) MovementModel {
	return MovementModel{bounds: bounds}
}

// SimulateMovement applies one movement step to every courier and returns a new
// slice; the input is never mutated.
//
// Each courier's step direction derives deterministically from the seed and the
// courier's id, so repeated calls with the same seed and input reproduce the
// same result. Idle couriers jitter by the GPS-noise scale; delivering and
// returning couriers take the larger directed step. After stepping, positions
// are clamped to the operational bounds; BoundsCorrections counts records the
// clamp actually moved, MovementsApplied counts records whose pre-clamp
// position changed.
//
// Fails with a typed error when any record carries non-finite or out-of-sanity
// coordinates or an invalid status; no partial result is returned.
func (m MovementModel) SimulateMovement(couriers []courier.Courier, seed int64) (MovementResult, error) {
	result := MovementResult{
		Couriers: make([]courier.Courier, len(couriers)),
	}

	for i, c := range couriers {
		moved, wasMoved, wasClamped, err := m.moveCourier(c, seed)
		if err != nil {
			return MovementResult{}, err
		}

		if wasMoved {
			result.MovementsApplied++
		}
		if wasClamped {
			result.BoundsCorrections++
		}
		result.Couriers[i] = moved
	}

	return result, nil
}

// moveCourier steps a single courier and clamps the result.
func (m MovementModel) moveCourier(c courier.Courier, seed int64) (courier.Courier, bool, bool, error) {
	if _, err := c.Position(); err != nil {
		return courier.Courier{}, false, false, err
	}

	var magnitude float64
	switch c.Status {
	case courier.Idle:
		magnitude = movementIdleDegrees
	case courier.Delivering, courier.Returning:
		magnitude = movementActiveDegrees
	default:
		return courier.Courier{}, false, false, c.Status.Validate()
	}

	angle := unitDraw(subSeed(seed, c.ID), channelMovement) * 2 * math.Pi

	newLon := c.Longitude + math.Cos(angle)*magnitude
	newLat := c.Latitude + math.Sin(angle)*magnitude
	wasMoved := newLon != c.Longitude || newLat != c.Latitude

	stepped, err := kernel.NewCoordinate(newLon, newLat)
	if err != nil {
		return courier.Courier{}, false, false, err
	}

	clamped, wasClamped, err := m.bounds.Clamp(stepped)
	if err != nil {
		return courier.Courier{}, false, false, err
	}

	moved := c
	moved.Longitude = clamped.Longitude()
	moved.Latitude = clamped.Latitude()
	return moved, wasMoved, wasClamped, nil
}
