package courier

import (
	"fmt"
	"math"

	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/pkg/errs"
)

// Domain errors for courier records.
var (
	// ErrIDIsRequired is returned when a courier record has an empty id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrNameIsRequired is returned when a courier record has an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Courier is one vehicle record in a fleet snapshot.
//
// Unlike the guarded value objects in kernel, Courier is a plain data record:
// it crosses the serialization boundary between the engine and its callers
// (storage, HTTP, renderer), so its fields are exported and may hold raw,
// not-yet-sanitized values. Use Validate for the hard invariants and the
// services validator for sanitization; convert to kernel.Coordinate via
// Position before doing geographic math.
//
// Fields:
//   - ID: opaque stable identifier, unique within a snapshot
//   - Name: display label, non-empty
//   - Longitude/Latitude: WGS84 degrees
//   - Status: courier activity state
//   - SpeedKmh: non-negative; expected (not enforced) to be zero when idle
type Courier struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Status    Status  `json:"status"`
	SpeedKmh  float64 `json:"speed"`
}

// Validate checks the hard invariants of a courier record: non-empty id and
// name, finite in-sanity-range coordinates, valid status, and non-negative
// speed. Soft violations (out of operational bounds, implausible speed) are the
// validator's concern and are sanitized, not rejected.
func (c Courier) Validate() error {
	if c.ID == "" {
		return ErrIDIsRequired
	}
	if c.Name == "" {
		return ErrNameIsRequired
	}

	if _, err := kernel.NewCoordinate(c.Longitude, c.Latitude); err != nil {
		return err
	}

	if err := c.Status.Validate(); err != nil {
		return err
	}

	if math.IsNaN(c.SpeedKmh) || math.IsInf(c.SpeedKmh, 0) {
		return errs.NewValueIsInvalidErrorWithCause("speed",
			fmt.Errorf("%v is not a finite number", c.SpeedKmh))
	}
	if c.SpeedKmh < 0 {
		return errs.NewValueIsInvalidErrorWithCause("speed",
			fmt.Errorf("%v is negative", c.SpeedKmh))
	}

	return nil
}

// Position converts the record's raw coordinates into a kernel.Coordinate.
// Fails with a typed error when the coordinates are NaN, infinite, or outside
// the WGS84 sanity envelope.
func (c Courier) Position() (kernel.Coordinate, error) {
	return kernel.NewCoordinate(c.Longitude, c.Latitude)
}
