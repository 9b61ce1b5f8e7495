package services

import (
	"fmt"
	"math"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/model/kernel"
)

const (
	// MaxPlausibleSpeedKmh is the highest speed a courier record may report.
	// Faster records are capped with a warning, not rejected.
	MaxPlausibleSpeedKmh = 50.0

	// maxNameLength is the display-label budget; longer names are truncated.
	maxNameLength = 50

	// idleSpeedToleranceKmh is the speed above which an idle courier is
	// considered inconsistent and its speed is zeroed.
	idleSpeedToleranceKmh = 1.0
)

// ValidationResult reports the outcome of validating one courier record.
//
// Errors mark the record unusable (IsValid=false, Sanitized=nil). Warnings mark
// soft violations that were corrected in Sanitized: positions outside the
// operational bounding box are clamped, implausible speeds capped, overlong
// names truncated, and idle couriers with residual speed zeroed. A record with
// only warnings remains valid.
type ValidationResult struct {
	IsValid   bool             `json:"isValid"`
	Errors    []string         `json:"errors"`
	Warnings  []string         `json:"warnings"`
	Sanitized *courier.Courier `json:"sanitizedData"`
}

// Validator checks and sanitizes fleet records against the operational region.
// It is stateless; the bounding box is configuration, not state.
type Validator struct {
	bounds kernel.BoundingBox
}

// NewValidator creates a Validator for the given operational bounding box.
func NewValidator(bounds kernel.BoundingBox) Validator {
	return Validator{bounds: bounds}
}

// ValidateCourier validates and sanitizes a single courier record.
//
// Error conditions (IsValid=false, Sanitized=nil):
//   - empty id or name
//   - NaN/infinite coordinates or coordinates outside the WGS84 sanity envelope
//   - invalid status
//   - NaN/infinite or negative speed
//
// Warning conditions (IsValid stays true, Sanitized holds the corrected copy):
//   - position outside the operational bounding box (clamped)
//   - speed above MaxPlausibleSpeedKmh (capped)
//   - name longer than 50 characters (truncated)
//   - idle courier with speed above 1 km/h (speed zeroed)
func (v Validator) ValidateCourier(c courier.Courier) ValidationResult {
	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}
	sanitized := c

	if c.ID == "" {
		result.Errors = append(result.Errors, "courier id cannot be empty")
	}

	if c.Name == "" {
		result.Errors = append(result.Errors, "courier name cannot be empty")
	} else if len([]rune(c.Name)) > maxNameLength {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("courier name truncated to %d characters", maxNameLength))
		sanitized.Name = string([]rune(c.Name)[:maxNameLength])
	}

	positionOK := true
	if !isFinite(c.Longitude) || c.Longitude < kernel.LongitudeMin || c.Longitude > kernel.LongitudeMax {
		result.Errors = append(result.Errors,
			fmt.Sprintf("longitude %v is outside the valid range (%v - %v)",
				c.Longitude, kernel.LongitudeMin, kernel.LongitudeMax))
		positionOK = false
	}
	if !isFinite(c.Latitude) || c.Latitude < kernel.LatitudeMin || c.Latitude > kernel.LatitudeMax {
		result.Errors = append(result.Errors,
			fmt.Sprintf("latitude %v is outside the valid range (%v - %v)",
				c.Latitude, kernel.LatitudeMin, kernel.LatitudeMax))
		positionOK = false
	}

	if positionOK {
		// Sanity-checked above, so construction cannot fail here.
		pos, err := kernel.NewCoordinate(c.Longitude, c.Latitude)
		if err == nil {
			clamped, wasClamped, clampErr := v.bounds.Clamp(pos)
			if clampErr == nil && wasClamped {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("position (%v, %v) is outside the operational bounds, clamped",
						c.Longitude, c.Latitude))
				sanitized.Longitude = clamped.Longitude()
				sanitized.Latitude = clamped.Latitude()
			}
		}
	}

	if err := c.Status.Validate(); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("status %d is not a valid courier status", c.Status))
	}

	switch {
	case !isFinite(c.SpeedKmh):
		result.Errors = append(result.Errors, "speed must be a finite number")
	case c.SpeedKmh < 0:
		result.Errors = append(result.Errors, "speed cannot be negative")
	case c.SpeedKmh > MaxPlausibleSpeedKmh:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("speed %v km/h exceeds the maximum plausible speed, capped at %v",
				c.SpeedKmh, MaxPlausibleSpeedKmh))
		sanitized.SpeedKmh = MaxPlausibleSpeedKmh
	}

	if c.Status == courier.Idle && isFinite(c.SpeedKmh) && c.SpeedKmh > idleSpeedToleranceKmh {
		result.Warnings = append(result.Warnings,
			"idle courier has non-zero speed, setting to 0")
		sanitized.SpeedKmh = 0
	}

	result.IsValid = len(result.Errors) == 0
	if result.IsValid {
		result.Sanitized = &sanitized
	}

	return result
}

// ValidateFleet validates every record independently, preserving input order.
// It never short-circuits: a failing record does not prevent the validation of
// the records after it.
func (v Validator) ValidateFleet(couriers []courier.Courier) []ValidationResult {
	results := make([]ValidationResult, len(couriers))
	for i, c := range couriers {
		results[i] = v.ValidateCourier(c)
	}
	return results
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
