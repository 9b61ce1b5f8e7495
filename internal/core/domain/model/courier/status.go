package courier

import (
	"fmt"
	"strings"

	"fleetsim/internal/pkg/errs"
)

// Status represents the activity state of a courier.
// It is a closed enum so the Markov transition table over statuses is
// exhaustive and compiler-checked, instead of the stringly-typed statuses the
// rendering layer exchanges.
//
// The numeric values of the valid statuses (Delivering=1, Returning=2, Idle=3)
// are folded into the state fingerprint and are therefore part of the wire
// contract with the renderer's change detection. Do not reorder.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Delivering indicates the courier is actively carrying a delivery.
	Delivering

	// Returning indicates the courier is heading back to base.
	Returning

	// Idle indicates the courier is stationary and awaiting work.
	Idle
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Delivering: "delivering",
		Returning:  "returning",
		Idle:       "idle",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Delivering: "delivering",
		Returning:  "returning",
		Idle:       "idle",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Delivering, Returning, Idle.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status ("delivering",
// "returning", "idle"), matching the representation the rendering layer
// exchanges. Returns "unknown" for invalid values.
//
// This method implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the courier is on the move (delivering or returning).
// Active couriers count towards the fleet's active percentage.
func (s Status) IsActive() bool {
	return s == Delivering || s == Returning
}

// ParseStatus converts a wire status string into a Status value.
// Matching is case-insensitive. Returns an error for unrecognized strings.
//
// Example:
//
//	status, err := courier.ParseStatus("Delivering")
//	// status == courier.Delivering
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler accepting wire names.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
