package courier

import (
	"fmt"

	"fleetsim/internal/pkg/errs"
)

// FleetSnapshot is the full set of courier records at one logical instant.
//
// The record order is caller-defined and preserved by every engine operation;
// it is part of the fingerprint domain, so two snapshots differing only in
// order may hash differently. All ids must be unique within a snapshot. Empty
// snapshots are valid; aggregate operations handle zero records without
// division by zero.
//
// Snapshots follow a copy-in/copy-out contract: the engine never mutates a
// caller's snapshot in place, which keeps a renderer safe to read the previous
// snapshot while the next tick is computed.
type FleetSnapshot struct {
	Couriers  []Courier `json:"couriers"`
	Timestamp int64     `json:"timestamp"`
}

// Clone returns a deep, independent copy of the snapshot.
func (s FleetSnapshot) Clone() FleetSnapshot {
	couriers := make([]Courier, len(s.Couriers))
	copy(couriers, s.Couriers)
	return FleetSnapshot{
		Couriers:  couriers,
		Timestamp: s.Timestamp,
	}
}

// Validate checks the snapshot invariants: every record passes its own hard
// validation and all ids are unique. Record order is not constrained.
func (s FleetSnapshot) Validate() error {
	seen := make(map[string]struct{}, len(s.Couriers))
	for i, c := range s.Couriers {
		if err := c.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("couriers[%d]", i), err)
		}
		if _, ok := seen[c.ID]; ok {
			return errs.NewValueIsInvalidErrorWithCause("couriers",
				fmt.Errorf("duplicate courier id %q", c.ID))
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
