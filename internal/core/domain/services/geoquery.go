package services

import (
	"sort"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/pkg/errs"
)

// ErrEmptyFleet is returned by FindNearest when there are no records to search.
// An explicit error rather than a nil result, so callers cannot mistake an
// empty fleet for a found courier.
var ErrEmptyFleet = errs.NewValueIsRequiredError("couriers")

// NearestResult pairs a courier with its distance and bearing from the query
// target.
type NearestResult struct {
	Courier  courier.Courier       `json:"courier"`
	Distance kernel.DistanceResult `json:"distance"`
}

// FindNearest returns the courier closest to the target by great-circle
// distance. Linear scan; on an exact distance tie the lower id wins, so the
// result is stable across reorderings of the input.
func FindNearest(couriers []courier.Courier, target kernel.Coordinate) (NearestResult, error) {
	if len(couriers) == 0 {
		return NearestResult{}, ErrEmptyFleet
	}

	var best NearestResult
	found := false

	for _, c := range couriers {
		pos, err := c.Position()
		if err != nil {
			return NearestResult{}, err
		}

		dist, err := target.DistanceTo(pos)
		if err != nil {
			return NearestResult{}, err
		}

		if !found ||
			dist.Km < best.Distance.Km ||
			(dist.Km == best.Distance.Km && c.ID < best.Courier.ID) {
			best = NearestResult{Courier: c, Distance: dist}
			found = true
		}
	}

	return best, nil
}

// FindWithinRadius returns every courier within radiusKm of the center,
// ordered by distance ascending with id ascending as the tiebreak. An empty
// fleet or an empty match set both yield an empty slice, not an error.
func FindWithinRadius(couriers []courier.Courier, center kernel.Coordinate, radiusKm float64) ([]NearestResult, error) {
	if radiusKm < 0 {
		return nil, errs.NewValueIsInvalidError("radiusKm cannot be negative")
	}

	results := make([]NearestResult, 0)
	for _, c := range couriers {
		pos, err := c.Position()
		if err != nil {
			return nil, err
		}

		dist, err := center.DistanceTo(pos)
		if err != nil {
			return nil, err
		}

		if dist.Km <= radiusKm {
			results = append(results, NearestResult{Courier: c, Distance: dist})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance.Km != results[j].Distance.Km {
			return results[i].Distance.Km < results[j].Distance.Km
		}
		return results[i].Courier.ID < results[j].Courier.ID
	})

	return results, nil
}
