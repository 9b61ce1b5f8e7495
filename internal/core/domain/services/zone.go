package services

import "fleetsim/internal/core/domain/model/kernel"

// TrafficPredicate reports whether a position lies inside an active traffic
// zone. It is a pure input to the speed model: the engine does not own zone
// data, the caller supplies the predicate (or builds one from ZoneRegions).
type TrafficPredicate func(kernel.Coordinate) bool

// NoTraffic is the predicate for a city without congestion.
func NoTraffic(kernel.Coordinate) bool { return false }

// ZoneRegion is a named polygon with a severity level, used to build traffic
// predicates. Zone data is caller-owned; the engine only evaluates membership.
type ZoneRegion struct {
	Name     string              `json:"name"`
	Level    int                 `json:"level"`
	Vertices []kernel.Coordinate `json:"vertices"`
}

// Contains reports whether the coordinate lies inside the polygon, using the
// ray-casting (even-odd) rule. Polygons with fewer than three vertices contain
// nothing. Points exactly on an edge may land on either side; zone boundaries
// are not precise enough for that to matter.
func (z ZoneRegion) Contains(c kernel.Coordinate) bool {
	if len(z.Vertices) < 3 {
		return false
	}

	x, y := c.Longitude(), c.Latitude()
	inside := false

	j := len(z.Vertices) - 1
	for i := 0; i < len(z.Vertices); i++ {
		xi, yi := z.Vertices[i].Longitude(), z.Vertices[i].Latitude()
		xj, yj := z.Vertices[j].Longitude(), z.Vertices[j].Latitude()

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside
}

// TrafficPredicateForZones builds a predicate reporting membership in any of
// the given zones. An empty zone list yields NoTraffic.
func TrafficPredicateForZones(zones []ZoneRegion) TrafficPredicate {
	if len(zones) == 0 {
		return NoTraffic
	}

	return func(c kernel.Coordinate) bool {
		for _, zone := range zones {
			if zone.Contains(c) {
				return true
			}
		}
		return false
	}
}
