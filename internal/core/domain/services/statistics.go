package services

import "fleetsim/internal/core/domain/model/courier"

// Centroid is the arithmetic mean position of the fleet. A simple mean of
// longitudes and latitudes, not a geodesic midpoint; at city scale the
// difference is negligible.
type Centroid struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// FleetStatistics is the fleet-wide summary of one snapshot. CountsByStatus is
// keyed by the status wire name (delivering, returning, idle); every valid
// status appears in the map even when its count is zero. Records carrying a
// status outside the enum are grouped under "unknown" and never count as
// active.
type FleetStatistics struct {
	TotalCount       int            `json:"totalCount"`
	CountsByStatus   map[string]int `json:"countsByStatus"`
	AvgSpeed         float64        `json:"avgSpeed"`
	MaxSpeed         float64        `json:"maxSpeed"`
	MinSpeed         float64        `json:"minSpeed"`
	ActivePercentage float64        `json:"activePercentage"`
	Centroid         Centroid       `json:"centroid"`
}

// Summarize aggregates counts, speed extremes, and the centroid over the given
// records. An empty fleet yields all-zero statistics; no field is NaN or
// infinite. Records are grouped by Status.String(), so anything outside the
// enum lands in the "unknown" bucket rather than disappearing from the totals.
func Summarize(couriers []courier.Courier) FleetStatistics {
	stats := FleetStatistics{
		TotalCount: len(couriers),
		CountsByStatus: map[string]int{
			courier.Delivering.String(): 0,
			courier.Returning.String():  0,
			courier.Idle.String():       0,
		},
	}

	if len(couriers) == 0 {
		return stats
	}

	var speedSum, lonSum, latSum float64
	stats.MinSpeed = couriers[0].SpeedKmh
	stats.MaxSpeed = couriers[0].SpeedKmh

	for _, c := range couriers {
		stats.CountsByStatus[c.Status.String()]++

		speedSum += c.SpeedKmh
		if c.SpeedKmh < stats.MinSpeed {
			stats.MinSpeed = c.SpeedKmh
		}
		if c.SpeedKmh > stats.MaxSpeed {
			stats.MaxSpeed = c.SpeedKmh
		}

		lonSum += c.Longitude
		latSum += c.Latitude
	}

	n := float64(len(couriers))
	active := stats.CountsByStatus[courier.Delivering.String()] +
		stats.CountsByStatus[courier.Returning.String()]

	stats.AvgSpeed = speedSum / n
	stats.ActivePercentage = float64(active) / n * 100
	stats.Centroid = Centroid{Longitude: lonSum / n, Latitude: latSum / n}

	return stats
}
