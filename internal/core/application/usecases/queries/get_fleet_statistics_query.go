package queries

import (
	"errors"

	"fleetsim/internal/pkg/guard"
)

var (
	ErrGetFleetStatisticsQueryIsNotConstructed = errors.New(
		"GetFleetStatisticsQuery must be created via NewGetFleetStatisticsQuery constructor",
	)
)

// GetFleetStatisticsQuery retrieves the fleet-wide summary straight from the
// database: status counts, speed aggregates, and the fleet centroid. The
// aggregation runs in SQL so the read path never loads the whole fleet into
// memory.
//
// Example:
//
//	query := NewGetFleetStatisticsQuery()
//	handler := NewGetFleetStatisticsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet statistics: %w", err)
//	}
//	fmt.Printf("%d couriers, %.0f%% active\n", stats.TotalCount, stats.ActivePercentage)
type GetFleetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetStatisticsQuery creates a query for the fleet summary.
func NewGetFleetStatisticsQuery() GetFleetStatisticsQuery {
	return GetFleetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFleetStatisticsQueryIsNotConstructed if validation fails.
func (q GetFleetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetStatisticsQueryIsNotConstructed)
}

// GetFleetStatisticsQueryResponse is the fleet summary read model.
// An empty fleet yields all-zero values and an empty centroid geohash.
type GetFleetStatisticsQueryResponse struct {
	TotalCount        int            `json:"totalCount"`
	CountsByStatus    map[string]int `json:"countsByStatus"`
	AvgSpeed          float64        `json:"avgSpeed"`
	MaxSpeed          float64        `json:"maxSpeed"`
	MinSpeed          float64        `json:"minSpeed"`
	ActivePercentage  float64        `json:"activePercentage"`
	CentroidLongitude float64        `json:"centroidLongitude"`
	CentroidLatitude  float64        `json:"centroidLatitude"`
	CentroidGeohash   string         `json:"centroidGeohash"`
}
