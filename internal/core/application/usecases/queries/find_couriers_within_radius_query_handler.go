package queries

import (
	"context"

	"gorm.io/gorm"

	"fleetsim/internal/core/domain/services"
)

// FindCouriersWithinRadiusQueryHandler answers radius lookups against the
// persisted fleet.
type FindCouriersWithinRadiusQueryHandler struct {
	db *gorm.DB
}

// NewFindCouriersWithinRadiusQueryHandler creates a handler for radius queries.
func NewFindCouriersWithinRadiusQueryHandler(db *gorm.DB) FindCouriersWithinRadiusQueryHandler {
	return FindCouriersWithinRadiusQueryHandler{db: db}
}

// Handle executes the radius query.
// Returns couriers ordered by distance ascending with id as the tiebreak.
// An empty fleet or no couriers in range both yield an empty slice.
func (h FindCouriersWithinRadiusQueryHandler) Handle(
	ctx context.Context,
	query FindCouriersWithinRadiusQuery,
) ([]FindNearestCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fleet, err := loadFleet(ctx, h.db)
	if err != nil {
		return nil, err
	}

	matches, err := services.FindWithinRadius(fleet, query.Center(), query.RadiusKm())
	if err != nil {
		return nil, err
	}

	responses := make([]FindNearestCourierQueryResponse, len(matches))
	for i, match := range matches {
		responses[i] = FindNearestCourierQueryResponse{
			Courier:        toFleetResponse(match.Courier),
			DistanceKm:     match.Distance.Km,
			DistanceMiles:  match.Distance.Miles,
			BearingDegrees: match.Distance.BearingDegrees,
		}
	}

	return responses, nil
}
