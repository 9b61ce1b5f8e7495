package queries

import (
	"errors"

	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/pkg/guard"
)

var (
	ErrFindNearestCourierQueryIsNotConstructed = errors.New(
		"FindNearestCourierQuery must be created via NewFindNearestCourierQuery constructor",
	)
)

// FindNearestCourierQuery finds the courier closest to a target point by
// great-circle distance.
//
// Example:
//
//	query, err := NewFindNearestCourierQuery(4.8922, 52.3731)
//	if err != nil {
//	    return err
//	}
//	handler := NewFindNearestCourierQueryHandler(db)
//	nearest, err := handler.Handle(ctx, query)
type FindNearestCourierQuery struct { //nolint:recvcheck //using for validation
	target kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewFindNearestCourierQuery creates a query for the given target point.
// Validates the coordinates through the kernel's sanity checks.
func NewFindNearestCourierQuery(longitude, latitude float64) (FindNearestCourierQuery, error) {
	target, err := kernel.NewCoordinate(longitude, latitude)
	if err != nil {
		return FindNearestCourierQuery{}, err
	}

	return FindNearestCourierQuery{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindNearestCourierQueryIsNotConstructed if validation fails.
func (q FindNearestCourierQuery) Validate() error {
	return q.guard.Validate(ErrFindNearestCourierQueryIsNotConstructed)
}

// Target returns the query point.
func (q FindNearestCourierQuery) Target() kernel.Coordinate {
	return q.target
}

// FindNearestCourierQueryResponse pairs the nearest courier with its distance
// and bearing from the query point.
type FindNearestCourierQueryResponse struct {
	Courier        GetFleetQueryResponse `json:"courier"`
	DistanceKm     float64               `json:"distanceKm"`
	DistanceMiles  float64               `json:"distanceMiles"`
	BearingDegrees float64               `json:"bearingDegrees"`
}
