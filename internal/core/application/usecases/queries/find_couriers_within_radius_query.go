package queries

import (
	"errors"

	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/pkg/guard"
)

var (
	ErrFindCouriersWithinRadiusQueryIsNotConstructed = errors.New(
		"FindCouriersWithinRadiusQuery must be created via NewFindCouriersWithinRadiusQuery constructor",
	)
	ErrRadiusIsInvalid = errors.New("radius must be greater than 0")
)

// FindCouriersWithinRadiusQuery lists every courier within a great-circle
// radius of a center point, ordered by distance ascending.
//
// Example:
//
//	query, err := NewFindCouriersWithinRadiusQuery(4.8922, 52.3731, 1.5)
//	if err != nil {
//	    return err
//	}
//	handler := NewFindCouriersWithinRadiusQueryHandler(db)
//	nearby, err := handler.Handle(ctx, query)
type FindCouriersWithinRadiusQuery struct { //nolint:recvcheck //using for validation
	center   kernel.Coordinate
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewFindCouriersWithinRadiusQuery creates a query for the given center and
// radius in kilometers. The radius must be positive.
func NewFindCouriersWithinRadiusQuery(
	longitude, latitude, radiusKm float64,
) (FindCouriersWithinRadiusQuery, error) {
	center, err := kernel.NewCoordinate(longitude, latitude)
	if err != nil {
		return FindCouriersWithinRadiusQuery{}, err
	}

	if !(radiusKm > 0) {
		return FindCouriersWithinRadiusQuery{}, ErrRadiusIsInvalid
	}

	return FindCouriersWithinRadiusQuery{
		center:   center,
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindCouriersWithinRadiusQueryIsNotConstructed if validation fails.
func (q FindCouriersWithinRadiusQuery) Validate() error {
	return q.guard.Validate(ErrFindCouriersWithinRadiusQueryIsNotConstructed)
}

// Center returns the query center point.
func (q FindCouriersWithinRadiusQuery) Center() kernel.Coordinate {
	return q.center
}

// RadiusKm returns the query radius in kilometers.
func (q FindCouriersWithinRadiusQuery) RadiusKm() float64 {
	return q.radiusKm
}
