// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fleetsim/internal/pkg/guard"
)

var (
	ErrGetFleetQueryIsNotConstructed = errors.New(
		"GetFleetQuery must be created via NewGetFleetQuery constructor",
	)
)

// GetFleetQuery retrieves the full fleet for display.
// Returns every courier's identity, position, status, and speed, each
// annotated with a geohash cell for the renderer's clustering layer.
//
// Example:
//
//	query := NewGetFleetQuery()
//	handler := NewGetFleetQueryHandler(db)
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet: %w", err)
//	}
//
//	for _, c := range fleet {
//	    fmt.Printf("%s at %s (%s)\n", c.Name, c.Geohash, c.Status)
//	}
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetQuery creates a query to retrieve all couriers.
// This is a parameterless query that fetches the complete fleet.
func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFleetQueryIsNotConstructed if validation fails.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// GetFleetQueryResponse represents one courier in the fleet read model.
type GetFleetQueryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Status    string  `json:"status"`
	SpeedKmh  float64 `json:"speed"`
	Geohash   string  `json:"geohash"`
}
