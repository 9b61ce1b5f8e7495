package queries

import (
	"context"

	"github.com/mmcloughlin/geohash"
	"gorm.io/gorm"

	"fleetsim/internal/core/domain/model/courier"
)

// geohashPrecision is the cell size used to annotate read models. Eight
// characters is roughly a 40m cell, fine enough for city-scale clustering.
const geohashPrecision = 8

// GetFleetQueryHandler retrieves the fleet from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetFleetQueryHandler(db)
//	query := NewGetFleetQuery()
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get fleet: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d couriers\n", len(fleet))
type GetFleetQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetQueryHandler creates a handler for fleet retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetFleetQueryHandler(db *gorm.DB) GetFleetQueryHandler {
	return GetFleetQueryHandler{db: db}
}

// Handle executes the query to retrieve all couriers.
// Returns a slice of courier read models ordered by id, matching the order
// the simulation uses when it fingerprints the fleet.
func (h GetFleetQueryHandler) Handle(
	ctx context.Context,
	query GetFleetQuery,
) ([]GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fleet := make([]GetFleetQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			longitude,
			latitude,
			status,
			speed_kmh
		FROM couriers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetFleetQueryResponse
		var status int

		err = rows.Scan(
			&record.ID,
			&record.Name,
			&record.Longitude,
			&record.Latitude,
			&status,
			&record.SpeedKmh,
		)
		if err != nil {
			return nil, err
		}

		record.Status = courier.Status(status).String()
		record.Geohash = geohash.EncodeWithPrecision(record.Latitude, record.Longitude, geohashPrecision)
		fleet = append(fleet, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fleet, nil
}
