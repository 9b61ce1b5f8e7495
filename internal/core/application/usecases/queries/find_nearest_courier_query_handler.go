package queries

import (
	"context"

	"github.com/mmcloughlin/geohash"
	"gorm.io/gorm"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/services"
)

// FindNearestCourierQueryHandler answers proximity lookups against the
// persisted fleet. Distance math runs in the domain engine; the handler only
// loads records and maps the result.
type FindNearestCourierQueryHandler struct {
	db *gorm.DB
}

// NewFindNearestCourierQueryHandler creates a handler for nearest-courier queries.
func NewFindNearestCourierQueryHandler(db *gorm.DB) FindNearestCourierQueryHandler {
	return FindNearestCourierQueryHandler{db: db}
}

// Handle executes the proximity query.
// Returns services.ErrEmptyFleet when no couriers are stored; callers decide
// whether that maps to 404 or an empty-state response.
func (h FindNearestCourierQueryHandler) Handle(
	ctx context.Context,
	query FindNearestCourierQuery,
) (FindNearestCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindNearestCourierQueryResponse{}, err
	}

	fleet, err := loadFleet(ctx, h.db)
	if err != nil {
		return FindNearestCourierQueryResponse{}, err
	}

	nearest, err := services.FindNearest(fleet, query.Target())
	if err != nil {
		return FindNearestCourierQueryResponse{}, err
	}

	return FindNearestCourierQueryResponse{
		Courier:        toFleetResponse(nearest.Courier),
		DistanceKm:     nearest.Distance.Km,
		DistanceMiles:  nearest.Distance.Miles,
		BearingDegrees: nearest.Distance.BearingDegrees,
	}, nil
}

// loadFleet reads the full fleet into domain records, ordered by id.
// Shared by the proximity handlers, which delegate the geo math to the engine.
func loadFleet(ctx context.Context, db *gorm.DB) ([]courier.Courier, error) {
	fleet := make([]courier.Courier, 0)

	rows, err := db.WithContext(ctx).Raw(`
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
		var record courier.Courier
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

		record.Status = courier.Status(status)
		fleet = append(fleet, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fleet, nil
}

// toFleetResponse maps a domain record onto the fleet read model.
func toFleetResponse(c courier.Courier) GetFleetQueryResponse {
	return GetFleetQueryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Longitude: c.Longitude,
		Latitude:  c.Latitude,
		Status:    c.Status.String(),
		SpeedKmh:  c.SpeedKmh,
		Geohash:   geohash.EncodeWithPrecision(c.Latitude, c.Longitude, geohashPrecision),
	}
}
