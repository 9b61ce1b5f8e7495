package queries

import (
	"context"

	"github.com/mmcloughlin/geohash"
	"gorm.io/gorm"

	"fleetsim/internal/core/domain/model/courier"
)

// GetFleetStatisticsQueryHandler aggregates the fleet summary in SQL.
//
// Example:
//
//	handler := NewGetFleetStatisticsQueryHandler(db)
//	stats, err := handler.Handle(ctx, NewGetFleetStatisticsQuery())
type GetFleetStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetStatisticsQueryHandler creates a handler for fleet summary queries.
// Requires a GORM database connection for query execution.
func NewGetFleetStatisticsQueryHandler(db *gorm.DB) GetFleetStatisticsQueryHandler {
	return GetFleetStatisticsQueryHandler{db: db}
}

// Handle executes the aggregate query.
// COALESCE keeps every aggregate at zero for an empty fleet instead of NULL.
func (h GetFleetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetFleetStatisticsQuery,
) (GetFleetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetStatisticsQueryResponse{}, err
	}

	var row struct {
		TotalCount        int
		DeliveringCount   int
		ReturningCount    int
		IdleCount         int
		AvgSpeed          float64
		MaxSpeed          float64
		MinSpeed          float64
		CentroidLongitude float64
		CentroidLatitude  float64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                            AS total_count,
			COUNT(*) FILTER (WHERE status = ?)                  AS delivering_count,
			COUNT(*) FILTER (WHERE status = ?)                  AS returning_count,
			COUNT(*) FILTER (WHERE status = ?)                  AS idle_count,
			COALESCE(AVG(speed_kmh), 0)                         AS avg_speed,
			COALESCE(MAX(speed_kmh), 0)                         AS max_speed,
			COALESCE(MIN(speed_kmh), 0)                         AS min_speed,
			COALESCE(AVG(longitude), 0)                         AS centroid_longitude,
			COALESCE(AVG(latitude), 0)                          AS centroid_latitude
		FROM couriers
	`, int(courier.Delivering), int(courier.Returning), int(courier.Idle)).
		Scan(&row).Error
	if err != nil {
		return GetFleetStatisticsQueryResponse{}, err
	}

	response := GetFleetStatisticsQueryResponse{
		TotalCount: row.TotalCount,
		CountsByStatus: map[string]int{
			courier.Delivering.String(): row.DeliveringCount,
			courier.Returning.String():  row.ReturningCount,
			courier.Idle.String():       row.IdleCount,
		},
		AvgSpeed:          row.AvgSpeed,
		MaxSpeed:          row.MaxSpeed,
		MinSpeed:          row.MinSpeed,
		CentroidLongitude: row.CentroidLongitude,
		CentroidLatitude:  row.CentroidLatitude,
	}

	if row.TotalCount > 0 {
		active := row.DeliveringCount + row.ReturningCount
		response.ActivePercentage = float64(active) / float64(row.TotalCount) * 100
		response.CentroidGeohash = geohash.EncodeWithPrecision(
			row.CentroidLatitude, row.CentroidLongitude, geohashPrecision)
	}

	return response, nil
}
