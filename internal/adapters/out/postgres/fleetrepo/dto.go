// Package fleetrepo provides data transfer objects and mapping functions for
// fleet persistence. It implements the repository pattern for courier records,
// handling the conversion between domain records and database rows.
package fleetrepo

import (
	"fleetsim/internal/core/domain/model/courier"
)

// CourierDTO represents the database structure for persisting courier records.
// One row per courier; the whole table is the fleet snapshot.
type CourierDTO struct {
	ID        string  `gorm:"type:varchar(64);primaryKey"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
	Latitude  float64 `gorm:"type:double precision;not null"`
	Status    int     `gorm:"type:smallint;not null"`
	SpeedKmh  float64 `gorm:"column:speed_kmh;type:double precision;not null"`
}

// TableName specifies the database table name for courier records.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain record to its database representation.
func fromDomain(c courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        c.ID,
		Name:      c.Name,
		Longitude: c.Longitude,
		Latitude:  c.Latitude,
		Status:    int(c.Status),
		SpeedKmh:  c.SpeedKmh,
	}
}

// toDomain converts a database row back to a courier domain record and
// revalidates it, so corrupt rows surface as typed errors instead of flowing
// into the simulation.
func toDomain(dto CourierDTO) (courier.Courier, error) {
	record := courier.Courier{
		ID:        dto.ID,
		Name:      dto.Name,
		Longitude: dto.Longitude,
		Latitude:  dto.Latitude,
		Status:    courier.Status(dto.Status),
		SpeedKmh:  dto.SpeedKmh,
	}

	if err := record.Validate(); err != nil {
		return courier.Courier{}, err
	}

	return record, nil
}
