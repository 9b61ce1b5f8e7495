package fleetrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/pkg/errs"
)

// GormFleetRepository implements FleetRepository using GORM.
type GormFleetRepository struct {
	db      *gorm.DB
	tracker recordTracker
}

// recordTracker defines the interface for tracking modified records.
type recordTracker interface {
	TrackRecord(id string, record any)
}

// NewGormFleetRepository creates a new GORM fleet repository.
func NewGormFleetRepository(db *gorm.DB, tracker recordTracker) *GormFleetRepository {
	return &GormFleetRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier record to the database.
func (r *GormFleetRepository) Add(ctx context.Context, record courier.Courier) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackRecord(record.ID, record)
	return nil
}

// Update saves an existing courier record to the database.
func (r *GormFleetRepository) Update(ctx context.Context, record courier.Courier) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackRecord(record.ID, record)
	return nil
}

// Get retrieves a courier record by id.
func (r *GormFleetRepository) Get(ctx context.Context, id string) (courier.Courier, error) {
	if id == "" {
		return courier.Courier{}, errs.NewValueIsRequiredError("id")
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courier.Courier{}, errs.NewObjectNotFoundError("courier", id)
		}
		return courier.Courier{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves the complete fleet ordered by id. The ordering is part of
// the contract: fingerprint hashes fold records in order, so loads must be
// reproducible.
func (r *GormFleetRepository) GetAll(ctx context.Context) ([]courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	fleet := make([]courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, record)
	}

	return fleet, nil
}

// SaveAll upserts the given records in one statement. Existing ids are
// overwritten with the new state, new ids are inserted. An empty slice is a
// no-op rather than an error, matching a tick over an empty fleet.
func (r *GormFleetRepository) SaveAll(ctx context.Context, couriers []courier.Courier) error {
	if len(couriers) == 0 {
		return nil
	}

	dtos := make([]CourierDTO, len(couriers))
	for i, record := range couriers {
		if err := record.Validate(); err != nil {
			return err
		}
		dtos[i] = fromDomain(record)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dtos).Error
	if err != nil {
		return err
	}

	for _, record := range couriers {
		r.tracker.TrackRecord(record.ID, record)
	}
	return nil
}
