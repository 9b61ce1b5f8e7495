// Package ports defines repository interfaces for the fleet domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fleetsim/internal/core/domain/model/courier"
)

// FleetRepository defines the persistence contract for courier records.
// The simulation treats the fleet as one unit: a tick loads every record,
// advances it, and writes every record back.
type FleetRepository interface {
	// Add persists a new courier record to storage.
	// The record must be valid and not already exist in the repository.
	Add(ctx context.Context, courier courier.Courier) error

	// Update persists changes to an existing courier record.
	// The record must exist in the repository and be valid.
	Update(ctx context.Context, courier courier.Courier) error

	// Get retrieves a courier record by its unique identifier.
	Get(ctx context.Context, id string) (courier.Courier, error)

	// GetAll retrieves the complete fleet ordered by courier id. The stable
	// ordering matters: fingerprint hashes fold records in order, so two
	// loads of the same fleet must produce the same slice.
	GetAll(ctx context.Context) ([]courier.Courier, error)

	// SaveAll upserts the full set of records in one operation. Existing ids
	// are overwritten with the new state; new ids are inserted.
	SaveAll(ctx context.Context, couriers []courier.Courier) error
}
