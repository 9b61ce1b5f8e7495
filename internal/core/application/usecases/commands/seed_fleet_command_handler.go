package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fleetsim/internal/core/domain/model/courier"
)

// seedLocation is a well-known Amsterdam spot used to place seeded couriers.
type seedLocation struct {
	name      string
	longitude float64
	latitude  float64
}

// Seed couriers cycle through these landmarks; all of them sit inside the
// operational bounding box so a fresh fleet never starts out of bounds.
var seedLocations = []seedLocation{
	{"Central Station", 4.9003, 52.3791},
	{"Dam Square", 4.8932, 52.3731},
	{"Vondelpark", 4.8686, 52.3579},
	{"Rijksmuseum", 4.8852, 52.3600},
	{"Anne Frank House", 4.8840, 52.3752},
	{"Jordaan", 4.8797, 52.3747},
	{"De Pijp", 4.8936, 52.3533},
	{"Oost", 4.9366, 52.3614},
	{"Noord", 4.9228, 52.3907},
	{"Amstel", 4.9039, 52.3632},
}

// SeedFleetCommandHandler creates an initial fleet of idle couriers at
// Amsterdam landmarks.
type SeedFleetCommandHandler struct {
	uowFactory UoWFactory
}

// NewSeedFleetCommandHandler creates a handler for fleet seeding.
func NewSeedFleetCommandHandler(uowFactory UoWFactory) SeedFleetCommandHandler {
	return SeedFleetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seed command.
// Generates count couriers with fresh ids, cycling through the landmark
// list for names and positions, and upserts them in a single transaction.
// All seeded couriers start idle with zero speed.
func (h SeedFleetCommandHandler) Handle(ctx context.Context, cmd SeedFleetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	couriers := make([]courier.Courier, cmd.Count())
	for i := range couriers {
		location := seedLocations[i%len(seedLocations)]

		name := fmt.Sprintf("%s Courier", location.name)
		if i >= len(seedLocations) {
			name = fmt.Sprintf("%s Courier %d", location.name, i/len(seedLocations)+1)
		}

		couriers[i] = courier.Courier{
			ID:        uuid.NewString(),
			Name:      name,
			Longitude: location.longitude,
			Latitude:  location.latitude,
			Status:    courier.Idle,
			SpeedKmh:  0,
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.FleetRepository().SaveAll(ctx, couriers); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
