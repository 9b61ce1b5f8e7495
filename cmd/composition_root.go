package cmd

import (
	"fmt"

	"gorm.io/gorm"

	"fleetsim/internal/adapters/out/postgres"
	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/core/domain/services"
)

// CompositionRoot wires the application's dependencies: the database, the
// unit-of-work factory, and the configured simulator shared by every tick.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	simulator  services.Simulator
}

// NewCompositionRoot builds the dependency graph for the given configuration.
// The simulator is configured with the Amsterdam operating area and the
// default inner-city traffic zones.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		simulator: services.NewSimulator(
			kernel.AmsterdamOperationalBounds(),
			services.TrafficPredicateForZones(defaultTrafficZones()),
		),
	}
}

func (c *CompositionRoot) CreateAddCourierCommandHandler() commands.AddCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedFleetCommandHandler() commands.SeedFleetCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedFleetCommandHandler(f)
}

func (c *CompositionRoot) CreateSimulateTickCommandHandler() commands.SimulateTickCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSimulateTickCommandHandler(f, c.simulator)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetStatisticsQueryHandler() queries.GetFleetStatisticsQueryHandler {
	return queries.NewGetFleetStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindNearestCourierQueryHandler() queries.FindNearestCourierQueryHandler {
	return queries.NewFindNearestCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindCouriersWithinRadiusQueryHandler() queries.FindCouriersWithinRadiusQueryHandler {
	return queries.NewFindCouriersWithinRadiusQueryHandler(c.gormDB)
}

// CreateFleetValidator builds the sanitization engine for externally supplied
// records, configured with the same operational bounds as the simulator.
func (c *CompositionRoot) CreateFleetValidator() services.Validator {
	return services.NewValidator(kernel.AmsterdamOperationalBounds())
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// defaultTrafficZones describes the congested inner city. Couriers inside any
// of these polygons move at reduced speed.
func defaultTrafficZones() []services.ZoneRegion {
	return []services.ZoneRegion{
		{
			Name:  "Centrum",
			Level: 2,
			Vertices: []kernel.Coordinate{
				zoneVertex(4.8800, 52.3620),
				zoneVertex(4.9100, 52.3620),
				zoneVertex(4.9100, 52.3800),
				zoneVertex(4.8800, 52.3800),
			},
		},
		{
			Name:  "Central Station",
			Level: 3,
			Vertices: []kernel.Coordinate{
				zoneVertex(4.8950, 52.3760),
				zoneVertex(4.9060, 52.3760),
				zoneVertex(4.9060, 52.3820),
				zoneVertex(4.8950, 52.3820),
			},
		},
	}
}

// zoneVertex builds a coordinate from compile-time zone constants.
func zoneVertex(longitude, latitude float64) kernel.Coordinate {
	c, err := kernel.NewCoordinate(longitude, latitude)
	if err != nil {
		panic(fmt.Sprintf("invalid zone vertex (%f, %f): %v", longitude, latitude, err))
	}
	return c
}
