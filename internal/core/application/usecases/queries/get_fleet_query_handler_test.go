package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"fleetsim/internal/adapters/out/postgres/fleetrepo"
	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/core/domain/model/courier"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetFleetQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetFleetQueryHandler
}

func (suite *GetFleetQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&fleetrepo.CourierDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetFleetQueryHandler(db)
}

func (suite *GetFleetQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetFleetQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE couriers").Error
	suite.Require().NoError(err)
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetFleetQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_WithCouriers_ReturnsFleetOrderedByID() {
	seedFleet(suite.Require(), suite.db, []courier.Courier{
		{ID: "bike-3", Name: "Vondelpark Courier", Longitude: 4.8686, Latitude: 52.3579, Status: courier.Idle, SpeedKmh: 0},
		{ID: "bike-1", Name: "Dam Square Courier", Longitude: 4.8932, Latitude: 52.3731, Status: courier.Delivering, SpeedKmh: 22.5},
		{ID: "bike-2", Name: "Jordaan Courier", Longitude: 4.8797, Latitude: 52.3747, Status: courier.Returning, SpeedKmh: 15},
	})

	query := queries.NewGetFleetQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("bike-1", result[0].ID)
	suite.Equal("Dam Square Courier", result[0].Name)
	suite.Equal("delivering", result[0].Status)
	suite.InDelta(22.5, result[0].SpeedKmh, 0)
	suite.InDelta(4.8932, result[0].Longitude, 0)
	suite.InDelta(52.3731, result[0].Latitude, 0)

	suite.Equal("bike-2", result[1].ID)
	suite.Equal("returning", result[1].Status)

	suite.Equal("bike-3", result[2].ID)
	suite.Equal("idle", result[2].Status)
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_AnnotatesGeohash() {
	seedFleet(suite.Require(), suite.db, []courier.Courier{
		{ID: "bike-1", Name: "Dam Square Courier", Longitude: 4.8932, Latitude: 52.3731, Status: courier.Idle, SpeedKmh: 0},
	})

	query := queries.NewGetFleetQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	// Eight-character cell somewhere in the Amsterdam u17 region.
	suite.Len(result[0].Geohash, 8)
	suite.True(strings.HasPrefix(result[0].Geohash, "u17"),
		"geohash %s should be in the Amsterdam region", result[0].Geohash)
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetFleetQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetFleetQuery constructor")
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	seedFleet(suite.Require(), suite.db, []courier.Courier{
		{ID: "bike-1", Name: "Dam Square Courier", Longitude: 4.8932, Latitude: 52.3731, Status: courier.Idle, SpeedKmh: 0},
	})

	query := queries.NewGetFleetQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetFleetQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetFleetQueryHandlerTestSuite))
}

// noopRecordTracker implements the repository's tracker for test seeding.
type noopRecordTracker struct{}

func (t *noopRecordTracker) TrackRecord(_ string, _ any) {}

// seedFleet writes the given records through the repository so query tests
// read the same rows the write side produces.
func seedFleet(require *require.Assertions, db *gorm.DB, fleet []courier.Courier) {
	repo := fleetrepo.NewGormFleetRepository(db, &noopRecordTracker{})
	require.NoError(repo.SaveAll(context.Background(), fleet))
}
