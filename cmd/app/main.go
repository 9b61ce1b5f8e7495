package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleetsim/cmd"
	fleethttp "fleetsim/internal/adapters/in/http"
	"fleetsim/internal/adapters/out/postgres/fleetrepo"
	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := connectDB(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	if err := seedInitialFleet(&app, configs, logger); err != nil {
		log.Fatalf("Failed to seed initial fleet: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateSimulateTickCommandHandler(),
		configs.TickCronSpec,
		configs.TickTransitionProbability,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:                  envOrDefault("HTTP_PORT", "8080"),
		DBHost:                    envOrDefault("DB_HOST", "localhost"),
		DBPort:                    envOrDefault("DB_PORT", "5432"),
		DBUser:                    envOrDefault("DB_USER", "postgres"),
		DBPassword:                envOrDefault("DB_PASSWORD", "postgres"),
		DBName:                    envOrDefault("DB_NAME", "fleetsim"),
		DBSslMode:                 envOrDefault("DB_SSLMODE", "disable"),
		TickCronSpec:              envOrDefault("TICK_CRON_SPEC", "* * * * * *"),
		TickTransitionProbability: envFloat("TICK_TRANSITION_PROBABILITY", 0.1),
		FleetSeedSize:             envInt("FLEET_SEED_SIZE", 20),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Invalid float environment variable, using default", "key", key, "value", raw)
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Invalid integer environment variable, using default", "key", key, "value", raw)
		return fallback
	}
	return value
}

func connectDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&fleetrepo.CourierDTO{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

// seedInitialFleet populates an empty fleet table so a fresh deployment has
// couriers to simulate. A non-empty fleet is left untouched.
func seedInitialFleet(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	if configs.FleetSeedSize <= 0 {
		return nil
	}

	ctx := context.Background()

	fleet, err := app.CreateGetFleetQueryHandler().Handle(ctx, queries.NewGetFleetQuery())
	if err != nil {
		return err
	}
	if len(fleet) > 0 {
		return nil
	}

	seedCmd, err := commands.NewSeedFleetCommand(configs.FleetSeedSize)
	if err != nil {
		return err
	}

	if err := app.CreateSeedFleetCommandHandler().Handle(ctx, seedCmd); err != nil {
		return err
	}

	logger.Info("Seeded initial fleet", "count", configs.FleetSeedSize)
	return nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := fleethttp.NewServer(
		app.CreateAddCourierCommandHandler(),
		app.CreateSeedFleetCommandHandler(),
		app.CreateSimulateTickCommandHandler(),
		app.CreateGetFleetQueryHandler(),
		app.CreateGetFleetStatisticsQueryHandler(),
		app.CreateFindNearestCourierQueryHandler(),
		app.CreateFindCouriersWithinRadiusQueryHandler(),
		app.CreateFleetValidator(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
