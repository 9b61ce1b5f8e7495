package cmd

// Config carries all runtime settings for the fleet simulation service.
// Values are read from the environment by the application entrypoint.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// TickCronSpec is the six-field cron schedule of the background
	// simulation tick, e.g. "* * * * * *" for one tick per second.
	TickCronSpec string
	// TickTransitionProbability is the per-courier chance of a status
	// change on each scheduled tick, in [0, 1].
	TickTransitionProbability float64
	// FleetSeedSize is the number of couriers to seed at startup when the
	// fleet table is empty. Zero disables startup seeding.
	FleetSeedSize int
}
