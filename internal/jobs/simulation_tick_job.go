package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fleetsim/internal/core/application/usecases/commands"
)

// SimulationTickJob advances the fleet simulation on a fixed schedule.
// Each run stamps the tick with the current wall clock in milliseconds, so
// replaying a recorded timestamp through the command produces the same fleet.
type SimulationTickJob struct {
	handler               commands.SimulateTickCommandHandler
	transitionProbability float64
	cronSpec              string
	cron                  *cron.Cron
	logger                *slog.Logger
}

// NewSimulationTickJob creates a job that runs one simulation tick per schedule
// firing. The cron spec uses the six-field seconds-resolution format and the
// transition probability is passed through to every tick.
func NewSimulationTickJob(
	handler commands.SimulateTickCommandHandler,
	cronSpec string,
	transitionProbability float64,
	logger *slog.Logger,
) *SimulationTickJob {
	return &SimulationTickJob{
		handler:               handler,
		transitionProbability: transitionProbability,
		cronSpec:              cronSpec,
		cron:                  cron.New(cron.WithSeconds()),
		logger:                logger.With("component", "simulation_tick_job"),
	}
}

// Start begins the simulation tick job on its configured schedule.
func (j *SimulationTickJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		cmd, err := commands.NewSimulateTickCommand(time.Now().UnixMilli(), j.transitionProbability)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build tick command", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Simulation tick failed", "error", err)
			return
		}

		j.logger.DebugContext(ctx, "Simulation tick completed",
			"couriers", result.Statistics.TotalCount,
			"transitions", result.StatusTransitions,
			"boundsCorrections", result.BoundsCorrections,
			"stateHash", result.StateHash,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Simulation tick job started",
		"schedule", j.cronSpec, "transitionProbability", j.transitionProbability)
	return nil
}

// Stop stops the simulation tick job.
func (j *SimulationTickJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Simulation tick job stopped")
}
