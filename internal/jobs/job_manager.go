package jobs

import (
	"fmt"
	"log/slog"

	"fleetsim/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	simulationTickJob *SimulationTickJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	simulateTickHandler commands.SimulateTickCommandHandler,
	tickCronSpec string,
	tickTransitionProbability float64,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		simulationTickJob: NewSimulationTickJob(
			simulateTickHandler, tickCronSpec, tickTransitionProbability, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.simulationTickJob.Start(); err != nil {
		return fmt.Errorf("failed to start simulation tick job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.simulationTickJob.Stop()
}
