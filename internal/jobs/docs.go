// Package jobs provides scheduled background tasks for the fleet simulation.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the simulation service.
//
// # Available Jobs
//
// 1. SimulationTickJob - Advances the fleet simulation one step per schedule firing
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(simulateTickHandler, "* * * * * *", 0.1, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tick job's schedule is configured with a six-field cron expression with
// seconds resolution, e.g. "* * * * * *" for one tick per second.
//
// # Error Handling
//
// A failed tick is logged and skipped; the next firing runs against the last
// successfully persisted fleet state, so one bad tick never wedges the schedule.
package jobs
