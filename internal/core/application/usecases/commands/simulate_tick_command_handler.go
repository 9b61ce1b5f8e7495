package commands

import (
	"context"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/services"
)

// SimulateTickCommandHandler runs one simulation step over the persisted
// fleet: loads every record, advances it through the simulator, and writes
// the new state back within a single transaction.
//
// Example:
//
//	handler := NewSimulateTickCommandHandler(uowFactory, simulator)
//	cmd, _ := NewSimulateTickCommand(time.Now().UnixMilli(), 0.1)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("simulation tick failed: %w", err)
//	}
//	fmt.Printf("tick moved %d couriers, hash %08x\n",
//	    result.Statistics.TotalCount, result.StateHash)
type SimulateTickCommandHandler struct {
	uowFactory UoWFactory
	simulator  services.Simulator
}

// NewSimulateTickCommandHandler creates a handler for simulation ticks.
// Requires a UoWFactory for fleet persistence and a configured Simulator.
func NewSimulateTickCommandHandler(
	uowFactory UoWFactory,
	simulator services.Simulator,
) SimulateTickCommandHandler {
	return SimulateTickCommandHandler{
		uowFactory: uowFactory,
		simulator:  simulator,
	}
}

// Handle processes the tick command.
// Loads the fleet ordered by id, runs the simulator, and upserts every
// record's new state. The full TickResult is returned so callers can surface
// the derived metrics without a second read.
func (h SimulateTickCommandHandler) Handle(
	ctx context.Context,
	cmd SimulateTickCommand,
) (services.TickResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.TickResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TickResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.FleetRepository()

	couriers, err := repo.GetAll(ctx)
	if err != nil {
		return services.TickResult{}, err
	}

	snapshot := courier.FleetSnapshot{Couriers: couriers}
	result, err := h.simulator.Tick(snapshot, cmd.Timestamp(), cmd.TransitionProbability())
	if err != nil {
		return services.TickResult{}, err
	}

	if err = repo.SaveAll(ctx, result.Snapshot.Couriers); err != nil {
		return services.TickResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TickResult{}, err
	}

	return result, nil
}
