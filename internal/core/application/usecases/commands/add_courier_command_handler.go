package commands

import (
	"context"

	"fleetsim/internal/core/domain/model/courier"
)

// AddCourierCommandHandler persists a single new courier record.
//
// Example:
//
//	handler := NewAddCourierCommandHandler(uowFactory)
//	cmd, _ := NewAddCourierCommand("Jordaan Courier", 4.8797, 52.3747, courier.Idle)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add courier: %w", err)
//	}
type AddCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddCourierCommandHandler creates a handler for courier registration.
func NewAddCourierCommandHandler(uowFactory UoWFactory) AddCourierCommandHandler {
	return AddCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add courier command.
// Builds the courier record from the command data and persists it within a
// transaction. New couriers always start with zero speed; the next tick
// assigns one matching their status.
func (h AddCourierCommandHandler) Handle(ctx context.Context, cmd AddCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record := courier.Courier{
		ID:        cmd.CourierID(),
		Name:      cmd.Name(),
		Longitude: cmd.Position().Longitude(),
		Latitude:  cmd.Position().Latitude(),
		Status:    cmd.Status(),
		SpeedKmh:  0,
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.FleetRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
