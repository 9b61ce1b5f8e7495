package commands

import (
	"errors"

	"github.com/google/uuid"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/pkg/guard"
)

var (
	ErrAddCourierCommandIsNotConstructed = errors.New(
		"AddCourierCommand must be created via NewAddCourierCommand constructor",
	)
	ErrCourierNameIsRequired = errors.New("name is required")
)

// AddCourierCommand represents a request to register a single courier in the
// fleet. The command generates a fresh id; position and status are validated
// at construction so a malformed record never reaches the repository.
//
// Example:
//
//	cmd, err := NewAddCourierCommand("Dam Square Courier", 4.8922, 52.3731, courier.Idle)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewAddCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add courier: %w", err)
//	}
//	fmt.Printf("Added courier %s", cmd.CourierID())
type AddCourierCommand struct { //nolint:recvcheck //using for validation
	courierID string
	name      string
	position  kernel.Coordinate
	status    courier.Status

	guard guard.ConstructorGuard
}

// NewAddCourierCommand creates a command to register a new courier.
// Automatically generates a unique id. Validates that the name is not empty,
// the coordinates are sane, and the status is a valid fleet status.
func NewAddCourierCommand(
	name string,
	longitude, latitude float64,
	status courier.Status,
) (AddCourierCommand, error) {
	command := AddCourierCommand{
		courierID: uuid.NewString(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPosition(longitude, latitude),
		command.setStatus(status),
	); err != nil {
		return AddCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCourierCommandIsNotConstructed if validation fails.
func (c AddCourierCommand) Validate() error {
	return c.guard.Validate(ErrAddCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier id.
func (c AddCourierCommand) CourierID() string {
	return c.courierID
}

// Name returns the courier name from the command.
func (c AddCourierCommand) Name() string {
	return c.name
}

// Position returns the courier starting position from the command.
func (c AddCourierCommand) Position() kernel.Coordinate {
	return c.position
}

// Status returns the courier starting status from the command.
func (c AddCourierCommand) Status() courier.Status {
	return c.status
}

func (c *AddCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCourierCommand) setPosition(longitude, latitude float64) error {
	position, err := kernel.NewCoordinate(longitude, latitude)
	if err != nil {
		return err
	}

	c.position = position
	return nil
}

func (c *AddCourierCommand) setStatus(status courier.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
