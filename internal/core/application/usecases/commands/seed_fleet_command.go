package commands

import (
	"errors"

	"fleetsim/internal/pkg/guard"
)

const maxSeedCount = 1000

var (
	ErrSeedFleetCommandIsNotConstructed = errors.New(
		"SeedFleetCommand must be created via NewSeedFleetCommand constructor",
	)
	ErrSeedCountIsInvalid = errors.New("seed count must be between 1 and 1000")
)

// SeedFleetCommand requests creation of an initial fleet of couriers placed
// at well-known Amsterdam locations. Intended for first-run setup and demos;
// seeding replaces whatever fleet is currently stored.
//
// Example:
//
//	cmd, err := NewSeedFleetCommand(10)
//	if err != nil {
//	    return err
//	}
//	handler := NewSeedFleetCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to seed fleet: %w", err)
//	}
type SeedFleetCommand struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewSeedFleetCommand creates a command to seed the fleet with count couriers.
// Validates that count is between 1 and 1000.
func NewSeedFleetCommand(count int) (SeedFleetCommand, error) {
	command := SeedFleetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCount(count); err != nil {
		return SeedFleetCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSeedFleetCommandIsNotConstructed if validation fails.
func (c SeedFleetCommand) Validate() error {
	return c.guard.Validate(ErrSeedFleetCommandIsNotConstructed)
}

// Count returns the number of couriers to seed.
func (c SeedFleetCommand) Count() int {
	return c.count
}

func (c *SeedFleetCommand) setCount(count int) error {
	if count < 1 || count > maxSeedCount {
		return ErrSeedCountIsInvalid
	}

	c.count = count
	return nil
}
