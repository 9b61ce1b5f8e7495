package commands

import (
	"errors"
	"math"

	"fleetsim/internal/pkg/guard"
)

var (
	ErrSimulateTickCommandIsNotConstructed = errors.New(
		"SimulateTickCommand must be created via NewSimulateTickCommand constructor",
	)
	ErrTimestampIsInvalid             = errors.New("timestamp must be greater than 0")
	ErrTransitionProbabilityIsInvalid = errors.New("transition probability must be within [0, 1]")
)

// SimulateTickCommand requests one simulation step over the persisted fleet.
// The timestamp doubles as the deterministic random seed: replaying the same
// timestamp against the same fleet reproduces the identical tick.
//
// Example:
//
//	cmd, err := NewSimulateTickCommand(time.Now().UnixMilli(), 0.1)
//	if err != nil {
//	    return fmt.Errorf("invalid tick parameters: %w", err)
//	}
//
//	handler := NewSimulateTickCommandHandler(uowFactory, simulator)
//	result, err := handler.Handle(ctx, cmd)
type SimulateTickCommand struct { //nolint:recvcheck //using for validation
	timestamp             int64
	transitionProbability float64

	guard guard.ConstructorGuard
}

// NewSimulateTickCommand creates a command to run one simulation tick.
// Validates that the timestamp is positive and the transition probability
// lies within [0, 1].
func NewSimulateTickCommand(timestamp int64, transitionProbability float64) (SimulateTickCommand, error) {
	command := SimulateTickCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTimestamp(timestamp),
		command.setTransitionProbability(transitionProbability),
	); err != nil {
		return SimulateTickCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSimulateTickCommandIsNotConstructed if validation fails.
func (c SimulateTickCommand) Validate() error {
	return c.guard.Validate(ErrSimulateTickCommandIsNotConstructed)
}

// Timestamp returns the tick timestamp, which also seeds the random streams.
func (c SimulateTickCommand) Timestamp() int64 {
	return c.timestamp
}

// TransitionProbability returns the per-courier gate probability for status
// transitions this tick.
func (c SimulateTickCommand) TransitionProbability() float64 {
	return c.transitionProbability
}

func (c *SimulateTickCommand) setTimestamp(timestamp int64) error {
	if timestamp <= 0 {
		return ErrTimestampIsInvalid
	}

	c.timestamp = timestamp
	return nil
}

func (c *SimulateTickCommand) setTransitionProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return ErrTransitionProbabilityIsInvalid
	}

	c.transitionProbability = p
	return nil
}
