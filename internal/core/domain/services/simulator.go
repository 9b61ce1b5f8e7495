package services

import (
	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/model/kernel"
)

// TickResult is the atomic outcome of one simulation tick: the advanced
// snapshot plus every metric derived from it. Either the whole tick succeeds
// or none of it is observable.
type TickResult struct {
	Snapshot          courier.FleetSnapshot `json:"snapshot"`
	Statistics        FleetStatistics       `json:"statistics"`
	PositionHash      uint32                `json:"positionHash"`
	StateHash         uint32                `json:"stateHash"`
	StatusTransitions uint32                `json:"statusTransitions"`
	BoundsCorrections uint32                `json:"boundsCorrections"`
}

// Simulator orchestrates one full tick over a fleet snapshot: movement, gated
// status transitions, speed sampling, then statistics and fingerprints.
//
// The simulator itself holds no fleet state; everything lives in the snapshot
// the caller passes in, so concurrent Tick calls on distinct snapshots are
// safe without locking.
type Simulator struct {
	movement MovementModel
	traffic  TrafficPredicate
}

// NewSimulator creates a Simulator for the given operational bounds. A nil
// traffic predicate means no congestion anywhere.
func NewSimulator(bounds kernel.BoundingBox, traffic TrafficPredicate) Simulator {
	if traffic == nil {
		traffic = NoTraffic
	}
	return Simulator{
		movement: NewMovementModel(bounds),
		traffic:  traffic,
	}
}

// Tick advances the snapshot by one simulation step.
//
// The timestamp doubles as the random seed, so the same (snapshot, timestamp,
// transitionProbability) always produces the identical TickResult, hashes
// included. Per record the pipeline is:
//
//  1. move the courier (seed = timestamp)
//  2. draw the transition gate; when it falls below transitionProbability,
//     draw a status transition from the Markov table
//  3. sample a speed for the resulting status, applying the traffic predicate
//     at the post-movement position
//
// then statistics and both fingerprints are computed over the finished fleet.
// The transition probability is clamped into [0, 1]. An empty snapshot is a
// valid input: the result carries zero statistics and offset-basis hashes.
//
// Any invalid record fails the whole call with a typed error; no partial
// result is returned.
func (s Simulator) Tick(
	snapshot courier.FleetSnapshot,
	timestamp int64,
	transitionProbability float64,
) (TickResult, error) {
	if transitionProbability < 0 {
		transitionProbability = 0
	} else if transitionProbability > 1 {
		transitionProbability = 1
	}

	moved, err := s.movement.SimulateMovement(snapshot.Couriers, timestamp)
	if err != nil {
		return TickResult{}, err
	}

	result := TickResult{
		Snapshot: courier.FleetSnapshot{
			Couriers:  moved.Couriers,
			Timestamp: timestamp,
		},
		BoundsCorrections: moved.BoundsCorrections,
	}

	for i := range result.Snapshot.Couriers {
		c := &result.Snapshot.Couriers[i]
		sub := subSeed(timestamp, c.ID)

		if unitDraw(sub, channelGate) < transitionProbability {
			transition, err := TransitionStatus(c.Status, unitDraw(sub, channelStatus))
			if err != nil {
				return TickResult{}, err
			}
			if transition.Transitioned {
				result.StatusTransitions++
			}
			c.Status = transition.NewStatus
		}

		pos, err := c.Position()
		if err != nil {
			return TickResult{}, err
		}

		speed, err := CalculateSpeed(c.Status, s.traffic(pos), unitDraw(sub, channelSpeed))
		if err != nil {
			return TickResult{}, err
		}
		c.SpeedKmh = speed.Speed
	}

	result.Statistics = Summarize(result.Snapshot.Couriers)
	result.PositionHash = HashPositions(result.Snapshot.Couriers)
	result.StateHash = HashState(result.Snapshot.Couriers)

	return result, nil
}
