package services

import (
	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/pkg/errs"
)

// transitionRow holds one row of the Markov transition table: the probability
// of moving to each target status from a given source status. Bands are
// evaluated in the fixed order Delivering, Returning, Idle, and each row sums
// to exactly 1.0.
type transitionRow struct {
	toDelivering float64
	toReturning  float64
	toIdle       float64
}

// transitionTable is the status transition matrix.
//
//	From        → Delivering  → Returning  → Idle
//	Delivering        0.70         0.15      0.15
//	Returning         0.10         0.65      0.25
//	Idle              0.30         0.10      0.60
func transitionTable(from courier.Status) (transitionRow, error) {
	switch from {
	case courier.Delivering:
		return transitionRow{toDelivering: 0.70, toReturning: 0.15, toIdle: 0.15}, nil
	case courier.Returning:
		return transitionRow{toDelivering: 0.10, toReturning: 0.65, toIdle: 0.25}, nil
	case courier.Idle:
		return transitionRow{toDelivering: 0.30, toReturning: 0.10, toIdle: 0.60}, nil
	default:
		return transitionRow{}, from.Validate()
	}
}

// TransitionResult reports the outcome of one status transition draw.
type TransitionResult struct {
	NewStatus       courier.Status `json:"newStatus"`
	Transitioned    bool           `json:"transitionOccurred"`
	ProbabilityUsed float64        `json:"probabilityUsed"`
}

// TransitionStatus determines the next status for a courier from the Markov
// transition table and a single uniform draw.
//
// The draw is clamped into [0, 1) and evaluated against the cumulative
// probability bands of the source status's row, in the fixed order
// →Delivering, →Returning, →Idle. Bands are lower-inclusive and
// upper-exclusive, so every draw selects exactly one band: no gaps, no
// overlaps. Transitioned reports whether the selected status differs from the
// current one.
//
// Returns a typed error when the current status is invalid.
func TransitionStatus(current courier.Status, draw float64) (TransitionResult, error) {
	row, err := transitionTable(current)
	if err != nil {
		return TransitionResult{}, err
	}

	clamped := clamp01(draw)

	newStatus := courier.Idle
	switch {
	case clamped < row.toDelivering:
		newStatus = courier.Delivering
	case clamped < row.toDelivering+row.toReturning:
		newStatus = courier.Returning
	}

	return TransitionResult{
		NewStatus:       newStatus,
		Transitioned:    newStatus != current,
		ProbabilityUsed: clamped,
	}, nil
}

// TransitionStatusBatch applies TransitionStatus independently to parallel
// arrays of statuses and draws, preserving input order. The arrays must have
// the same length.
func TransitionStatusBatch(statuses []courier.Status, draws []float64) ([]TransitionResult, error) {
	if len(statuses) != len(draws) {
		return nil, errs.NewValueIsInvalidError("statuses and draws must have the same length")
	}

	results := make([]TransitionResult, len(statuses))
	for i, status := range statuses {
		result, err := TransitionStatus(status, draws[i])
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}

// clamp01 constrains a draw into [0, 1). Values at or above 1 map to the
// largest double below 1 so they still land in the final band.
func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f >= 1 {
		return 0x1.fffffffffffffp-1
	}
	return f
}
