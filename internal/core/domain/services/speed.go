package services

import (
	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/pkg/errs"
)

// Base speed ranges in km/h per status. Idle couriers are stationary.
const (
	speedDeliveringMinKmh = 15.0
	speedDeliveringMaxKmh = 35.0
	speedReturningMinKmh  = 10.0
	speedReturningMaxKmh  = 25.0

	// TrafficSpeedReduction is the fraction of the base speed lost inside an
	// active traffic zone.
	TrafficSpeedReduction = 0.4
)

// SpeedResult breaks down one speed calculation: the final speed, the base
// speed sampled from the status range, the penalty subtracted for traffic, and
// the status the range was taken from.
type SpeedResult struct {
	Speed          float64 `json:"speed"`
	BaseSpeed      float64 `json:"baseSpeed"`
	TrafficPenalty float64 `json:"trafficPenalty"`
	StatusFactor   string  `json:"statusFactor"`
}

// CalculateSpeed samples a courier speed from the status's base range and
// applies the traffic penalty.
//
// The base speed is low + randomFactor*(high-low) for the status's range, with
// randomFactor clamped into [0, 1). Inside a traffic zone the speed drops by
// 40% (speed = base * 0.6). Idle couriers always yield speed 0, traffic or
// not.
//
// Returns a typed error when the status is invalid.
func CalculateSpeed(status courier.Status, inTrafficZone bool, randomFactor float64) (SpeedResult, error) {
	clamped := clamp01(randomFactor)

	var baseSpeed float64
	switch status {
	case courier.Delivering:
		baseSpeed = speedDeliveringMinKmh + (speedDeliveringMaxKmh-speedDeliveringMinKmh)*clamped
	case courier.Returning:
		baseSpeed = speedReturningMinKmh + (speedReturningMaxKmh-speedReturningMinKmh)*clamped
	case courier.Idle:
		baseSpeed = 0
	default:
		return SpeedResult{}, status.Validate()
	}

	var trafficPenalty float64
	if inTrafficZone && baseSpeed > 0 {
		trafficPenalty = baseSpeed * TrafficSpeedReduction
	}

	return SpeedResult{
		Speed:          baseSpeed - trafficPenalty,
		BaseSpeed:      baseSpeed,
		TrafficPenalty: trafficPenalty,
		StatusFactor:   status.String(),
	}, nil
}

// CalculateSpeedBatch applies CalculateSpeed independently to parallel arrays
// of statuses, traffic flags, and random factors, preserving input order. All
// arrays must have the same length.
func CalculateSpeedBatch(
	statuses []courier.Status,
	inTrafficZone []bool,
	randomFactors []float64,
) ([]SpeedResult, error) {
	if len(statuses) != len(inTrafficZone) || len(statuses) != len(randomFactors) {
		return nil, errs.NewValueIsInvalidError("statuses, traffic flags and factors must have the same length")
	}

	results := make([]SpeedResult, len(statuses))
	for i, status := range statuses {
		result, err := CalculateSpeed(status, inTrafficZone[i], randomFactors[i])
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}
