package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/services"
)

func TestCalculateSpeed_Ranges(t *testing.T) {
	tests := []struct {
		name     string
		status   courier.Status
		factor   float64
		wantBase float64
	}{
		{"delivering at range start", courier.Delivering, 0.0, 15.0},
		{"delivering at midpoint", courier.Delivering, 0.5, 25.0},
		{"returning at range start", courier.Returning, 0.0, 10.0},
		{"returning at midpoint", courier.Returning, 0.5, 17.5},
		{"idle is stationary", courier.Idle, 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := services.CalculateSpeed(tt.status, false, tt.factor)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantBase, result.BaseSpeed, 1e-12)
			assert.InDelta(t, tt.wantBase, result.Speed, 1e-12)
			assert.Zero(t, result.TrafficPenalty)
			assert.Equal(t, tt.status.String(), result.StatusFactor)
		})
	}
}

func TestCalculateSpeed_TrafficPenalty(t *testing.T) {
	t.Run("traffic removes 40 percent of the base speed", func(t *testing.T) {
		for _, factor := range []float64{0.0, 0.25, 0.5, 0.75, 0.9999} {
			clear, err := services.CalculateSpeed(courier.Delivering, false, factor)
			require.NoError(t, err)
			congested, err := services.CalculateSpeed(courier.Delivering, true, factor)
			require.NoError(t, err)

			assert.InDelta(t, clear.Speed*0.6, congested.Speed, 1e-9)
			assert.InDelta(t, congested.BaseSpeed*services.TrafficSpeedReduction,
				congested.TrafficPenalty, 1e-9)
		}
	})

	t.Run("idle courier ignores traffic", func(t *testing.T) {
		result, err := services.CalculateSpeed(courier.Idle, true, 0.9)

		require.NoError(t, err)
		assert.Zero(t, result.Speed)
		assert.Zero(t, result.TrafficPenalty)
	})
}

func TestCalculateSpeed_FactorClamping(t *testing.T) {
	t.Run("negative factor clamps to range start", func(t *testing.T) {
		result, err := services.CalculateSpeed(courier.Returning, false, -2.0)

		require.NoError(t, err)
		assert.InDelta(t, 10.0, result.Speed, 0)
	})

	t.Run("factor above one stays below range end", func(t *testing.T) {
		result, err := services.CalculateSpeed(courier.Delivering, false, 3.0)

		require.NoError(t, err)
		assert.Less(t, result.Speed, 35.0)
		assert.Greater(t, result.Speed, 34.9)
	})
}

func TestCalculateSpeed_InvalidStatus(t *testing.T) {
	_, err := services.CalculateSpeed(courier.Unknown, false, 0.5)

	assert.Error(t, err)
}

func TestCalculateSpeedBatch(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		statuses := []courier.Status{courier.Idle, courier.Delivering}
		traffic := []bool{false, true}
		factors := []float64{0.5, 0.0}

		results, err := services.CalculateSpeedBatch(statuses, traffic, factors)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Zero(t, results[0].Speed)
		assert.InDelta(t, 9.0, results[1].Speed, 1e-9)
	})

	t.Run("length mismatch fails", func(t *testing.T) {
		_, err := services.CalculateSpeedBatch(
			[]courier.Status{courier.Idle}, []bool{false, true}, []float64{0.5})

		assert.Error(t, err)
	})
}
