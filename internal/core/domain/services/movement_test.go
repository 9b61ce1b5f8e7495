package services_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/core/domain/services"
)

func TestSimulateMovement_StepScales(t *testing.T) {
	m := services.NewMovementModel(kernel.AmsterdamOperationalBounds())

	t.Run("idle courier jitters at GPS-noise scale", func(t *testing.T) {
		c := validCourier()
		c.Status = courier.Idle

		result, err := m.SimulateMovement([]courier.Courier{c}, 42)

		require.NoError(t, err)
		require.Len(t, result.Couriers, 1)
		moved := result.Couriers[0]
		step := math.Hypot(moved.Longitude-c.Longitude, moved.Latitude-c.Latitude)
		assert.InDelta(t, 0.0002, step, 1e-12)
		assert.Equal(t, uint32(1), result.MovementsApplied)
		assert.Equal(t, uint32(0), result.BoundsCorrections)
	})

	t.Run("active courier takes the larger step", func(t *testing.T) {
		c := validCourier()
		c.Status = courier.Delivering

		result, err := m.SimulateMovement([]courier.Courier{c}, 42)

		require.NoError(t, err)
		moved := result.Couriers[0]
		step := math.Hypot(moved.Longitude-c.Longitude, moved.Latitude-c.Latitude)
		assert.InDelta(t, 0.001, step, 1e-12)
	})
}

func TestSimulateMovement_Determinism(t *testing.T) {
	m := services.NewMovementModel(kernel.AmsterdamOperationalBounds())
	fleet := []courier.Courier{validCourier()}

	first, err := m.SimulateMovement(fleet, 1234)
	require.NoError(t, err)
	second, err := m.SimulateMovement(fleet, 1234)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := m.SimulateMovement(fleet, 1235)
	require.NoError(t, err)
	assert.NotEqual(t, first.Couriers[0].Longitude, other.Couriers[0].Longitude)
}

// A courier's step depends on its id, not its slice position: reordering the
// fleet must not change where any individual courier ends up.
func TestSimulateMovement_KeyedByID(t *testing.T) {
	m := services.NewMovementModel(kernel.AmsterdamOperationalBounds())

	a := validCourier()
	b := validCourier()
	b.ID = "c-2"
	b.Longitude = 4.90

	forward, err := m.SimulateMovement([]courier.Courier{a, b}, 7)
	require.NoError(t, err)
	reversed, err := m.SimulateMovement([]courier.Courier{b, a}, 7)
	require.NoError(t, err)

	assert.Equal(t, forward.Couriers[0], reversed.Couriers[1])
	assert.Equal(t, forward.Couriers[1], reversed.Couriers[0])
}

func TestSimulateMovement_InputNotMutated(t *testing.T) {
	m := services.NewMovementModel(kernel.AmsterdamOperationalBounds())
	fleet := []courier.Courier{validCourier()}
	original := fleet[0]

	_, err := m.SimulateMovement(fleet, 42)

	require.NoError(t, err)
	assert.Equal(t, original, fleet[0])
}

func TestSimulateMovement_BoundsCorrections(t *testing.T) {
	m := services.NewMovementModel(kernel.AmsterdamOperationalBounds())

	// Pin the courier to the western edge; whatever direction it steps with a
	// westward component gets clamped back.
	corrections := uint32(0)
	for seed := int64(0); seed < 20; seed++ {
		c := validCourier()
		c.Longitude = 4.85
		c.Latitude = 52.37

		result, err := m.SimulateMovement([]courier.Courier{c}, seed)
		require.NoError(t, err)

		moved := result.Couriers[0]
		assert.GreaterOrEqual(t, moved.Longitude, 4.85)
		assert.LessOrEqual(t, moved.Longitude, 4.95)
		corrections += result.BoundsCorrections
	}

	assert.Positive(t, corrections, "some of 20 seeds must step across the edge")
}

func TestSimulateMovement_InvalidRecordFailsWholeCall(t *testing.T) {
	m := services.NewMovementModel(kernel.AmsterdamOperationalBounds())

	broken := validCourier()
	broken.Latitude = math.NaN()

	result, err := m.SimulateMovement([]courier.Courier{validCourier(), broken}, 42)

	assert.Error(t, err)
	assert.Empty(t, result.Couriers)
}

func TestSimulateMovement_EmptyFleet(t *testing.T) {
	m := services.NewMovementModel(kernel.AmsterdamOperationalBounds())

	result, err := m.SimulateMovement(nil, 42)

	require.NoError(t, err)
	assert.Empty(t, result.Couriers)
	assert.Zero(t, result.MovementsApplied)
	assert.Zero(t, result.BoundsCorrections)
}
