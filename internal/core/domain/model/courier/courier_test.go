package courier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/pkg/errs"
)

func validCourier() courier.Courier {
	return courier.Courier{
		ID:        "courier-1",
		Name:      "Dam Square Courier",
		Longitude: 4.8922,
		Latitude:  52.3731,
		Status:    courier.Delivering,
		SpeedKmh:  20,
	}
}

func TestCourier_Validate(t *testing.T) {
	t.Run("valid record passes", func(t *testing.T) {
		require.NoError(t, validCourier().Validate())
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		c := validCourier()
		c.ID = ""

		err := c.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, courier.ErrIDIsRequired)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		c := validCourier()
		c.Name = ""

		err := c.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("latitude outside sanity range is rejected", func(t *testing.T) {
		c := validCourier()
		c.Latitude = 91

		err := c.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("NaN longitude is rejected", func(t *testing.T) {
		c := validCourier()
		c.Longitude = math.NaN()

		require.Error(t, c.Validate())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		c := validCourier()
		c.Status = courier.Unknown

		require.Error(t, c.Validate())
	})

	t.Run("negative speed is rejected", func(t *testing.T) {
		c := validCourier()
		c.SpeedKmh = -1

		err := c.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("position outside operational bounds is not a hard error", func(t *testing.T) {
		// Outside Amsterdam but inside the WGS84 sanity envelope: the
		// validator clamps this with a warning, Validate accepts it.
		c := validCourier()
		c.Longitude = 5.5
		c.Latitude = 51.9

		require.NoError(t, c.Validate())
	})
}

func TestCourier_Position(t *testing.T) {
	t.Run("valid coordinates convert", func(t *testing.T) {
		pos, err := validCourier().Position()

		require.NoError(t, err)
		assert.InDelta(t, 4.8922, pos.Longitude(), 0)
		assert.InDelta(t, 52.3731, pos.Latitude(), 0)
	})

	t.Run("NaN coordinates fail", func(t *testing.T) {
		c := validCourier()
		c.Latitude = math.NaN()

		_, err := c.Position()

		require.Error(t, err)
	})
}

func TestFleetSnapshot_Clone(t *testing.T) {
	t.Run("clone is deep and independent", func(t *testing.T) {
		snapshot := courier.FleetSnapshot{
			Couriers:  []courier.Courier{validCourier()},
			Timestamp: 42,
		}

		clone := snapshot.Clone()
		clone.Couriers[0].Longitude = 4.95
		clone.Timestamp = 43

		assert.InDelta(t, 4.8922, snapshot.Couriers[0].Longitude, 0)
		assert.Equal(t, int64(42), snapshot.Timestamp)
	})

	t.Run("empty snapshot clones", func(t *testing.T) {
		clone := courier.FleetSnapshot{}.Clone()

		assert.Empty(t, clone.Couriers)
	})
}

func TestFleetSnapshot_Validate(t *testing.T) {
	t.Run("empty snapshot is valid", func(t *testing.T) {
		require.NoError(t, courier.FleetSnapshot{}.Validate())
	})

	t.Run("unique ids pass", func(t *testing.T) {
		a := validCourier()
		b := validCourier()
		b.ID = "courier-2"

		snapshot := courier.FleetSnapshot{Couriers: []courier.Courier{a, b}}

		require.NoError(t, snapshot.Validate())
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		snapshot := courier.FleetSnapshot{
			Couriers: []courier.Courier{validCourier(), validCourier()},
		}

		err := snapshot.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate courier id")
	})

	t.Run("invalid record is reported with its index", func(t *testing.T) {
		bad := validCourier()
		bad.ID = "courier-2"
		bad.SpeedKmh = -5

		snapshot := courier.FleetSnapshot{
			Couriers: []courier.Courier{validCourier(), bad},
		}

		err := snapshot.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "couriers[1]")
	})
}
