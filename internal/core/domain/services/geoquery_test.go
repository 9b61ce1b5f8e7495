package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/model/kernel"
	"fleetsim/internal/core/domain/services"
	"fleetsim/internal/pkg/errs"
)

func amsterdamFleet() []courier.Courier {
	return []courier.Courier{
		{ID: "dam", Name: "Dam", Longitude: 4.8922, Latitude: 52.3731, Status: courier.Idle},
		{ID: "centraal", Name: "Centraal", Longitude: 4.9003, Latitude: 52.3791, Status: courier.Delivering, SpeedKmh: 20},
		{ID: "vondel", Name: "Vondelpark", Longitude: 4.8686, Latitude: 52.3580, Status: courier.Returning, SpeedKmh: 15},
	}
}

func TestFindNearest(t *testing.T) {
	t.Run("returns the closest courier", func(t *testing.T) {
		target, err := kernel.NewCoordinate(4.8920, 52.3730)
		require.NoError(t, err)

		result, err := services.FindNearest(amsterdamFleet(), target)

		require.NoError(t, err)
		assert.Equal(t, "dam", result.Courier.ID)
		assert.Less(t, result.Distance.Km, 0.1)
	})

	t.Run("empty fleet fails with a typed error", func(t *testing.T) {
		target, err := kernel.NewCoordinate(4.89, 52.37)
		require.NoError(t, err)

		_, err = services.FindNearest(nil, target)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEmptyFleet)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("exact distance tie resolves to the lower id", func(t *testing.T) {
		target, err := kernel.NewCoordinate(4.89, 52.37)
		require.NoError(t, err)

		// Two couriers at the identical position, listed higher id first.
		fleet := []courier.Courier{
			{ID: "b", Name: "B", Longitude: 4.90, Latitude: 52.38, Status: courier.Idle},
			{ID: "a", Name: "A", Longitude: 4.90, Latitude: 52.38, Status: courier.Idle},
		}

		result, err := services.FindNearest(fleet, target)

		require.NoError(t, err)
		assert.Equal(t, "a", result.Courier.ID)
	})
}

func TestFindWithinRadius(t *testing.T) {
	center, err := kernel.NewCoordinate(4.8922, 52.3731)
	require.NoError(t, err)

	t.Run("orders results by distance ascending", func(t *testing.T) {
		results, err := services.FindWithinRadius(amsterdamFleet(), center, 5)

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "dam", results[0].Courier.ID)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i].Distance.Km, results[i-1].Distance.Km)
		}
	})

	t.Run("excludes couriers beyond the radius", func(t *testing.T) {
		results, err := services.FindWithinRadius(amsterdamFleet(), center, 0.5)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "dam", results[0].Courier.ID)
	})

	t.Run("empty fleet yields an empty slice", func(t *testing.T) {
		results, err := services.FindWithinRadius(nil, center, 5)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("negative radius fails", func(t *testing.T) {
		_, err := services.FindWithinRadius(amsterdamFleet(), center, -1)

		assert.Error(t, err)
	})
}
