package queries_test

import (
	"math"
	"testing"

	"fleetsim/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFindCouriersWithinRadiusQuery(t *testing.T) {
	tests := []struct {
		name     string
		radiusKm float64
		wantErr  error
	}{
		{
			name:     "valid radius",
			radiusKm: 1.5,
		},
		{
			name:     "zero radius",
			radiusKm: 0,
			wantErr:  queries.ErrRadiusIsInvalid,
		},
		{
			name:     "negative radius",
			radiusKm: -1,
			wantErr:  queries.ErrRadiusIsInvalid,
		},
		{
			name:     "NaN radius",
			radiusKm: math.NaN(),
			wantErr:  queries.ErrRadiusIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewFindCouriersWithinRadiusQuery(4.8922, 52.3731, tt.radiusKm)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, query.Validate())
			assert.InDelta(t, tt.radiusKm, query.RadiusKm(), 0)
			assert.InDelta(t, 4.8922, query.Center().Longitude(), 0)
			assert.InDelta(t, 52.3731, query.Center().Latitude(), 0)
		})
	}
}

func TestNewFindCouriersWithinRadiusQuery_InvalidCenter(t *testing.T) {
	_, err := queries.NewFindCouriersWithinRadiusQuery(181, 52.3731, 1)
	require.Error(t, err)
}

func TestFindCouriersWithinRadiusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.FindCouriersWithinRadiusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrFindCouriersWithinRadiusQueryIsNotConstructed)
}
