package queries_test

import (
	"testing"

	"fleetsim/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetFleetStatisticsQuery_Valid(t *testing.T) {
	query := queries.NewGetFleetStatisticsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetFleetStatisticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetFleetStatisticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetFleetStatisticsQueryIsNotConstructed)
}
