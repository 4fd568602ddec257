package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountPendingDeliveriesQuery_Valid(t *testing.T) {
	query := queries.NewCountPendingDeliveriesQuery()

	err := query.Validate()

	require.NoError(t, err)
}

func TestCountPendingDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.CountPendingDeliveriesQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCountPendingDeliveriesQueryIsNotConstructed)
}
