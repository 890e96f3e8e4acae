package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomove/internal/core/application/usecases/queries"
	"ecomove/internal/core/ports"
)

func TestNewGetUserLoansQuery(t *testing.T) {
	t.Run("normalizes the page request", func(t *testing.T) {
		query, err := queries.NewGetUserLoansQuery(1, ports.PageRequest{Page: -1, Limit: 0})

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, ports.DefaultPage, query.Page().Page)
		assert.Equal(t, ports.DefaultPageLimit, query.Page().Limit)
	})

	t.Run("keeps an explicit page request", func(t *testing.T) {
		query, err := queries.NewGetUserLoansQuery(1, ports.PageRequest{Page: 3, Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, 3, query.Page().Page)
		assert.Equal(t, 5, query.Page().Limit)
		assert.Equal(t, 10, query.Page().Offset())
	})

	t.Run("rejects a missing user id", func(t *testing.T) {
		_, err := queries.NewGetUserLoansQuery(0, ports.PageRequest{})
		assert.Error(t, err)
	})
}

func TestGetUserLoansQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetUserLoansQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetUserLoansQueryIsNotConstructed)
}
