package queries_test

import (
	"testing"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_NoFilter_Valid(t *testing.T) {
	query, err := queries.NewGetAllOrdersQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.StatusFilter())
}

func TestNewGetAllOrdersQuery_WithFilter_Valid(t *testing.T) {
	status := order.Pending

	query, err := queries.NewGetAllOrdersQuery(&status)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.StatusFilter())
	assert.Equal(t, order.Pending, *query.StatusFilter())
}

func TestNewGetAllOrdersQuery_InvalidFilter_ReturnsError(t *testing.T) {
	status := order.Unknown

	_, err := queries.NewGetAllOrdersQuery(&status)
	require.Error(t, err)
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
