package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetProductsQuery("  kurta ", "women", queries.RentType, 2)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, "kurta", query.Search())
	require.NotNil(t, query.Category())
	assert.Equal(t, catalog.Women, *query.Category())
	assert.Equal(t, queries.RentType, query.Type())
	assert.Equal(t, 2, query.Page())
}

func TestNewGetProductsQuery_AllCategoryMeansNoFilter(t *testing.T) {
	for _, category := range []string{"", "All", "all"} {
		query, err := queries.NewGetProductsQuery("", category, queries.AnyType, 1)
		require.NoError(t, err)
		assert.Nil(t, query.Category(), category)
	}
}

func TestNewGetProductsQuery_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		productType queries.ProductType
		page        int
		wantErr     error
	}{
		{"unknown category", "Pets", queries.AnyType, 1, errs.ErrValueIsInvalid},
		{"unknown type", "", "lease", 1, errs.ErrValueIsInvalid},
		{"page zero", "", queries.BuyType, 0, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetProductsQuery("", tt.category, tt.productType, tt.page)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQueries_RequireIdentifiers(t *testing.T) {
	_, err := queries.NewGetProductQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetCartQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetCustomerOrdersQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetAgentTasksQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name    string
		query   interface{ Validate() error }
		wantErr error
	}{
		{"products", queries.GetProductsQuery{}, queries.ErrGetProductsQueryIsNotConstructed},
		{"product", queries.GetProductQuery{}, queries.ErrGetProductQueryIsNotConstructed},
		{"cart", queries.GetCartQuery{}, queries.ErrGetCartQueryIsNotConstructed},
		{"customer orders", queries.GetCustomerOrdersQuery{}, queries.ErrGetCustomerOrdersQueryIsNotConstructed},
		{"orders", queries.GetOrdersQuery{}, queries.ErrGetOrdersQueryIsNotConstructed},
		{"agent tasks", queries.GetAgentTasksQuery{}, queries.ErrGetAgentTasksQueryIsNotConstructed},
		{"active rentals", queries.GetActiveRentalsQuery{}, queries.ErrGetActiveRentalsQueryIsNotConstructed},
		{"dashboard", queries.GetDashboardQuery{}, queries.ErrGetDashboardQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParameterlessQueries_Valid(t *testing.T) {
	require.NoError(t, queries.NewGetOrdersQuery().Validate())
	require.NoError(t, queries.NewGetActiveRentalsQuery().Validate())
	require.NoError(t, queries.NewGetDashboardQuery().Validate())
}
