package catalog_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func money(s string) *kernel.Money {
	m := kernel.MustMoney(s)
	return &m
}

func newProduct(t *testing.T, rentable bool) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), "Linen Shirt", "breathable", catalog.Men, "Shirts", rentable, createdAt)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product without variants", func(t *testing.T) {
		p := newProduct(t, true)

		require.NoError(t, p.Validate())
		assert.Equal(t, "Linen Shirt", p.Name())
		assert.Equal(t, catalog.Men, p.Category())
		assert.Empty(t, p.Variants())
		assert.False(t, p.IsForSale())
		assert.False(t, p.IsForRent())
	})

	t.Run("joins every validation error", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.UUID{}, "  ", "", catalog.UnknownCategory, "", false, createdAt)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "0 is not a valid category")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p catalog.Product

		require.ErrorIs(t, p.Validate(), catalog.ErrProductIsNotConstructed)
	})
}

func TestProduct_AddVariant(t *testing.T) {
	t.Run("derives a daily rent price of 10 percent for rentable products", func(t *testing.T) {
		p := newProduct(t, true)

		v, err := p.AddVariant(kernel.NewUUID(), "M", "", 4, money("89.90"), nil)

		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultColor, v.Color())
		require.NotNil(t, v.RentPricePerDay())
		assert.Equal(t, "8.99", v.RentPricePerDay().String())
		assert.True(t, p.IsForSale())
		assert.True(t, p.IsForRent())
	})

	t.Run("keeps an explicit daily rent price", func(t *testing.T) {
		p := newProduct(t, true)

		v, err := p.AddVariant(kernel.NewUUID(), "M", "Blue", 4, money("100"), money("15"))

		require.NoError(t, err)
		assert.Equal(t, "15.00", v.RentPricePerDay().String())
	})

	t.Run("drops rent price when product is not rentable", func(t *testing.T) {
		p := newProduct(t, false)

		v, err := p.AddVariant(kernel.NewUUID(), "M", "Blue", 4, money("100"), money("15"))

		require.NoError(t, err)
		assert.Nil(t, v.RentPricePerDay())
		assert.False(t, p.IsForRent())
	})

	t.Run("rejects negative stock and missing size", func(t *testing.T) {
		p := newProduct(t, true)

		_, err := p.AddVariant(kernel.NewUUID(), "", "Blue", -1, money("100"), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: size")
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("rejects duplicate size and color", func(t *testing.T) {
		p := newProduct(t, true)
		_, err := p.AddVariant(kernel.NewUUID(), "M", "Blue", 1, money("100"), nil)
		require.NoError(t, err)

		_, err = p.AddVariant(kernel.NewUUID(), "m", "blue", 1, money("100"), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_VariantLookup(t *testing.T) {
	p := newProduct(t, true)
	v, err := p.AddVariant(kernel.NewUUID(), "L", "Red", 2, money("50"), nil)
	require.NoError(t, err)

	found, err := p.Variant(v.ID())
	require.NoError(t, err)
	assert.Same(t, v, found)

	require.NoError(t, p.RemoveVariant(v.ID()))

	_, err = p.Variant(v.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, p.RemoveVariant(v.ID()), errs.ErrObjectNotFound)
}

func TestParseCategory(t *testing.T) {
	c, err := catalog.ParseCategory("women")
	require.NoError(t, err)
	assert.Equal(t, catalog.Women, c)

	_, err = catalog.ParseCategory("pets")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
