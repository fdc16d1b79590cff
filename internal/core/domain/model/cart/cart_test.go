package cart_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	product *catalog.Product
	variant *catalog.Variant
	cart    *cart.Cart
}

func newFixture(t *testing.T, stock int) fixture {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), "Sherwani", "", catalog.Men, "Ethnic", true, now)
	require.NoError(t, err)
	sale := kernel.MustMoney("1000")
	rent := kernel.MustMoney("100")
	v, err := p.AddVariant(kernel.NewUUID(), "L", "Gold", stock, &sale, &rent)
	require.NoError(t, err)
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return fixture{product: p, variant: v, cart: c}
}

func period(t *testing.T, start, end time.Time) *kernel.DateRange {
	t.Helper()
	r, err := kernel.NewDateRange(start, end)
	require.NoError(t, err)
	return &r
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestCart_AddSale(t *testing.T) {
	t.Run("captures the sale price and merges repeated adds", func(t *testing.T) {
		f := newFixture(t, 5)

		first, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 2, nil, now)
		require.NoError(t, err)
		second, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, nil, now)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 3, first.Quantity())
		assert.Equal(t, cart.Sale, first.Kind())
		assert.Equal(t, "1000.00", first.PriceAtAdd().String())
		assert.Equal(t, "3000.00", f.cart.Total().String())
	})

	t.Run("rejects more than the stock snapshot", func(t *testing.T) {
		f := newFixture(t, 2)
		_, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 2, nil, now)
		require.NoError(t, err)

		_, err = f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "only 2 left in stock")
		assert.Equal(t, 2, f.cart.Items()[0].Quantity())
	})

	t.Run("rejects unknown variants and non-positive quantity", func(t *testing.T) {
		f := newFixture(t, 2)

		_, err := f.cart.Add(kernel.NewUUID(), f.product, kernel.NewUUID(), 1, nil, now)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 0, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCart_AddRental(t *testing.T) {
	t.Run("costs price times days times quantity", func(t *testing.T) {
		f := newFixture(t, 1)

		item, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 2, period(t, day(12), day(15)), now)

		require.NoError(t, err)
		assert.True(t, item.IsRental())
		assert.Equal(t, "100.00", item.PriceAtAdd().String())
		assert.Equal(t, "600.00", item.Cost().String())
	})

	t.Run("does not check stock for rentals", func(t *testing.T) {
		f := newFixture(t, 0)

		_, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 3, period(t, day(12), day(12)), now)

		require.NoError(t, err)
	})

	t.Run("keeps different periods apart", func(t *testing.T) {
		f := newFixture(t, 1)

		_, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, period(t, day(12), day(13)), now)
		require.NoError(t, err)
		_, err = f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, period(t, day(14), day(16)), now)
		require.NoError(t, err)
		_, err = f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, nil, now)
		require.NoError(t, err)

		assert.Len(t, f.cart.Items(), 3)
	})

	t.Run("rejects start dates in the past", func(t *testing.T) {
		f := newFixture(t, 1)

		_, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, period(t, day(9), day(12)), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "in the past")
	})

	t.Run("requires two days notice", func(t *testing.T) {
		f := newFixture(t, 1)

		_, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, period(t, day(11), day(12)), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "at least 2 days in advance")
	})

	t.Run("rejects products that are not rentable", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.NewUUID(), "Socks", "", catalog.Kids, "", false, now)
		require.NoError(t, err)
		sale := kernel.MustMoney("5")
		v, err := p.AddVariant(kernel.NewUUID(), "S", "", 10, &sale, nil)
		require.NoError(t, err)
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		_, err = c.Add(kernel.NewUUID(), p, v.ID(), 1, period(t, day(12), day(13)), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not for rent")
	})
}

func TestCart_UpdateAndRemove(t *testing.T) {
	f := newFixture(t, 10)
	item, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, nil, now)
	require.NoError(t, err)

	require.NoError(t, f.cart.UpdateQuantity(item.ID(), 4))
	assert.Equal(t, 4, item.Quantity())

	require.NoError(t, f.cart.UpdateQuantity(item.ID(), 0))
	assert.True(t, f.cart.IsEmpty())

	require.ErrorIs(t, f.cart.Remove(item.ID()), errs.ErrObjectNotFound)
	require.ErrorIs(t, f.cart.UpdateQuantity(item.ID(), 2), errs.ErrObjectNotFound)
}

func TestCart_PriceIsFrozenAtAdd(t *testing.T) {
	f := newFixture(t, 10)
	item, err := f.cart.Add(kernel.NewUUID(), f.product, f.variant.ID(), 1, nil, now)
	require.NoError(t, err)

	cheaper := kernel.MustMoney("10")
	f.variant.ChangeSalePrice(&cheaper)

	assert.Equal(t, "1000.00", item.PriceAtAdd().String())
}

func TestParseItemKind(t *testing.T) {
	kind, err := cart.ParseItemKind("rental")
	require.NoError(t, err)
	assert.Equal(t, cart.Rental, kind)

	_, err = cart.ParseItemKind("lease")
	require.Error(t, err)
}
