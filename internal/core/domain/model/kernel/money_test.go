package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to cents", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.005"))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects garbage strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MustMoney("100")

	assert.Equal(t, "600.00", price.MulInt(3).MulInt(2).String())
	assert.Equal(t, "150.00", price.Add(kernel.MustMoney("50")).String())
	assert.True(t, price.MulInt(0).IsZero())
	assert.True(t, price.Sub(kernel.MustMoney("250")).IsZero())
	assert.Equal(t, "8.99", kernel.MustMoney("89.90").Percent(10).String())
	assert.True(t, kernel.ZeroMoney.Equal(kernel.MustMoney("0.00")))
}
