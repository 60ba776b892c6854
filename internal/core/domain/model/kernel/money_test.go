package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates_money_from_positive_amount", func(t *testing.T) {
		m, err := kernel.NewMoney(5000000)

		require.NoError(t, err)
		assert.Equal(t, int64(5000000), m.Amount())
		assert.False(t, m.IsZero())
	})

	t.Run("zero_amount_is_valid", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("negative_amount_is_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add_and_sub", func(t *testing.T) {
		a, _ := kernel.NewMoney(3000)
		b, _ := kernel.NewMoney(1200)

		assert.Equal(t, int64(4200), a.Add(b).Amount())
		assert.Equal(t, int64(1800), a.Sub(b).Amount())
	})

	t.Run("sub_may_go_negative", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(300)

		assert.Equal(t, int64(-200), a.Sub(b).Amount())
	})

	t.Run("is_equal_compares_amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(100)
		c, _ := kernel.NewMoney(101)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
