package kernel_test

import (
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("valid_amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(1250)
		require.NoError(t, err)
		assert.Equal(t, int64(1250), m.Cents())
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("zero_is_valid", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("negative_rejected", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	ten, _ := kernel.NewMoneyFromCents(1000)
	five, _ := kernel.NewMoneyFromCents(500)

	assert.Equal(t, int64(1500), ten.Add(five).Cents())
	assert.Equal(t, int64(2000), ten.MultiplyQuantity(2).Cents())
	assert.Equal(t, int64(0), five.MultiplyQuantity(0).Cents())
}

func TestMoney_String_PadsCents(t *testing.T) {
	m, _ := kernel.NewMoneyFromCents(805)
	assert.Equal(t, "8.05", m.String())
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoneyFromCents(100)
	b, _ := kernel.NewMoneyFromCents(100)
	c, _ := kernel.NewMoneyFromCents(101)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
