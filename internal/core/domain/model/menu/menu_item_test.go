package menu_test

import (
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	price, err := kernel.NewMoneyFromCents(950)
	require.NoError(t, err)

	item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Tiramisu", "Desserts", price)
	require.NoError(t, err)

	assert.True(t, item.IsAvailable())
	assert.Equal(t, "Tiramisu", item.Name())
	assert.Equal(t, "Desserts", item.Category())
	assert.Equal(t, int64(950), item.Price().Cents())
}

func TestNewMenuItem_Invalid(t *testing.T) {
	price, _ := kernel.NewMoneyFromCents(950)

	_, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "", "Desserts", price)
	require.Error(t, err)

	_, err = menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Tiramisu", "", price)
	require.Error(t, err)

	_, err = menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Tiramisu", "Desserts", kernel.Money{})
	require.Error(t, err)
}

func TestMenuItem_Availability(t *testing.T) {
	price, _ := kernel.NewMoneyFromCents(950)
	item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Tiramisu", "Desserts", price)
	require.NoError(t, err)

	item.MarkUnavailable()
	assert.False(t, item.IsAvailable())

	item.MarkAvailable()
	assert.True(t, item.IsAvailable())
}

func TestRestoreMenuItem_KeepsAvailability(t *testing.T) {
	price, _ := kernel.NewMoneyFromCents(950)
	item, err := menu.RestoreMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Tiramisu", "Desserts", price, false)
	require.NoError(t, err)
	assert.False(t, item.IsAvailable())
}

func TestMenuItem_Validate_ZeroValue(t *testing.T) {
	var item menu.MenuItem
	assert.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
}
