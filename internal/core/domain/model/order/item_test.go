package order_test

import (
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	price := mustMoney(t, 1250)
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Pizza", price, 2, "extra basil")
	require.NoError(t, err)

	assert.Equal(t, order.ItemPending, item.Status())
	assert.Equal(t, "Margherita", item.Name())
	assert.Equal(t, "Pizza", item.Category())
	assert.Equal(t, 2, item.Quantity())
	assert.Equal(t, "extra basil", item.Notes())
	assert.Equal(t, int64(2500), item.LineTotal().Cents())
	assert.Equal(t, 0, item.AddedInBatch(), "batch is assigned by the order")
}

func TestNewItem_Invalid(t *testing.T) {
	price := mustMoney(t, 1250)

	tests := []struct {
		name string
		item func() (*order.Item, error)
	}{
		{
			name: "zero_id",
			item: func() (*order.Item, error) {
				return order.NewItem(kernel.UUID{}, kernel.NewUUID(), "Margherita", "Pizza", price, 1, "")
			},
		},
		{
			name: "zero_menu_item_id",
			item: func() (*order.Item, error) {
				return order.NewItem(kernel.NewUUID(), kernel.UUID{}, "Margherita", "Pizza", price, 1, "")
			},
		},
		{
			name: "empty_name",
			item: func() (*order.Item, error) {
				return order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "", "Pizza", price, 1, "")
			},
		},
		{
			name: "empty_category",
			item: func() (*order.Item, error) {
				return order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "", price, 1, "")
			},
		},
		{
			name: "zero_quantity",
			item: func() (*order.Item, error) {
				return order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Pizza", price, 0, "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.item()
			require.Error(t, err)
		})
	}
}

func TestRestoreItem(t *testing.T) {
	item, err := order.RestoreItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Pizza",
		mustMoney(t, 1250), 1, order.ItemPreparing, 3, "")
	require.NoError(t, err)

	assert.Equal(t, order.ItemPreparing, item.Status())
	assert.Equal(t, 3, item.AddedInBatch())
}

func TestRestoreItem_InvalidBatch(t *testing.T) {
	_, err := order.RestoreItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Pizza",
		mustMoney(t, 1250), 1, order.ItemPending, 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreItem_InvalidStatus(t *testing.T) {
	_, err := order.RestoreItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Pizza",
		mustMoney(t, 1250), 1, order.ItemStatusUnknown, 1, "")
	require.Error(t, err)
}

func TestItem_Validate_ZeroValue(t *testing.T) {
	var item order.Item
	assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
}
