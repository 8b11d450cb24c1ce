package order_test

import (
	"testing"

	"tableside/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  order.Status
		items    []order.ItemStatus
		expected order.Status
	}{
		{
			name:     "all_delivered",
			current:  order.Ready,
			items:    []order.ItemStatus{order.ItemDelivered, order.ItemDelivered},
			expected: order.Delivered,
		},
		{
			name:     "some_ready_rest_delivered",
			current:  order.Preparing,
			items:    []order.ItemStatus{order.ItemReady, order.ItemDelivered},
			expected: order.Ready,
		},
		{
			name:     "all_ready",
			current:  order.Preparing,
			items:    []order.ItemStatus{order.ItemReady, order.ItemReady},
			expected: order.Ready,
		},
		{
			name:     "some_preparing_rest_later",
			current:  order.Confirmed,
			items:    []order.ItemStatus{order.ItemPreparing, order.ItemReady, order.ItemDelivered},
			expected: order.Preparing,
		},
		{
			name:     "all_confirmed",
			current:  order.Pending,
			items:    []order.ItemStatus{order.ItemConfirmed, order.ItemConfirmed},
			expected: order.Confirmed,
		},
		{
			name:     "confirmed_and_delivered_without_progress",
			current:  order.Pending,
			items:    []order.ItemStatus{order.ItemConfirmed, order.ItemDelivered},
			expected: order.Confirmed,
		},
		{
			name:     "pending_mix_keeps_current",
			current:  order.Pending,
			items:    []order.ItemStatus{order.ItemPending, order.ItemPreparing},
			expected: order.Pending,
		},
		{
			name:     "reopened_with_pending_batch_stays_reopened",
			current:  order.Reopened,
			items:    []order.ItemStatus{order.ItemDelivered, order.ItemDelivered, order.ItemPending},
			expected: order.Reopened,
		},
		{
			name:     "reopened_with_confirmed_batch_stays_reopened",
			current:  order.Reopened,
			items:    []order.ItemStatus{order.ItemDelivered, order.ItemConfirmed},
			expected: order.Reopened,
		},
		{
			name:     "reopened_with_ready_batch_stays_reopened",
			current:  order.Reopened,
			items:    []order.ItemStatus{order.ItemDelivered, order.ItemReady},
			expected: order.Reopened,
		},
		{
			name:     "reopened_decays_to_delivered",
			current:  order.Reopened,
			items:    []order.ItemStatus{order.ItemDelivered, order.ItemDelivered, order.ItemDelivered},
			expected: order.Delivered,
		},
		{
			name:     "cancelled_items_excluded",
			current:  order.Preparing,
			items:    []order.ItemStatus{order.ItemCancelled, order.ItemReady},
			expected: order.Ready,
		},
		{
			name:     "cancelled_item_does_not_block_delivery",
			current:  order.Ready,
			items:    []order.ItemStatus{order.ItemCancelled, order.ItemDelivered},
			expected: order.Delivered,
		},
		{
			name:     "all_cancelled_cancels_the_order",
			current:  order.Pending,
			items:    []order.ItemStatus{order.ItemCancelled, order.ItemCancelled},
			expected: order.Cancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.DeriveStatus(tt.current, tt.items)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDeriveStatus_Idempotent(t *testing.T) {
	items := []order.ItemStatus{order.ItemPreparing, order.ItemReady, order.ItemPending}

	first := order.DeriveStatus(order.Pending, items)
	second := order.DeriveStatus(first, items)
	third := order.DeriveStatus(second, items)

	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestParseStatus(t *testing.T) {
	t.Run("case_insensitive", func(t *testing.T) {
		s, err := order.ParseStatus("reopened")
		require.NoError(t, err)
		assert.Equal(t, order.Reopened, s)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := order.ParseStatus("SHIPPED")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Reopened.Validate())
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_IsOpen(t *testing.T) {
	assert.True(t, order.Pending.IsOpen())
	assert.True(t, order.Reopened.IsOpen())
	assert.False(t, order.Delivered.IsOpen())
	assert.False(t, order.Cancelled.IsOpen())
}

func TestParseItemStatus(t *testing.T) {
	s, err := order.ParseItemStatus(" Ready ")
	require.NoError(t, err)
	assert.Equal(t, order.ItemReady, s)

	_, err = order.ParseItemStatus("")
	require.Error(t, err)
}

func TestItemStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.ItemDelivered.IsTerminal())
	assert.True(t, order.ItemCancelled.IsTerminal())
	assert.False(t, order.ItemReady.IsTerminal())
}
