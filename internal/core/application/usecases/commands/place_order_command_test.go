package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLine(t *testing.T) commands.OrderLine {
	t.Helper()
	line, err := commands.NewOrderLine(kernel.NewUUID(), kernel.NewUUID(), 1, "")
	require.NoError(t, err)
	return line
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	lines := []commands.OrderLine{validLine(t)}

	cmd, err := commands.NewPlaceOrderCommand(orderID, restaurantID, tableID, "window seat", lines)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, tableID, cmd.TableID())
	assert.Equal(t, "window seat", cmd.CustomerNote())
	assert.Len(t, cmd.Lines(), 1)
}

func TestNewPlaceOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrNoItems)
}

func TestNewPlaceOrderCommand_NotConstructedLine(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "",
		[]commands.OrderLine{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLineIsNotConstructed)
}

func TestNewPlaceOrderCommand_InvalidTableID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "",
		[]commands.OrderLine{validLine(t)})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
