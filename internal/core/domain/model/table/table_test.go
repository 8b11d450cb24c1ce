package table_test

import (
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tbl, err := table.NewTable(kernel.NewUUID(), kernel.NewUUID(), "12")
	require.NoError(t, err)

	assert.True(t, tbl.IsActive())
	assert.Equal(t, "12", tbl.Label())
}

func TestNewTable_EmptyLabel(t *testing.T) {
	_, err := table.NewTable(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
}

func TestTable_Deactivate(t *testing.T) {
	tbl, err := table.NewTable(kernel.NewUUID(), kernel.NewUUID(), "12")
	require.NoError(t, err)

	tbl.Deactivate()
	assert.False(t, tbl.IsActive())
}

func TestRestoreTable(t *testing.T) {
	tbl, err := table.RestoreTable(kernel.NewUUID(), kernel.NewUUID(), "Terrace 3", false)
	require.NoError(t, err)
	assert.False(t, tbl.IsActive())
}

func TestTable_Validate_ZeroValue(t *testing.T) {
	var tbl table.Table
	assert.ErrorIs(t, tbl.Validate(), table.ErrTableIsNotConstructed)
}
