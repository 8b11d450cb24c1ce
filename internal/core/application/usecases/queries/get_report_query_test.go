package queries_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetReportQuery_Valid(t *testing.T) {
	restaurantID := kernel.NewUUID()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	query, err := queries.NewGetReportQuery(restaurantID, start, end)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, start, query.Start())
	assert.Equal(t, end, query.End())
}

func TestNewGetReportQuery_StartNotBeforeEnd(t *testing.T) {
	now := time.Now().UTC()
	_, err := queries.NewGetReportQuery(kernel.NewUUID(), now, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetReportQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetReportQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetReportQueryIsNotConstructed)
}
