package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblem_MapsErrorFamiliesToStatusCodes(t *testing.T) {
	tests := map[string]struct {
		err  error
		code int
	}{
		"not found":     {errs.NewObjectNotFoundError("orderId", kernel.NewUUID()), http.StatusNotFound},
		"conflict":      {errs.NewConflictError("order is cancelled"), http.StatusConflict},
		"unauthorized":  {errs.NewUnauthorizedError("unknown token"), http.StatusUnauthorized},
		"required":      {errs.NewValueIsRequiredError("label"), http.StatusBadRequest},
		"invalid":       {errs.NewValueIsInvalidErrorWithCause("period", errors.New("start after end")), http.StatusBadRequest},
		"out of range":  {errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), http.StatusBadRequest},
		"zero uuid":     {kernel.UUID{}.Validate(), http.StatusBadRequest},
		"unknown error": {errors.New("connection reset"), http.StatusInternalServerError},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			recorder := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), recorder)

			require.NoError(t, problem(ctx, test.err))
			assert.Equal(t, test.code, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"message"`)
		})
	}
}
