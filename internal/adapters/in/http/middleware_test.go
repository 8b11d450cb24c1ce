package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticIdentity struct {
	tokens map[string]kernel.UUID
}

func (p staticIdentity) RestaurantID(_ context.Context, token string) (kernel.UUID, error) {
	id, ok := p.tokens[token]
	if !ok {
		return kernel.UUID{}, errs.NewUnauthorizedError("unknown token")
	}
	return id, nil
}

func authTestServer(t *testing.T) (*echo.Echo, kernel.UUID) {
	t.Helper()

	expected := kernel.NewUUID()
	e := echo.New()
	e.Use(AuthMiddleware(staticIdentity{tokens: map[string]kernel.UUID{"trattoria-token": expected}}))
	e.GET("/whoami", func(ctx echo.Context) error {
		id, ok := restaurantID(ctx)
		require.True(t, ok)
		return ctx.JSON(http.StatusOK, map[string]string{"restaurant_id": id.String()})
	})

	return e, expected
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e, expected := authTestServer(t)

	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set(echo.HeaderAuthorization, "Bearer trattoria-token")
	recorder := httptest.NewRecorder()

	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), expected.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e, _ := authTestServer(t)

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	e, _ := authTestServer(t)

	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	recorder := httptest.NewRecorder()

	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	e, _ := authTestServer(t)

	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set(echo.HeaderAuthorization, "Bearer somebody-else")
	recorder := httptest.NewRecorder()

	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
