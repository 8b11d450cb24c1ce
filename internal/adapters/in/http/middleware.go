package http

import (
	"net/http"
	"strings"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const restaurantIDContextKey = "restaurantID"

// AuthMiddleware resolves the Bearer token into a restaurant identity and
// stores it in the request context. Requests without a valid token are
// rejected before reaching a handler.
func AuthMiddleware(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized,
					Error{Code: http.StatusUnauthorized, Message: "missing bearer token"})
			}

			restaurantID, err := identity.RestaurantID(ctx.Request().Context(), token)
			if err != nil {
				return problem(ctx, err)
			}

			ctx.Set(restaurantIDContextKey, restaurantID)
			return next(ctx)
		}
	}
}

// restaurantID returns the identity placed in the context by AuthMiddleware.
func restaurantID(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(restaurantIDContextKey).(kernel.UUID)
	return id, ok
}
