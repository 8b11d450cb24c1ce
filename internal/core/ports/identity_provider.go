package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
)

// IdentityProvider resolves an opaque credential to the restaurant it
// belongs to. The core never inspects credentials itself; it only consumes
// the authenticated restaurant id.
type IdentityProvider interface {
	// RestaurantID returns the restaurant the token authenticates, or an
	// unauthorized error.
	RestaurantID(ctx context.Context, token string) (kernel.UUID, error)
}
