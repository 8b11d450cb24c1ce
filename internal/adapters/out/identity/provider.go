// Package identity authenticates API tokens against a static token table.
package identity

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
)

var _ ports.IdentityProvider = StaticTokenProvider{}

// StaticTokenProvider maps pre-shared API tokens to restaurant ids. Tokens
// come from configuration; rotating one means restarting the service.
type StaticTokenProvider struct {
	tokens map[string]kernel.UUID
}

func NewStaticTokenProvider(tokens map[string]kernel.UUID) StaticTokenProvider {
	copied := make(map[string]kernel.UUID, len(tokens))
	for token, restaurantID := range tokens {
		copied[token] = restaurantID
	}
	return StaticTokenProvider{tokens: copied}
}

func (p StaticTokenProvider) RestaurantID(_ context.Context, token string) (kernel.UUID, error) {
	restaurantID, ok := p.tokens[token]
	if !ok {
		return kernel.UUID{}, errs.NewUnauthorizedError("token is not recognized")
	}
	return restaurantID, nil
}
