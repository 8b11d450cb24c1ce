package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the full menu of a restaurant, including items
// currently marked unavailable.
type GetMenuQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu query for the given restaurant.
func NewGetMenuQuery(restaurantID kernel.UUID) (GetMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuQuery{}, err
	}

	return GetMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetMenuQueryResponse represents one menu item in the menu listing.
type GetMenuQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Category  string
	Price     kernel.Money
	Available bool
}
