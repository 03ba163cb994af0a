package port

import (
	"context"
	"errors"

	"eatzaSearch/internal/modules/restaurants/domain"
	"eatzaSearch/internal/shared/pagination"
)

// ErrRestaurantNotFound reports that an identifier did not resolve to a
// restaurant (or, for menu resolution, that the restaurant carries no menu).
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository is the store-side contract for the search predicates.
// Search never fails on an empty match; it returns an empty page and leaves
// the not-found classification to the caller.
type RestaurantRepository interface {
	Search(ctx context.Context, criteria domain.SearchCriteria, page pagination.PageRequest) (*domain.RestaurantPage, error)
	ByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	// Save persists a new restaurant and assigns its identifier.
	Save(ctx context.Context, restaurant *domain.Restaurant) error
	// Delete removes the restaurant and cascades over its menu and items in
	// one atomic unit. Returns ErrRestaurantNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
