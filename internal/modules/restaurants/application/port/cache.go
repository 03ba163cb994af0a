package port

import (
	"context"

	"eatzaSearch/internal/modules/restaurants/domain"
)

// SearchCache keeps recently served result pages so a failing store call can
// be answered with the last known page. Implementations degrade silently:
// a cache miss or cache outage never fails a search.
type SearchCache interface {
	Get(ctx context.Context, key string) (*domain.RestaurantPage, bool)
	Set(ctx context.Context, key string, page *domain.RestaurantPage)
	// Invalidate drops every cached page; called after any write.
	Invalidate(ctx context.Context)
}
