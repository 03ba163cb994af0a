package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"eatzaSearch/internal/modules/restaurants/application/port"
)

// DeleteRestaurantUseCase removes a restaurant. The cascade over menu and
// menu items is the repository's responsibility and happens in one atomic
// unit; no orphaned child may survive.
type DeleteRestaurantUseCase struct {
	restaurants port.RestaurantRepository
	publisher   port.ChangePublisher
	cache       port.SearchCache
}

func NewDeleteRestaurantUseCase(restaurants port.RestaurantRepository, publisher port.ChangePublisher, cache port.SearchCache) *DeleteRestaurantUseCase {
	return &DeleteRestaurantUseCase{restaurants: restaurants, publisher: publisher, cache: cache}
}

func (uc *DeleteRestaurantUseCase) Execute(ctx context.Context, id int64) error {
	if err := uc.restaurants.Delete(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	if uc.publisher != nil {
		resource := strconv.FormatInt(id, 10)
		if err := uc.publisher.Publish(ctx, "restaurants", "deleted", resource, nil); err != nil {
			slog.Warn("publish restaurant deleted failed", slog.String("resourceId", resource), slog.Any("error", err))
		}
	}

	slog.Info("restaurant deleted", slog.Int64("restaurantId", id))
	return nil
}
