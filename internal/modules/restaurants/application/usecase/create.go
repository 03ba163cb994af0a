package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	menus "eatzaSearch/internal/modules/menus/domain"
	"eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/modules/restaurants/domain"
)

// MenuWriter is the slice of the menus module needed when registering a
// restaurant: every restaurant owns exactly one menu, created alongside it.
type MenuWriter interface {
	SaveMenu(ctx context.Context, menu *menus.Menu) error
}

// CreateRestaurantUseCase persists a restaurant and its menu. The two saves
// are independently committed store calls, mirroring the per-call atomicity
// of the store; there is no multi-entity transaction here.
type CreateRestaurantUseCase struct {
	restaurants port.RestaurantRepository
	menus       MenuWriter
	publisher   port.ChangePublisher
	cache       port.SearchCache
}

func NewCreateRestaurantUseCase(restaurants port.RestaurantRepository, menus MenuWriter, publisher port.ChangePublisher, cache port.SearchCache) *CreateRestaurantUseCase {
	return &CreateRestaurantUseCase{restaurants: restaurants, menus: menus, publisher: publisher, cache: cache}
}

func (uc *CreateRestaurantUseCase) Execute(ctx context.Context, cmd domain.CreateRestaurantCommand) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{
		Name:     cmd.Name,
		Location: cmd.Location,
		Cuisine:  cmd.Cuisine,
		Budget:   cmd.Budget,
		Rating:   cmd.Rating,
	}
	if err := uc.restaurants.Save(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("save restaurant: %w", err)
	}

	menu := &menus.Menu{
		ActiveFrom:   cmd.ActiveFrom,
		ActiveTill:   cmd.ActiveTill,
		RestaurantID: restaurant.ID,
	}
	if err := uc.menus.SaveMenu(ctx, menu); err != nil {
		return nil, fmt.Errorf("save menu for restaurant %d: %w", restaurant.ID, err)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	uc.publish(ctx, restaurant)

	slog.Info("restaurant created",
		slog.Int64("restaurantId", restaurant.ID),
		slog.Int64("menuId", menu.ID),
		slog.String("name", restaurant.Name))
	return restaurant, nil
}

func (uc *CreateRestaurantUseCase) publish(ctx context.Context, restaurant *domain.Restaurant) {
	if uc.publisher == nil {
		return
	}
	id := strconv.FormatInt(restaurant.ID, 10)
	if err := uc.publisher.Publish(ctx, "restaurants", "created", id, restaurant); err != nil {
		slog.Warn("publish restaurant created failed", slog.String("resourceId", id), slog.Any("error", err))
	}
}
