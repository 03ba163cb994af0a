package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"eatzaSearch/internal/modules/menus/application/port"
	"eatzaSearch/internal/modules/menus/domain"
	restaurantport "eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/shared/pagination"
)

var (
	// ErrNoItemsFound classifies an empty item listing as a terminal
	// not-found outcome.
	ErrNoItemsFound = errors.New("no menu items found for specified inputs")
	// ErrMenuNotSaved reports that an item creation referenced a menu
	// identifier that does not resolve to an existing menu.
	ErrMenuNotSaved = errors.New("menu with given id does not exist, item not saved")
)

// Resolver answers menu and item lookups for a restaurant. A restaurant
// without a menu is reported as restaurant-not-found: the schema's one-to-one
// cascade means the two states are indistinguishable at this layer.
type Resolver struct {
	menus     port.MenuRepository
	items     port.MenuItemRepository
	publisher port.ChangePublisher
}

func NewResolver(menus port.MenuRepository, items port.MenuItemRepository, publisher port.ChangePublisher) *Resolver {
	return &Resolver{menus: menus, items: items, publisher: publisher}
}

// MenuByRestaurantID resolves the single menu owned by the restaurant.
func (r *Resolver) MenuByRestaurantID(ctx context.Context, restaurantID int64) (*domain.Menu, error) {
	menu, err := r.menus.ByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, port.ErrMenuNotFound) {
			return nil, restaurantport.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("menu by restaurant %d: %w", restaurantID, err)
	}
	return menu, nil
}

// ItemsByMenuID lists a menu's items. Pagination is not validated here; the
// request gate sits with the callers that own the request.
func (r *Resolver) ItemsByMenuID(ctx context.Context, menuID int64, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	return r.items.ByMenuID(ctx, menuID, page)
}

// ItemsByRestaurantID resolves the restaurant's menu and lists its items.
func (r *Resolver) ItemsByRestaurantID(ctx context.Context, restaurantID int64, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	menu, err := r.MenuByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	items, err := r.ItemsByMenuID(ctx, menu.ID, page)
	if err != nil {
		return nil, fmt.Errorf("items by menu %d: %w", menu.ID, err)
	}
	if len(items.Items) == 0 {
		return nil, ErrNoItemsFound
	}
	return items, nil
}

// ItemsByName searches items across all menus by name containment.
func (r *Resolver) ItemsByName(ctx context.Context, name string, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	items, err := r.items.ByNameContaining(ctx, name, page)
	if err != nil {
		return nil, fmt.Errorf("items by name: %w", err)
	}
	if len(items.Items) == 0 {
		return nil, ErrNoItemsFound
	}
	return items, nil
}

// SaveItem persists a new item on the referenced menu. The menu is resolved
// first so an unknown identifier never leaves a dangling row behind.
func (r *Resolver) SaveItem(ctx context.Context, req domain.ItemRequest) (*domain.MenuItem, error) {
	menu, err := r.menus.ByID(ctx, req.MenuID)
	if err != nil {
		if errors.Is(err, port.ErrMenuNotFound) {
			return nil, ErrMenuNotSaved
		}
		return nil, fmt.Errorf("resolve menu %d: %w", req.MenuID, err)
	}

	item := &domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		MenuID:      menu.ID,
	}
	if err := r.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	if r.publisher != nil {
		resource := strconv.FormatInt(item.ID, 10)
		if err := r.publisher.Publish(ctx, "menuitems", "created", resource, item); err != nil {
			slog.Warn("publish item created failed", slog.String("resourceId", resource), slog.Any("error", err))
		}
	}

	slog.Info("menu item created", slog.Int64("itemId", item.ID), slog.Int64("menuId", menu.ID))
	return item, nil
}

// SaveMenu persists a freshly created restaurant's menu. Exposed for the
// restaurants module, which creates the owning side first.
func (r *Resolver) SaveMenu(ctx context.Context, menu *domain.Menu) error {
	return r.menus.Save(ctx, menu)
}
