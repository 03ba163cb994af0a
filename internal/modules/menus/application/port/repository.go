package port

import (
	"context"
	"errors"

	"eatzaSearch/internal/modules/menus/domain"
	"eatzaSearch/internal/shared/pagination"
)

// ErrMenuNotFound reports that a menu identifier (or a restaurant's owned
// menu) did not resolve.
var ErrMenuNotFound = errors.New("menu not found")

type MenuRepository interface {
	ByRestaurantID(ctx context.Context, restaurantID int64) (*domain.Menu, error)
	ByID(ctx context.Context, id int64) (*domain.Menu, error)
	// Save persists a new menu and assigns its identifier.
	Save(ctx context.Context, menu *domain.Menu) error
}

// MenuItemRepository lists and persists items. Listings return empty pages
// for no matches; classification is left to the caller.
type MenuItemRepository interface {
	ByMenuID(ctx context.Context, menuID int64, page pagination.PageRequest) (*domain.MenuItemPage, error)
	ByNameContaining(ctx context.Context, name string, page pagination.PageRequest) (*domain.MenuItemPage, error)
	Save(ctx context.Context, item *domain.MenuItem) error
}

// ChangePublisher mirrors the restaurants-module port; the broker
// implementation serves both.
type ChangePublisher interface {
	Publish(ctx context.Context, entity, action, resourceID string, data any) error
}
