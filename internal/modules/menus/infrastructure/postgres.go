package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eatzaSearch/internal/modules/menus/application/port"
	"eatzaSearch/internal/modules/menus/domain"
	"eatzaSearch/internal/shared/pagination"
)

// MenuPostgres implements the menu repository over a pgx pool.
type MenuPostgres struct {
	pool *pgxpool.Pool
}

func NewMenuPostgres(pool *pgxpool.Pool) *MenuPostgres {
	return &MenuPostgres{pool: pool}
}

func (m *MenuPostgres) ByRestaurantID(ctx context.Context, restaurantID int64) (*domain.Menu, error) {
	var menu domain.Menu
	err := m.pool.QueryRow(ctx,
		"SELECT id, active_from, active_till, restaurant_id FROM menus WHERE restaurant_id = $1", restaurantID).
		Scan(&menu.ID, &menu.ActiveFrom, &menu.ActiveTill, &menu.RestaurantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrMenuNotFound
		}
		return nil, fmt.Errorf("menu by restaurant %d: %w", restaurantID, err)
	}
	return &menu, nil
}

func (m *MenuPostgres) ByID(ctx context.Context, id int64) (*domain.Menu, error) {
	var menu domain.Menu
	err := m.pool.QueryRow(ctx,
		"SELECT id, active_from, active_till, restaurant_id FROM menus WHERE id = $1", id).
		Scan(&menu.ID, &menu.ActiveFrom, &menu.ActiveTill, &menu.RestaurantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrMenuNotFound
		}
		return nil, fmt.Errorf("menu by id %d: %w", id, err)
	}
	return &menu, nil
}

func (m *MenuPostgres) Save(ctx context.Context, menu *domain.Menu) error {
	err := m.pool.QueryRow(ctx,
		`INSERT INTO menus (active_from, active_till, restaurant_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		menu.ActiveFrom, menu.ActiveTill, menu.RestaurantID,
	).Scan(&menu.ID)
	if err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

const itemColumns = "id, name, description, price, menu_id"

// MenuItemPostgres implements the item repository over a pgx pool.
type MenuItemPostgres struct {
	pool *pgxpool.Pool
}

func NewMenuItemPostgres(pool *pgxpool.Pool) *MenuItemPostgres {
	return &MenuItemPostgres{pool: pool}
}

func (m *MenuItemPostgres) listPage(ctx context.Context, where string, args []any, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	var total int64
	if err := m.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM menu_items%s ORDER BY id LIMIT $%d OFFSET $%d",
		itemColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := m.pool.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0, page.Size)
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.MenuID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return &domain.MenuItemPage{
		Items:         items,
		TotalPages:    pagination.TotalPages(total, page.Size),
		TotalElements: total,
	}, nil
}

func (m *MenuItemPostgres) ByMenuID(ctx context.Context, menuID int64, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	return m.listPage(ctx, " WHERE menu_id = $1", []any{menuID}, page)
}

func (m *MenuItemPostgres) ByNameContaining(ctx context.Context, name string, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	return m.listPage(ctx, " WHERE name LIKE '%' || $1 || '%'", []any{name}, page)
}

func (m *MenuItemPostgres) Save(ctx context.Context, item *domain.MenuItem) error {
	err := m.pool.QueryRow(ctx,
		`INSERT INTO menu_items (name, description, price, menu_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		item.Name, item.Description, item.Price, item.MenuID,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}
