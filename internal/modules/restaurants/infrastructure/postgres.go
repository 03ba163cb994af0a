package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/modules/restaurants/domain"
	"eatzaSearch/internal/shared/pagination"
)

const restaurantColumns = "id, name, location, cuisine, budget, rating"

// RestaurantPostgres implements the restaurant repository over a pgx pool.
// Result ordering is pinned to primary-key order so pagination stays
// deterministic across repeated queries.
type RestaurantPostgres struct {
	pool *pgxpool.Pool
}

func NewRestaurantPostgres(pool *pgxpool.Pool) *RestaurantPostgres {
	return &RestaurantPostgres{pool: pool}
}

// criteriaPredicate renders the WHERE clause for a criteria variant.
// LIKE is case-sensitive in Postgres, matching the containment contract.
func criteriaPredicate(c domain.SearchCriteria) (string, []any) {
	switch c.Kind {
	case domain.CriteriaName:
		return " WHERE name LIKE '%' || $1 || '%'", []any{c.Name}
	case domain.CriteriaLocationCuisine:
		return " WHERE location LIKE '%' || $1 || '%' AND cuisine LIKE '%' || $2 || '%'", []any{c.Location, c.Cuisine}
	case domain.CriteriaLocationName:
		return " WHERE location LIKE '%' || $1 || '%' AND name LIKE '%' || $2 || '%'", []any{c.Location, c.Name}
	case domain.CriteriaBudget:
		return " WHERE budget <= $1", []any{c.Budget}
	case domain.CriteriaRating:
		return " WHERE rating >= $1", []any{c.Rating}
	default:
		return "", nil
	}
}

func (r *RestaurantPostgres) Search(ctx context.Context, criteria domain.SearchCriteria, page pagination.PageRequest) (*domain.RestaurantPage, error) {
	where, args := criteriaPredicate(criteria)

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count restaurants: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM restaurants%s ORDER BY id LIMIT $%d OFFSET $%d",
		restaurantColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := r.pool.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0, page.Size)
	for rows.Next() {
		var restaurant domain.Restaurant
		if err := rows.Scan(&restaurant.ID, &restaurant.Name, &restaurant.Location, &restaurant.Cuisine, &restaurant.Budget, &restaurant.Rating); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}

	return &domain.RestaurantPage{
		Restaurants:   restaurants,
		TotalPages:    pagination.TotalPages(total, page.Size),
		TotalElements: total,
	}, nil
}

func (r *RestaurantPostgres) ByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := r.pool.QueryRow(ctx, "SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id).
		Scan(&restaurant.ID, &restaurant.Name, &restaurant.Location, &restaurant.Cuisine, &restaurant.Budget, &restaurant.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("restaurant by id %d: %w", id, err)
	}
	return &restaurant, nil
}

func (r *RestaurantPostgres) Save(ctx context.Context, restaurant *domain.Restaurant) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO restaurants (name, location, cuisine, budget, rating)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		restaurant.Name, restaurant.Location, restaurant.Cuisine, restaurant.Budget, restaurant.Rating,
	).Scan(&restaurant.ID)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// Delete cascades explicitly: items first, then the menu, then the
// restaurant, all inside one transaction.
func (r *RestaurantPostgres) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"DELETE FROM menu_items WHERE menu_id IN (SELECT id FROM menus WHERE restaurant_id = $1)", id); err != nil {
		return fmt.Errorf("delete menu items: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM menus WHERE restaurant_id = $1", id); err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrRestaurantNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}
