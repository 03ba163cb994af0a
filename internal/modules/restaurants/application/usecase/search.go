package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/modules/restaurants/domain"
	"eatzaSearch/internal/shared/pagination"
)

// ErrNoRestaurantsFound classifies an empty result set as a terminal
// not-found outcome. A successful search never carries an empty payload.
var ErrNoRestaurantsFound = errors.New("no restaurants found for specified inputs")

// SearchUseCase is the per-request contract around the query filter: it
// validates pagination, runs the store predicate for the criteria variant and
// classifies the result. Every outcome is terminal and deterministic for a
// given store state.
type SearchUseCase struct {
	repo  port.RestaurantRepository
	cache port.SearchCache
}

func NewSearchUseCase(repo port.RestaurantRepository, cache port.SearchCache) *SearchUseCase {
	return &SearchUseCase{repo: repo, cache: cache}
}

func (uc *SearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, page pagination.PageRequest) (*domain.RestaurantPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	key := criteria.CanonicalKey(page)
	result, err := uc.repo.Search(ctx, criteria, page)
	if err != nil {
		if uc.cache != nil {
			if cached, ok := uc.cache.Get(ctx, key); ok {
				slog.Warn("search store failed, serving cached page",
					slog.String("criteria", string(criteria.Kind)),
					slog.String("key", key),
					slog.Any("error", err))
				return cached, nil
			}
		}
		return nil, fmt.Errorf("search restaurants: %w", err)
	}

	if len(result.Restaurants) == 0 {
		return nil, ErrNoRestaurantsFound
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, key, result)
	}
	slog.Debug("search served",
		slog.String("criteria", string(criteria.Kind)),
		slog.Int("page", page.Number),
		slog.Int("size", page.Size),
		slog.Int64("totalElements", result.TotalElements))
	return result, nil
}
