package usecase

import (
	"context"
	"errors"
	"testing"

	menus "eatzaSearch/internal/modules/menus/domain"
	"eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/modules/restaurants/domain"
)

type savingRepo struct {
	memRepo
	nextID    int64
	saved     []*domain.Restaurant
	deleteErr error
	deleted   []int64
}

func (s *savingRepo) Save(_ context.Context, r *domain.Restaurant) error {
	s.nextID++
	r.ID = s.nextID
	s.saved = append(s.saved, r)
	return nil
}

func (s *savingRepo) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type fakeMenuWriter struct {
	menus []*menus.Menu
	err   error
}

func (f *fakeMenuWriter) SaveMenu(_ context.Context, m *menus.Menu) error {
	if f.err != nil {
		return f.err
	}
	m.ID = int64(len(f.menus) + 1)
	f.menus = append(f.menus, m)
	return nil
}

type fakePublisher struct {
	events []string
}

func (f *fakePublisher) Publish(_ context.Context, entity, action, resourceID string, _ any) error {
	f.events = append(f.events, entity+"."+action+":"+resourceID)
	return nil
}

func TestCreateRestaurantSavesMenuAlongside(t *testing.T) {
	t.Parallel()

	repo := &savingRepo{nextID: 6}
	writer := &fakeMenuWriter{}
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewCreateRestaurantUseCase(repo, writer, publisher, cache)

	restaurant, err := uc.Execute(context.Background(), domain.CreateRestaurantCommand{
		Name:       "Dominos",
		Location:   "RR Nagar",
		Cuisine:    "Italian",
		Budget:     400,
		Rating:     4.2,
		ActiveFrom: "10AM",
		ActiveTill: "10PM",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restaurant.ID != 7 {
		t.Fatalf("identifier not assigned: %+v", restaurant)
	}
	if len(writer.menus) != 1 {
		t.Fatalf("expected one menu saved, got %d", len(writer.menus))
	}
	menu := writer.menus[0]
	if menu.RestaurantID != restaurant.ID {
		t.Fatalf("menu not linked to restaurant: %+v", menu)
	}
	if menu.ActiveFrom != "10AM" || menu.ActiveTill != "10PM" {
		t.Fatalf("menu window not carried over: %+v", menu)
	}
	if len(publisher.events) != 1 || publisher.events[0] != "restaurants.created:7" {
		t.Fatalf("unexpected events: %v", publisher.events)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidated)
	}
}

func TestCreateRestaurantPropagatesMenuFailure(t *testing.T) {
	t.Parallel()

	menuErr := errors.New("menus table unavailable")
	uc := NewCreateRestaurantUseCase(&savingRepo{}, &fakeMenuWriter{err: menuErr}, nil, nil)

	if _, err := uc.Execute(context.Background(), domain.CreateRestaurantCommand{Name: "Dominos"}); !errors.Is(err, menuErr) {
		t.Fatalf("expected menu error, got %v", err)
	}
}

func TestDeleteRestaurant(t *testing.T) {
	t.Parallel()

	repo := &savingRepo{}
	publisher := &fakePublisher{}
	cache := newFakeCache()
	uc := NewDeleteRestaurantUseCase(repo, publisher, cache)

	if err := uc.Execute(context.Background(), 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 12 {
		t.Fatalf("unexpected deletes: %v", repo.deleted)
	}
	if len(publisher.events) != 1 || publisher.events[0] != "restaurants.deleted:12" {
		t.Fatalf("unexpected events: %v", publisher.events)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidated)
	}
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	t.Parallel()

	repo := &savingRepo{deleteErr: port.ErrRestaurantNotFound}
	publisher := &fakePublisher{}
	uc := NewDeleteRestaurantUseCase(repo, publisher, nil)

	if err := uc.Execute(context.Background(), 99); !errors.Is(err, port.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("no event expected on failure, got %v", publisher.events)
	}
}
