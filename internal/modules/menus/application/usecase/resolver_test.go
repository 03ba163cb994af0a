package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eatzaSearch/internal/modules/menus/application/port"
	"eatzaSearch/internal/modules/menus/domain"
	restaurantport "eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/shared/pagination"
)

type fakeMenuRepo struct {
	menus []domain.Menu
}

func (f *fakeMenuRepo) ByRestaurantID(_ context.Context, restaurantID int64) (*domain.Menu, error) {
	for i := range f.menus {
		if f.menus[i].RestaurantID == restaurantID {
			return &f.menus[i], nil
		}
	}
	return nil, port.ErrMenuNotFound
}

func (f *fakeMenuRepo) ByID(_ context.Context, id int64) (*domain.Menu, error) {
	for i := range f.menus {
		if f.menus[i].ID == id {
			return &f.menus[i], nil
		}
	}
	return nil, port.ErrMenuNotFound
}

func (f *fakeMenuRepo) Save(_ context.Context, m *domain.Menu) error {
	m.ID = int64(len(f.menus) + 1)
	f.menus = append(f.menus, *m)
	return nil
}

type fakeItemRepo struct {
	items []domain.MenuItem
	saved []*domain.MenuItem
}

func (f *fakeItemRepo) page(matched []domain.MenuItem, page pagination.PageRequest) *domain.MenuItemPage {
	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return &domain.MenuItemPage{
		Items:         matched[start:end],
		TotalPages:    pagination.TotalPages(total, page.Size),
		TotalElements: total,
	}
}

func (f *fakeItemRepo) ByMenuID(_ context.Context, menuID int64, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	matched := make([]domain.MenuItem, 0)
	for _, item := range f.items {
		if item.MenuID == menuID {
			matched = append(matched, item)
		}
	}
	return f.page(matched, page), nil
}

func (f *fakeItemRepo) ByNameContaining(_ context.Context, name string, page pagination.PageRequest) (*domain.MenuItemPage, error) {
	matched := make([]domain.MenuItem, 0)
	for _, item := range f.items {
		if strings.Contains(item.Name, name) {
			matched = append(matched, item)
		}
	}
	return f.page(matched, page), nil
}

func (f *fakeItemRepo) Save(_ context.Context, item *domain.MenuItem) error {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *item)
	f.saved = append(f.saved, item)
	return nil
}

type recordingPublisher struct {
	events []string
}

func (r *recordingPublisher) Publish(_ context.Context, entity, action, resourceID string, _ any) error {
	r.events = append(r.events, entity+"."+action+":"+resourceID)
	return nil
}

func newResolverFixture() (*Resolver, *fakeMenuRepo, *fakeItemRepo, *recordingPublisher) {
	menus := &fakeMenuRepo{menus: []domain.Menu{
		{ID: 1, ActiveFrom: "10AM", ActiveTill: "10PM", RestaurantID: 5},
	}}
	items := &fakeItemRepo{items: []domain.MenuItem{
		{ID: 1, Name: "Dosa", Description: "Plain dosa", Price: 60, MenuID: 1},
		{ID: 2, Name: "Masala Dosa", Description: "With filling", Price: 80, MenuID: 1},
	}}
	publisher := &recordingPublisher{}
	return NewResolver(menus, items, publisher), menus, items, publisher
}

func TestMenuByRestaurantID(t *testing.T) {
	t.Parallel()

	resolver, _, _, _ := newResolverFixture()

	menu, err := resolver.MenuByRestaurantID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if menu.ID != 1 {
		t.Fatalf("unexpected menu: %+v", menu)
	}

	_, err = resolver.MenuByRestaurantID(context.Background(), 404)
	if !errors.Is(err, restaurantport.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestItemsByRestaurantID(t *testing.T) {
	t.Parallel()

	resolver, _, _, _ := newResolverFixture()

	page, err := resolver.ItemsByRestaurantID(context.Background(), 5, pagination.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 || page.TotalElements != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Items[0].Name != "Dosa" {
		t.Fatalf("unexpected first item: %+v", page.Items[0])
	}
}

func TestItemsByRestaurantIDGate(t *testing.T) {
	t.Parallel()

	resolver, _, _, _ := newResolverFixture()

	for _, p := range []pagination.PageRequest{{Number: 0, Size: 10}, {Number: 1, Size: -1}} {
		if _, err := resolver.ItemsByRestaurantID(context.Background(), 5, p); !errors.Is(err, pagination.ErrBadPageRequest) {
			t.Fatalf("page %+v: expected ErrBadPageRequest, got %v", p, err)
		}
	}
}

func TestItemsByRestaurantIDMissingRestaurant(t *testing.T) {
	t.Parallel()

	resolver, _, _, _ := newResolverFixture()

	_, err := resolver.ItemsByRestaurantID(context.Background(), 404, pagination.Default())
	if !errors.Is(err, restaurantport.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestItemsByRestaurantIDEmptyIsNotFound(t *testing.T) {
	t.Parallel()

	resolver, _, _, _ := newResolverFixture()

	// Page far past the item count: empty page classifies as not found.
	_, err := resolver.ItemsByRestaurantID(context.Background(), 5, pagination.PageRequest{Number: 10, Size: 10})
	if !errors.Is(err, ErrNoItemsFound) {
		t.Fatalf("expected ErrNoItemsFound, got %v", err)
	}
}

func TestItemsByName(t *testing.T) {
	t.Parallel()

	resolver, _, _, _ := newResolverFixture()

	page, err := resolver.ItemsByName(context.Background(), "Dosa", pagination.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("unexpected items: %+v", page.Items)
	}

	if _, err := resolver.ItemsByName(context.Background(), "Pizza", pagination.Default()); !errors.Is(err, ErrNoItemsFound) {
		t.Fatalf("expected ErrNoItemsFound, got %v", err)
	}
}

func TestSaveItem(t *testing.T) {
	t.Parallel()

	resolver, _, items, publisher := newResolverFixture()

	item, err := resolver.SaveItem(context.Background(), domain.ItemRequest{
		MenuID:      1,
		Name:        "Idli",
		Description: "Steamed",
		Price:       40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == 0 || item.MenuID != 1 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if len(items.saved) != 1 {
		t.Fatalf("expected one saved item, got %d", len(items.saved))
	}
	if len(publisher.events) != 1 || publisher.events[0] != "menuitems.created:3" {
		t.Fatalf("unexpected events: %v", publisher.events)
	}
}

func TestSaveItemUnknownMenu(t *testing.T) {
	t.Parallel()

	resolver, _, items, _ := newResolverFixture()

	_, err := resolver.SaveItem(context.Background(), domain.ItemRequest{MenuID: 999, Name: "X", Price: 10})
	if !errors.Is(err, ErrMenuNotSaved) {
		t.Fatalf("expected ErrMenuNotSaved, got %v", err)
	}
	if len(items.saved) != 0 {
		t.Fatalf("no item row may be created, got %v", items.saved)
	}
}

func TestSaveMenuAssignsIdentifier(t *testing.T) {
	t.Parallel()

	resolver, menus, _, _ := newResolverFixture()

	menu := &domain.Menu{ActiveFrom: "9AM", ActiveTill: "11PM", RestaurantID: 7}
	if err := resolver.SaveMenu(context.Background(), menu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if menu.ID == 0 {
		t.Fatalf("identifier not assigned: %+v", menu)
	}
	if got, err := menus.ByRestaurantID(context.Background(), 7); err != nil || got.ID != menu.ID {
		t.Fatalf("menu not retrievable: %+v %v", got, err)
	}
}
