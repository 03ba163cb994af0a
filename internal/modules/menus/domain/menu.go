package domain

// Menu is the single menu owned by a restaurant (one-to-one). The validity
// window is carried as opaque date-like strings and never parsed here.
type Menu struct {
	ID           int64  `json:"id"`
	ActiveFrom   string `json:"activeFrom"`
	ActiveTill   string `json:"activeTill"`
	RestaurantID int64  `json:"restaurantId"`
}

// MenuItem belongs to exactly one menu. Deleting the menu removes its items.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	MenuID      int64  `json:"menuId"`
}

// ItemRequest carries the payload for adding an item to an existing menu.
type ItemRequest struct {
	MenuID      int64  `json:"menuId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// MenuItemPage is a bounded slice of a menu's items plus total-count
// metadata computed by the store.
type MenuItemPage struct {
	Items         []MenuItem `json:"items"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
}
