package domain

// Restaurant is the aggregate root of the search index. The identifier is
// assigned by the store exactly once and immutable thereafter.
type Restaurant struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Cuisine  string  `json:"cuisine"`
	Budget   int     `json:"budget"`
	Rating   float64 `json:"rating"`
}

// CreateRestaurantCommand carries the payload for registering a restaurant
// together with its menu validity window.
type CreateRestaurantCommand struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Cuisine    string  `json:"cuisine"`
	Budget     int     `json:"budget"`
	Rating     float64 `json:"rating"`
	ActiveFrom string  `json:"activeFrom"`
	ActiveTill string  `json:"activeTill"`
}

// RestaurantPage is one bounded slice of an ordered result set plus the
// total-count metadata computed by the store at query time.
type RestaurantPage struct {
	Restaurants   []Restaurant `json:"restaurants"`
	TotalPages    int          `json:"totalPages"`
	TotalElements int64        `json:"totalElements"`
}
