package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/modules/restaurants/application/usecase"
	"eatzaSearch/internal/modules/restaurants/domain"
	"eatzaSearch/internal/shared/httputil"
	"eatzaSearch/internal/shared/pagination"
)

const (
	badPageMessage  = "Page number or Page size cannot be 0 or less"
	notFoundMessage = "No Restaurants found for specified inputs"
)

// Handler exposes the restaurant search surface over echo.
type Handler struct {
	search *usecase.SearchUseCase
	create *usecase.CreateRestaurantUseCase
	remove *usecase.DeleteRestaurantUseCase
	mapper *httputil.ErrorMapper
}

func NewHandler(search *usecase.SearchUseCase, create *usecase.CreateRestaurantUseCase, remove *usecase.DeleteRestaurantUseCase) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(pagination.ErrBadPageRequest, http.StatusBadRequest, badPageMessage).
		WithMapping(usecase.ErrNoRestaurantsFound, http.StatusNotFound, notFoundMessage).
		WithMapping(port.ErrRestaurantNotFound, http.StatusNotFound, notFoundMessage)

	return &Handler{search: search, create: create, remove: remove, mapper: mapper}
}

// Register mounts the search routes on an authenticated group.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/restaurants", h.getAllRestaurants)
	g.GET("/restaurants/name/:name", h.getRestaurantsByName)
	g.GET("/restaurants/location/:location/cuisine/:cuisine", h.getRestaurantsByLocationCuisine)
	g.GET("/restaurants/name/:name/location/:location", h.getRestaurantsByLocationName)
	g.GET("/restaurants/budget/:budget", h.getRestaurantsByBudget)
	g.GET("/restaurants/rating/:rating", h.getRestaurantsByRating)
	g.POST("/restaurant", h.addRestaurant)
	g.DELETE("/restaurant/:id", h.deleteRestaurant)
}

// pageFromQuery reads pagenumber/pagesize with the surface defaults of 1/10.
func pageFromQuery(c echo.Context) (pagination.PageRequest, error) {
	page := pagination.Default()

	if raw := c.QueryParam("pagenumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pagination.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "pagenumber must be an integer")
		}
		page.Number = n
	}
	if raw := c.QueryParam("pagesize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pagination.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "pagesize must be an integer")
		}
		page.Size = n
	}
	return page, nil
}

func (h *Handler) respond(c echo.Context, criteria domain.SearchCriteria) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	result, err := h.search.Search(c.Request().Context(), criteria, page)
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) getAllRestaurants(c echo.Context) error {
	return h.respond(c, domain.AllRestaurants())
}

func (h *Handler) getRestaurantsByName(c echo.Context) error {
	return h.respond(c, domain.ByName(c.Param("name")))
}

func (h *Handler) getRestaurantsByLocationCuisine(c echo.Context) error {
	return h.respond(c, domain.ByLocationAndCuisine(c.Param("location"), c.Param("cuisine")))
}

func (h *Handler) getRestaurantsByLocationName(c echo.Context) error {
	return h.respond(c, domain.ByLocationAndName(c.Param("location"), c.Param("name")))
}

func (h *Handler) getRestaurantsByBudget(c echo.Context) error {
	budget, err := strconv.Atoi(c.Param("budget"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "budget must be an integer")
	}
	return h.respond(c, domain.ByBudget(budget))
}

func (h *Handler) getRestaurantsByRating(c echo.Context) error {
	rating, err := strconv.ParseFloat(c.Param("rating"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be a number")
	}
	return h.respond(c, domain.ByRating(rating))
}

func (h *Handler) addRestaurant(c echo.Context) error {
	var cmd domain.CreateRestaurantCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if _, err := h.create.Execute(c.Request().Context(), cmd); err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.String(http.StatusOK, "Restaurant Added successfully")
}

func (h *Handler) deleteRestaurant(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.remove.Execute(c.Request().Context(), id); err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.String(http.StatusOK, "Restaurant deleted successfully")
}
