package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"eatzaSearch/internal/modules/menus/application/usecase"
	"eatzaSearch/internal/modules/menus/domain"
	restaurantport "eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/shared/httputil"
	"eatzaSearch/internal/shared/pagination"
)

const (
	badPageMessage           = "Page number or Page size cannot be 0 or less"
	restaurantNotFoundMsg    = "No Restaurants found for specified inputs"
	itemsNotFoundMessage     = "No Items found for specified inputs"
	menuNotSavedMessage      = "Menu with given id not found, item not saved"
	invalidRequestBodyErrMsg = "invalid request body"
)

// Handler exposes menu item listing, search and creation over echo.
type Handler struct {
	resolver *usecase.Resolver
	mapper   *httputil.ErrorMapper
}

func NewHandler(resolver *usecase.Resolver) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(pagination.ErrBadPageRequest, http.StatusBadRequest, badPageMessage).
		WithMapping(restaurantport.ErrRestaurantNotFound, http.StatusNotFound, restaurantNotFoundMsg).
		WithMapping(usecase.ErrNoItemsFound, http.StatusNotFound, itemsNotFoundMessage).
		WithMapping(usecase.ErrMenuNotSaved, http.StatusBadRequest, menuNotSavedMessage)

	return &Handler{resolver: resolver, mapper: mapper}
}

// Register mounts the item routes on an authenticated group.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/restaurant/items/:restaurantid", h.getItemsByRestaurantID)
	g.GET("/items/name/:name", h.getItemsByName)
	g.POST("/item", h.addItem)
}

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

func (h *Handler) getItemsByRestaurantID(c echo.Context) error {
	restaurantID, err := strconv.ParseInt(c.Param("restaurantid"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "restaurantid must be an integer")
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.resolver.ItemsByRestaurantID(c.Request().Context(), restaurantID, page)
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) getItemsByName(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.resolver.ItemsByName(c.Request().Context(), c.Param("name"), page)
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) addItem(c echo.Context) error {
	var req domain.ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, invalidRequestBodyErrMsg)
	}

	item, err := h.resolver.SaveItem(c.Request().Context(), req)
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.JSON(http.StatusOK, item)
}
