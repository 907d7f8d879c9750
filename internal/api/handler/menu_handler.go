package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// MenuHandler handles the menu catalog. Reads are public; writes are behind
// the admin gate.
type MenuHandler struct {
	menuService ports.MenuService
}

func NewMenuHandler(menuService ports.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns the menu, optionally filtered by category.
//
// @Summary      List menu items
// @Tags         menus
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {array}   domain.MenuItem
// @Router       /api/v1/menus [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menuService.ListMenu(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns one menu item by id.
//
// @Summary      Get a menu item
// @Tags         menus
// @Produce      json
// @Param        id  path      string  true  "Menu item id"
// @Success      200  {object}  domain.MenuItem
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/menus/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.menuService.GetMenuItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create adds a dish to the menu.
//
// @Summary      Create a menu item
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMenuItemRequest  true  "Menu item"
// @Success      201   {object}  domain.MenuItem
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/menus [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.menuService.CreateMenuItem(c.Request().Context(), ports.CreateMenuItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update patches a menu item; absent fields are left untouched.
//
// @Summary      Update a menu item
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Menu item id"
// @Param        body  body      updateMenuItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.MenuItem
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/menus/{id} [patch]
func (h *MenuHandler) Update(c echo.Context) error {
	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.menuService.UpdateMenuItem(c.Request().Context(), c.Param("id"), ports.UpdateMenuItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a menu item. Payments that reference it keep their record;
// reporting simply drops the dangling reference.
//
// @Summary      Delete a menu item
// @Tags         menus
// @Security     BearerAuth
// @Param        id  path  string  true  "Menu item id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/menus/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.menuService.DeleteMenuItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
