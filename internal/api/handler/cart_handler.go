package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// CartHandler handles the caller's shopping cart. All routes require
// authentication; the cart owner is always the authenticated email, never a
// client-supplied value.
type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// List returns the caller's cart items.
//
// @Summary      List own cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartItem
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/carts [get]
func (h *CartHandler) List(c echo.Context) error {
	email, err := claimsEmail(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.ListCart(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add places a menu item in the caller's cart.
//
// @Summary      Add a menu item to the cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Menu item reference"
// @Success      201   {object}  domain.CartItem
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	email, err := claimsEmail(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.cartService.AddItem(c.Request().Context(), ports.AddCartItemInput{
		Email:      email,
		MenuItemID: req.MenuItemID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Remove deletes one cart item.
//
// @Summary      Remove a cart item
// @Tags         carts
// @Security     BearerAuth
// @Param        id  path  string  true  "Cart item id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/carts/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	if _, err := claimsEmail(c); err != nil {
		return err
	}

	if err := h.cartService.RemoveItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
