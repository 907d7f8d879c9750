package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// UserHandler handles account administration endpoints. All routes except the
// admin-flag check are behind the full admin gate; the admin-flag check is
// behind the ownership gate instead.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every registered user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// AdminFlag reports whether the caller's own account is an admin. The gate
// has already confirmed the path email equals the authenticated email, so a
// guest asking about themselves gets {"admin": false}, not a 403.
//
// @Summary      Check own admin flag
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email (must match the token)"
// @Success      200    {object}  adminFlagResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/v1/users/admin/{email} [get]
func (h *UserHandler) AdminFlag(c echo.Context) error {
	email, err := claimsEmail(c)
	if err != nil {
		return err
	}

	isAdmin, err := h.userService.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminFlagResponse{Admin: isAdmin})
}

// Promote elevates an existing user to admin.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id}/role [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	if err := h.userService.PromoteToAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user account.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
