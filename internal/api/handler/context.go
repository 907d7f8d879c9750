package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/api/middleware"
)

// claimsEmail extracts the authenticated email injected by the gate's
// Authenticated stage and fast-fails before any service call. Presence of
// claims proves the stage ran; a registered route can only lose them through
// a mis-registration, which this guard turns into a 401 instead of acting on
// an empty identity.
func claimsEmail(c echo.Context) (string, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.Email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims.Email, nil
}
