package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/api/metrics"
	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// claimsKey is the echo context key the authenticated claims live under.
const claimsKey = "auth_claims"

// SetClaims attaches verified claims to the request context. Exported for
// tests; production code only ever goes through the Authenticated stage.
func SetClaims(c echo.Context, claims *domain.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFrom returns the claims attached by the Authenticated stage.
func ClaimsFrom(c echo.Context) (*domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}

// Gate is the request authorization layer. Stage ordering is enforced at
// route-registration time: the admin and owner stages are unexported and only
// reachable through AdminOnly and OwnerOnly, which always prepend the
// Authenticated stage.
type Gate struct {
	tokens ports.TokenVerifier
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewGate(tokens ports.TokenVerifier, users ports.UserRepository, log zerolog.Logger) *Gate {
	return &Gate{tokens: tokens, users: users, log: log}
}

// Authenticated is stage A: bearer-token extraction and cryptographic
// verification. It performs no external I/O. Any failure, including an
// expired token, is a 401.
func (g *Gate) Authenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := g.tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			SetClaims(c, claims)
			return next(c)
		}
	}
}

// AdminOnly returns the full chain for admin-gated routes. Register with
// e.GET(path, handler, gate.AdminOnly()...).
func (g *Gate) AdminOnly() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.Authenticated(), g.admin()}
}

// OwnerOnly returns the chain for routes scoped to the caller's own resource:
// the path parameter named param must equal the authenticated email. The
// check is pure ownership and ignores role entirely.
func (g *Gate) OwnerOnly(param string) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.Authenticated(), g.owner(param)}
}

// admin is stage B: one user-store read to confirm the elevated role. A
// missing user, a guest role, and a store failure are all the same 403 so a
// probing caller cannot enumerate accounts.
func (g *Gate) admin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := g.users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				if !errors.Is(err, domain.ErrUserNotFound) {
					g.log.Warn().Err(err).Str("email", claims.Email).Msg("admin check: user lookup failed")
				}
				metrics.AuthFailuresTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			if !user.IsAdmin() {
				metrics.AuthFailuresTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}

func (g *Gate) owner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if c.Param(param) != claims.Email {
				metrics.AuthFailuresTotal.WithLabelValues("owner").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
