package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/service"
)

type stubUserRepo struct {
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
}

func (r *stubUserRepo) Create(context.Context, *domain.User) (*domain.User, error) { return nil, nil }
func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}
func (r *stubUserRepo) FindByID(context.Context, string) (*domain.User, error) { return nil, nil }
func (r *stubUserRepo) FindAll(context.Context) ([]*domain.User, error)        { return nil, nil }
func (r *stubUserRepo) UpdateRole(context.Context, string, string) error       { return nil }
func (r *stubUserRepo) Delete(context.Context, string) error                   { return nil }
func (r *stubUserRepo) Count(context.Context) (int64, error)                   { return 0, nil }

func newTestGate(findByEmail func(ctx context.Context, email string) (*domain.User, error)) *Gate {
	return NewGate(
		service.NewTokenService("secret"),
		&stubUserRepo{findByEmail: findByEmail},
		zerolog.Nop(),
	)
}

func issueToken(t *testing.T, email string) string {
	t.Helper()
	token, _, err := service.NewTokenService("secret").Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthenticated_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "alice@example.com"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gate := newTestGate(nil)
	called := false
	handler := gate.Authenticated()(func(c echo.Context) error {
		called = true
		claims, ok := ClaimsFrom(c)
		if !ok {
			t.Fatalf("claims not set")
		}
		if claims.Email != "alice@example.com" {
			t.Fatalf("unexpected email: %s", claims.Email)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticated_Rejections(t *testing.T) {
	expired := func() string {
		claims := jwt.MapClaims{
			"email": "alice@example.com",
			"iat":   time.Now().Add(-2 * time.Hour).Unix(),
			"exp":   time.Now().Add(-time.Hour).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return "Bearer " + signed
	}()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			gate := newTestGate(nil)
			handler := gate.Authenticated()(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

// run sends a request through the full AdminOnly chain.
func runAdminChain(t *testing.T, gate *Gate, token string) (*httptest.ResponseRecorder, int) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	calls := 0
	handler := echo.HandlerFunc(func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	})
	chain := gate.AdminOnly()
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, calls
}

func TestAdminOnly_AdminPassesOnce(t *testing.T) {
	gate := newTestGate(func(_ context.Context, email string) (*domain.User, error) {
		if email != "root@example.com" {
			t.Fatalf("unexpected lookup email: %s", email)
		}
		return &domain.User{Email: email, Role: domain.RoleAdmin}, nil
	})

	rec, calls := runAdminChain(t, gate, issueToken(t, "root@example.com"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("expected handler called exactly once, got %d", calls)
	}
}

func TestAdminOnly_GuestForbidden(t *testing.T) {
	gate := newTestGate(func(_ context.Context, email string) (*domain.User, error) {
		return &domain.User{Email: email, Role: domain.RoleGuest}, nil
	})

	rec, calls := runAdminChain(t, gate, issueToken(t, "alice@example.com"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if calls != 0 {
		t.Fatalf("handler should not run")
	}
}

func TestAdminOnly_UnknownUserForbidden(t *testing.T) {
	gate := newTestGate(func(context.Context, string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	})

	rec, _ := runAdminChain(t, gate, issueToken(t, "ghost@example.com"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminOnly_StoreErrorForbidden(t *testing.T) {
	gate := newTestGate(func(context.Context, string) (*domain.User, error) {
		return nil, errors.New("connection reset")
	})

	// A flaky store must read as 403, never as a 5xx that would reveal the
	// account exists.
	rec, _ := runAdminChain(t, gate, issueToken(t, "alice@example.com"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdmin_WithoutClaimsUnauthorized(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gate := newTestGate(func(context.Context, string) (*domain.User, error) {
		t.Fatalf("store must not be consulted without claims")
		return nil, nil
	})

	handler := gate.admin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOwnerOnly(t *testing.T) {
	cases := []struct {
		name       string
		tokenEmail string
		paramEmail string
		wantCode   int
	}{
		{"own resource", "alice@example.com", "alice@example.com", http.StatusOK},
		{"someone else's resource", "alice@example.com", "bob@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, tc.tokenEmail))
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("email")
			c.SetParamValues(tc.paramEmail)

			gate := newTestGate(nil)
			handler := echo.HandlerFunc(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			chain := gate.OwnerOnly("email")
			for i := len(chain) - 1; i >= 0; i-- {
				handler = chain[i](handler)
			}

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}
