package domain

import "errors"

// Token verification failures. The gate maps all three to 401.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrMenuNotFound       = errors.New("menu item not found")
	ErrCartItemNotFound   = errors.New("cart item not found")

	// ErrUnavailable signals a store I/O failure or timeout during a gate
	// lookup or an aggregation. Aggregations never return partial results:
	// on any underlying failure the whole report fails with this error.
	ErrUnavailable = errors.New("service unavailable")
)
