package ports

import (
	"time"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// TokenIssuer mints signed identity tokens.
type TokenIssuer interface {
	Issue(email string) (token string, expiresAt time.Time, err error)
}

// TokenVerifier checks a signed token and returns the embedded claims.
// Failures are domain.ErrTokenMalformed, domain.ErrTokenExpired, or
// domain.ErrTokenSignature.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
