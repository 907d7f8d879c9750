package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// tokenTTL is the fixed lifetime of an issued token. There is no revocation:
// a lost token remains valid until it expires naturally.
const tokenTTL = time.Hour

// tokenClaims is the JWT payload. Only the email identifies the caller; role
// is intentionally absent and always resolved against the user store.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed identity tokens. The signing
// secret is injected once at construction and never read from the environment
// during request handling.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue produces a signed token for email expiring one hour from now.
func (s *TokenService) Issue(email string) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(tokenTTL)

	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify parses and validates a signed token, returning the embedded claims
// unchanged. An expired token always reports domain.ErrTokenExpired, even
// though its signature is also checked; signature failures on fresh tokens
// report domain.ErrTokenSignature; anything unparseable reports
// domain.ErrTokenMalformed.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	var claims tokenClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenSignature
	}

	out := &domain.Claims{Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
