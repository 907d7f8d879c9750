package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// UserService defines use-case operations on user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// IsAdmin reports whether the user registered under email holds the admin
	// role. An unknown email is not an error: it simply reports false.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// PromoteToAdmin elevates an existing user. Unknown ids fail with
	// domain.ErrUserNotFound; elevation never creates an account.
	PromoteToAdmin(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}
