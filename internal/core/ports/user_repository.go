package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Reads are at least eventually consistent.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// UpdateRole changes the role of an existing user. It must not upsert:
	// an unknown id fails with domain.ErrUserNotFound.
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
	// Count returns an approximate number of user documents.
	Count(ctx context.Context) (int64, error)
}
