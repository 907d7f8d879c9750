package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// CartRepository defines persistence operations for cart items.
type CartRepository interface {
	Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error)
	Delete(ctx context.Context, id string) error
	// DeleteMany removes a batch of cart items after checkout.
	DeleteMany(ctx context.Context, ids []string) error
}
