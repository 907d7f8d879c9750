package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// AddCartItemInput carries the data needed to place a menu item in a cart.
// Email always comes from the authenticated claims, never from the payload.
type AddCartItemInput struct {
	Email      string
	MenuItemID string
}

// CartService defines use-case operations for shopping carts.
type CartService interface {
	ListCart(ctx context.Context, email string) ([]*domain.CartItem, error)
	AddItem(ctx context.Context, in AddCartItemInput) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, id string) error
}
