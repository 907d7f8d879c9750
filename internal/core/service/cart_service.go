package service

import (
	"context"
	"time"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// CartService implements shopping-cart operations. Cart items denormalize the
// menu item's name, category, and price at the moment of adding, so the cart
// keeps rendering even if the dish is later edited or removed.
type CartService struct {
	carts ports.CartRepository
	menus ports.MenuRepository
}

func NewCartService(carts ports.CartRepository, menus ports.MenuRepository) *CartService {
	return &CartService{carts: carts, menus: menus}
}

func (s *CartService) ListCart(ctx context.Context, email string) ([]*domain.CartItem, error) {
	return s.carts.FindByEmail(ctx, email)
}

// AddItem places a menu item in the caller's cart. The menu item must exist.
func (s *CartService) AddItem(ctx context.Context, in ports.AddCartItemInput) (*domain.CartItem, error) {
	menuItem, err := s.menus.FindByID(ctx, in.MenuItemID)
	if err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		Email:      in.Email,
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		Category:   menuItem.Category,
		Price:      menuItem.Price,
		Image:      menuItem.Image,
		CreatedAt:  time.Now().UTC(),
	}

	return s.carts.Add(ctx, item)
}

func (s *CartService) RemoveItem(ctx context.Context, id string) error {
	return s.carts.Delete(ctx, id)
}
