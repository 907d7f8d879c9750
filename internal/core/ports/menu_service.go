package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// CreateMenuItemInput carries all data needed to add a dish to the menu.
type CreateMenuItemInput struct {
	Name     string
	Category string
	Price    float64
	Recipe   string
	Image    string
}

// UpdateMenuItemInput carries the mutable fields of a menu item. Nil pointers
// leave the stored value untouched.
type UpdateMenuItemInput struct {
	Name     *string
	Category *string
	Price    *float64
	Recipe   *string
	Image    *string
}

// MenuService defines use-case operations for the menu catalog.
type MenuService interface {
	ListMenu(ctx context.Context, category string) ([]*domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, in CreateMenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, in UpdateMenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}
