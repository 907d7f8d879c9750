package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// MenuRepository defines persistence operations for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	// FindByIDs resolves a batch of ids in one query. Unknown ids are simply
	// absent from the result; callers decide what a missing item means.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.MenuItem, error)
	// List returns all menu items, optionally filtered by category.
	List(ctx context.Context, category string) ([]*domain.MenuItem, error)
	Update(ctx context.Context, id string, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
	// Count returns an approximate number of menu documents.
	Count(ctx context.Context) (int64, error)
}
