package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// MenuService implements catalog management.
type MenuService struct {
	menus ports.MenuRepository
	log   zerolog.Logger
}

func NewMenuService(menus ports.MenuRepository, log zerolog.Logger) *MenuService {
	return &MenuService{menus: menus, log: log}
}

// ListMenu returns the catalog, optionally restricted to one category.
func (s *MenuService) ListMenu(ctx context.Context, category string) ([]*domain.MenuItem, error) {
	return s.menus.List(ctx, category)
}

func (s *MenuService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menus.FindByID(ctx, id)
}

func (s *MenuService) CreateMenuItem(ctx context.Context, in ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	item := &domain.MenuItem{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Recipe:   in.Recipe,
		Image:    in.Image,
	}

	created, err := s.menus.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("menu_id", created.ID).Str("category", created.Category).Msg("menu item created")
	return created, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, id string, in ports.UpdateMenuItemInput) (*domain.MenuItem, error) {
	item, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Recipe != nil {
		item.Recipe = *in.Recipe
	}
	if in.Image != nil {
		item.Image = *in.Image
	}

	if err := s.menus.Update(ctx, id, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) error {
	return s.menus.Delete(ctx, id)
}
