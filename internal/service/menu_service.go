package service

import (
	"context"
	"fmt"

	"grub-pool/internal/model"
	"grub-pool/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	store  repository.Store
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(store repository.Store, logger zerolog.Logger) MenuService {
	return &menuService{
		store:  store,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	return items, nil
}

func (s *menuService) Get(ctx context.Context, id int) (*model.MenuItem, error) {
	item, err := s.store.GetMenuItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuItemNotFound
	}
	return item, nil
}

func (s *menuService) Create(ctx context.Context, insert *model.InsertMenuItem) (*model.MenuItem, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}

	item, err := s.store.CreateMenuItem(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().
		Int("menu_item_id", item.ID).
		Str("name", item.Name).
		Msg("menu item created")

	return item, nil
}

func (s *menuService) Update(ctx context.Context, id int, update *model.UpdateMenuItem) (*model.MenuItem, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	item, err := s.store.UpdateMenuItem(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuItemNotFound
	}

	s.logger.Info().Int("menu_item_id", id).Msg("menu item updated")

	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id int) error {
	deleted, err := s.store.DeleteMenuItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if !deleted {
		return model.ErrMenuItemNotFound
	}

	s.logger.Info().Int("menu_item_id", id).Msg("menu item deleted")

	return nil
}
