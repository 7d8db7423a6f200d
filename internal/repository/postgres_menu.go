package repository

import (
	"context"
	"fmt"

	"grub-pool/internal/model"

	"github.com/jackc/pgx/v5"
)

const menuItemColumns = `id, name, description, price::text, category, image_url, is_available`

func (s *postgresStore) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.IsAvailable); err != nil {
			s.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

func (s *postgresStore) GetMenuItem(ctx context.Context, id int) (*model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE id = $1
	`

	var m model.MenuItem
	err := s.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.IsAvailable)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Int("menu_item_id", id).Msg("menu item not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Int("menu_item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &m, nil
}

func (s *postgresStore) CreateMenuItem(ctx context.Context, insert *model.InsertMenuItem) (*model.MenuItem, error) {
	query := `
		INSERT INTO menu_items (name, description, price, category, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + menuItemColumns + `
	`

	available := true
	if insert.IsAvailable != nil {
		available = *insert.IsAvailable
	}

	var m model.MenuItem
	err := s.pool.QueryRow(ctx, query,
		insert.Name, insert.Description, insert.Price, insert.Category, insert.ImageURL, available,
	).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.IsAvailable)
	if err != nil {
		s.logger.Error().Err(err).Str("name", insert.Name).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Debug().Int("menu_item_id", m.ID).Msg("menu item created")

	return &m, nil
}

func (s *postgresStore) UpdateMenuItem(ctx context.Context, id int, update *model.UpdateMenuItem) (*model.MenuItem, error) {
	query := `
		UPDATE menu_items
		SET name         = COALESCE($2, name),
		    description  = COALESCE($3, description),
		    price        = COALESCE($4::decimal, price),
		    category     = COALESCE($5, category),
		    image_url    = COALESCE($6, image_url),
		    is_available = COALESCE($7, is_available)
		WHERE id = $1
		RETURNING ` + menuItemColumns + `
	`

	var m model.MenuItem
	err := s.pool.QueryRow(ctx, query,
		id, update.Name, update.Description, update.Price, update.Category, update.ImageURL, update.IsAvailable,
	).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.IsAvailable)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Int("menu_item_id", id).Msg("menu item not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Int("menu_item_id", id).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return &m, nil
}

func (s *postgresStore) DeleteMenuItem(ctx context.Context, id int) (bool, error) {
	// Hard delete: orders referencing this item keep a dangling reference.
	tag, err := s.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		s.logger.Error().Err(err).Int("menu_item_id", id).Msg("failed to delete menu item")
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
