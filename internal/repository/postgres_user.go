package repository

import (
	"context"
	"fmt"

	"grub-pool/internal/model"

	"github.com/jackc/pgx/v5"
)

func (s *postgresStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	query := `SELECT id, username, password FROM users WHERE id = $1`

	var u model.User
	err := s.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		s.logger.Error().Err(err).Int("user_id", id).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

func (s *postgresStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password FROM users WHERE username = $1`

	var u model.User
	err := s.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to query user by username")
		return nil, fmt.Errorf("failed to query user by username: %w", err)
	}

	return &u, nil
}

func (s *postgresStore) CreateUser(ctx context.Context, insert *model.InsertUser) (*model.User, error) {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password
	`

	var u model.User
	err := s.pool.QueryRow(ctx, query, insert.Username, insert.Password).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("username", insert.Username).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &u, nil
}
