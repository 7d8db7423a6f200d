package repository

import (
	"context"
	"fmt"

	"grub-pool/internal/model"

	"github.com/jackc/pgx/v5"
)

const sessionColumns = `id, name, restaurant, session_link, is_active, time_limit, created_at, finalized_at`

func (s *postgresStore) ListSessions(ctx context.Context) ([]model.OrderSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM order_sessions
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query order sessions")
		return nil, fmt.Errorf("failed to query order sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.OrderSession
	for rows.Next() {
		var os model.OrderSession
		if err := rows.Scan(&os.ID, &os.Name, &os.Restaurant, &os.SessionLink, &os.IsActive, &os.TimeLimit, &os.CreatedAt, &os.FinalizedAt); err != nil {
			s.logger.Error().Err(err).Msg("failed to scan order session row")
			return nil, fmt.Errorf("failed to scan order session: %w", err)
		}
		sessions = append(sessions, os)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating order session rows")
		return nil, fmt.Errorf("error iterating order sessions: %w", err)
	}

	return sessions, nil
}

func (s *postgresStore) GetSession(ctx context.Context, id int) (*model.OrderSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM order_sessions
		WHERE id = $1
	`

	var os model.OrderSession
	err := s.pool.QueryRow(ctx, query, id).Scan(&os.ID, &os.Name, &os.Restaurant, &os.SessionLink, &os.IsActive, &os.TimeLimit, &os.CreatedAt, &os.FinalizedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Int("session_id", id).Msg("order session not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Int("session_id", id).Msg("failed to query order session")
		return nil, fmt.Errorf("failed to query order session: %w", err)
	}

	return &os, nil
}

func (s *postgresStore) GetSessionByLink(ctx context.Context, link string) (*model.OrderSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM order_sessions
		WHERE session_link = $1
	`

	var os model.OrderSession
	err := s.pool.QueryRow(ctx, query, link).Scan(&os.ID, &os.Name, &os.Restaurant, &os.SessionLink, &os.IsActive, &os.TimeLimit, &os.CreatedAt, &os.FinalizedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Str("session_link", link).Msg("order session not found by link")
			return nil, nil
		}
		s.logger.Error().Err(err).Str("session_link", link).Msg("failed to query order session by link")
		return nil, fmt.Errorf("failed to query order session by link: %w", err)
	}

	return &os, nil
}

func (s *postgresStore) CreateSession(ctx context.Context, insert *model.InsertOrderSession, link string) (*model.OrderSession, error) {
	query := `
		INSERT INTO order_sessions (name, restaurant, session_link, is_active, time_limit)
		VALUES ($1, $2, $3, TRUE, $4)
		RETURNING ` + sessionColumns + `
	`

	var os model.OrderSession
	err := s.pool.QueryRow(ctx, query, insert.Name, insert.Restaurant, link, insert.TimeLimit).
		Scan(&os.ID, &os.Name, &os.Restaurant, &os.SessionLink, &os.IsActive, &os.TimeLimit, &os.CreatedAt, &os.FinalizedAt)
	if err != nil {
		s.logger.Error().Err(err).Str("name", insert.Name).Msg("failed to create order session")
		return nil, fmt.Errorf("failed to create order session: %w", err)
	}

	s.logger.Debug().Int("session_id", os.ID).Msg("order session created")

	return &os, nil
}

func (s *postgresStore) FinalizeSession(ctx context.Context, id int) (*model.OrderSession, error) {
	// Only an active session is transitioned; a finalized one keeps its
	// original finalized_at and is returned unchanged.
	query := `
		UPDATE order_sessions
		SET is_active = FALSE, finalized_at = NOW()
		WHERE id = $1 AND is_active
		RETURNING ` + sessionColumns + `
	`

	var os model.OrderSession
	err := s.pool.QueryRow(ctx, query, id).Scan(&os.ID, &os.Name, &os.Restaurant, &os.SessionLink, &os.IsActive, &os.TimeLimit, &os.CreatedAt, &os.FinalizedAt)
	if err == nil {
		s.logger.Debug().Int("session_id", id).Msg("order session finalized")
		return &os, nil
	}
	if err != pgx.ErrNoRows {
		s.logger.Error().Err(err).Int("session_id", id).Msg("failed to finalize order session")
		return nil, fmt.Errorf("failed to finalize order session: %w", err)
	}

	return s.GetSession(ctx, id)
}
