package repository

import (
	"context"
	"fmt"
	"time"

	"grub-pool/internal/model"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, session_id, customer_name, menu_item_id, quantity, unit_price::text, total_price::text, is_paid, created_at`

func (s *postgresStore) scanOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.SessionID, &o.CustomerName, &o.MenuItemID, &o.Quantity, &o.UnitPrice, &o.TotalPrice, &o.IsPaid, &o.CreatedAt); err != nil {
			s.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

func (s *postgresStore) GetOrdersBySession(ctx context.Context, sessionID int) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE session_id = $1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Int("session_id", sessionID).Msg("failed to query orders by session")
		return nil, fmt.Errorf("failed to query orders by session: %w", err)
	}

	return s.scanOrders(rows)
}

func (s *postgresStore) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var o model.Order
	err := s.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.SessionID, &o.CustomerName, &o.MenuItemID, &o.Quantity, &o.UnitPrice, &o.TotalPrice, &o.IsPaid, &o.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

func (s *postgresStore) CreateOrder(ctx context.Context, insert *model.InsertOrder) (*model.Order, error) {
	// total_price is stored exactly as submitted, never recomputed.
	query := `
		INSERT INTO orders (session_id, customer_name, menu_item_id, quantity, unit_price, total_price, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + orderColumns + `
	`

	var o model.Order
	err := s.pool.QueryRow(ctx, query,
		insert.SessionID, insert.CustomerName, insert.MenuItemID, insert.Quantity, insert.UnitPrice, insert.TotalPrice, insert.IsPaid,
	).Scan(&o.ID, &o.SessionID, &o.CustomerName, &o.MenuItemID, &o.Quantity, &o.UnitPrice, &o.TotalPrice, &o.IsPaid, &o.CreatedAt)
	if err != nil {
		s.logger.Error().Err(err).Int("session_id", insert.SessionID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug().Int("order_id", o.ID).Int("session_id", o.SessionID).Msg("order created")

	return &o, nil
}

func (s *postgresStore) DeleteOrder(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to delete order")
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (s *postgresStore) UpdateOrderPayment(ctx context.Context, id int, isPaid bool) (*model.Order, error) {
	query := `
		UPDATE orders
		SET is_paid = $2
		WHERE id = $1
		RETURNING ` + orderColumns + `
	`

	var o model.Order
	err := s.pool.QueryRow(ctx, query, id, isPaid).Scan(&o.ID, &o.SessionID, &o.CustomerName, &o.MenuItemID, &o.Quantity, &o.UnitPrice, &o.TotalPrice, &o.IsPaid, &o.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to update order payment status")
		return nil, fmt.Errorf("failed to update order payment status: %w", err)
	}

	return &o, nil
}

func (s *postgresStore) GetOrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		s.logger.Error().Err(err).
			Time("start", start).
			Time("end", end).
			Msg("failed to query orders by date range")
		return nil, fmt.Errorf("failed to query orders by date range: %w", err)
	}

	return s.scanOrders(rows)
}
