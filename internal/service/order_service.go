package service

import (
	"context"
	"fmt"

	"grub-pool/internal/model"
	"grub-pool/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	store  repository.Store
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(store repository.Store, logger zerolog.Logger) OrderService {
	return &orderService{
		store:  store,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

func (s *orderService) ListBySession(ctx context.Context, sessionID int) ([]model.Order, error) {
	orders, err := s.store.GetOrdersBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *orderService) Create(ctx context.Context, insert *model.InsertOrder) (*model.Order, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}

	order, err := s.store.CreateOrder(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int("order_id", order.ID).
		Int("session_id", order.SessionID).
		Str("customer", order.CustomerName).
		Msg("order created")

	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id int) error {
	deleted, err := s.store.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !deleted {
		return model.ErrOrderNotFound
	}

	s.logger.Info().Int("order_id", id).Msg("order deleted")

	return nil
}

func (s *orderService) SetPayment(ctx context.Context, id int, isPaid bool) (*model.Order, error) {
	order, err := s.store.UpdateOrderPayment(ctx, id, isPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to update order payment status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Int("order_id", id).
		Bool("is_paid", isPaid).
		Msg("order payment status updated")

	return order, nil
}
