package service

import (
	"context"
	"time"

	"grub-pool/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of repository.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockStore) GetMenuItem(ctx context.Context, id int) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockStore) CreateMenuItem(ctx context.Context, item *model.InsertMenuItem) (*model.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockStore) UpdateMenuItem(ctx context.Context, id int, item *model.UpdateMenuItem) (*model.MenuItem, error) {
	args := m.Called(ctx, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockStore) DeleteMenuItem(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) ListSessions(ctx context.Context) ([]model.OrderSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderSession), args.Error(1)
}

func (m *MockStore) GetSession(ctx context.Context, id int) (*model.OrderSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSession), args.Error(1)
}

func (m *MockStore) GetSessionByLink(ctx context.Context, link string) (*model.OrderSession, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSession), args.Error(1)
}

func (m *MockStore) CreateSession(ctx context.Context, session *model.InsertOrderSession, link string) (*model.OrderSession, error) {
	args := m.Called(ctx, session, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSession), args.Error(1)
}

func (m *MockStore) FinalizeSession(ctx context.Context, id int) (*model.OrderSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSession), args.Error(1)
}

func (m *MockStore) GetOrdersBySession(ctx context.Context, sessionID int) ([]model.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockStore) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockStore) CreateOrder(ctx context.Context, order *model.InsertOrder) (*model.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockStore) DeleteOrder(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) UpdateOrderPayment(ctx context.Context, id int, isPaid bool) (*model.Order, error) {
	args := m.Called(ctx, id, isPaid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockStore) GetOrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStore) CreateUser(ctx context.Context, user *model.InsertUser) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
