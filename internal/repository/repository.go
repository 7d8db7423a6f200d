package repository

import (
	"context"
	"time"

	"grub-pool/internal/model"
)

// Store is the data-access contract shared by every backing. Lookups return
// (nil, nil) when the entity does not exist; deletes report whether a row was
// removed. Identifiers are assigned by the store, monotonically per entity
// kind, and never reused.
type Store interface {
	// Menu items
	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *model.InsertMenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, item *model.UpdateMenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) (bool, error)

	// Order sessions. The link token is generated by the caller; the store
	// only persists it. FinalizeSession is a no-op on an already finalized
	// session and returns its current state.
	ListSessions(ctx context.Context) ([]model.OrderSession, error)
	GetSession(ctx context.Context, id int) (*model.OrderSession, error)
	GetSessionByLink(ctx context.Context, link string) (*model.OrderSession, error)
	CreateSession(ctx context.Context, session *model.InsertOrderSession, link string) (*model.OrderSession, error)
	FinalizeSession(ctx context.Context, id int) (*model.OrderSession, error)

	// Orders
	GetOrdersBySession(ctx context.Context, sessionID int) ([]model.Order, error)
	GetOrder(ctx context.Context, id int) (*model.Order, error)
	CreateOrder(ctx context.Context, order *model.InsertOrder) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int) (bool, error)
	UpdateOrderPayment(ctx context.Context, id int, isPaid bool) (*model.Order, error)
	GetOrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error)

	// Users
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.InsertUser) (*model.User, error)
}
