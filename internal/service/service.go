package service

import (
	"context"
	"time"

	"grub-pool/internal/model"
)

// MenuService defines operations for menu item management.
type MenuService interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Get(ctx context.Context, id int) (*model.MenuItem, error)
	Create(ctx context.Context, insert *model.InsertMenuItem) (*model.MenuItem, error)
	Update(ctx context.Context, id int, update *model.UpdateMenuItem) (*model.MenuItem, error)

	// Delete returns model.ErrMenuItemNotFound when no such item exists.
	Delete(ctx context.Context, id int) error
}

// SessionService owns the order-session lifecycle: creation with a
// server-generated shareable link, lookup by id or link, and the one-way
// finalization transition.
type SessionService interface {
	List(ctx context.Context) ([]model.OrderSession, error)
	Get(ctx context.Context, id int) (*model.OrderSession, error)
	GetByLink(ctx context.Context, link string) (*model.OrderSession, error)
	Create(ctx context.Context, insert *model.InsertOrderSession) (*model.OrderSession, error)
	Finalize(ctx context.Context, id int) (*model.OrderSession, error)

	// ShareQR renders a PNG QR code of the session's shareable URL.
	ShareQR(ctx context.Context, id int) ([]byte, error)
}

// OrderService defines operations for placing and managing orders.
type OrderService interface {
	ListBySession(ctx context.Context, sessionID int) ([]model.Order, error)
	Create(ctx context.Context, insert *model.InsertOrder) (*model.Order, error)
	Delete(ctx context.Context, id int) error
	SetPayment(ctx context.Context, id int, isPaid bool) (*model.Order, error)
}

// StatsService is the aggregation engine. Every call recomputes from the
// current order rows; nothing is cached.
type StatsService interface {
	SessionStats(ctx context.Context, sessionID int) (*model.SessionStats, error)
	SessionSummary(ctx context.Context, sessionID int) ([]model.CustomerSummary, error)
	OrdersByDateRange(ctx context.Context, start, end time.Time) (*model.DateRangeReport, error)
}
