package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"grub-pool/internal/model"

	"github.com/rs/zerolog"
)

// memoryStore is the volatile backing: plain maps guarded by a mutex, with
// monotonic per-kind counters. Data is lost on restart. The store is
// constructed once at startup and handed to the services by reference.
type memoryStore struct {
	mu sync.Mutex

	menuItems map[int]model.MenuItem
	sessions  map[int]model.OrderSession
	orders    map[int]model.Order
	users     map[int]model.User

	menuItemID int
	sessionID  int
	orderID    int
	userID     int

	logger zerolog.Logger
}

// NewMemoryStore creates the in-process volatile store, pre-seeded with a
// fixed sample menu for demo convenience.
func NewMemoryStore(logger zerolog.Logger) Store {
	s := &memoryStore{
		menuItems: make(map[int]model.MenuItem),
		sessions:  make(map[int]model.OrderSession),
		orders:    make(map[int]model.Order),
		users:     make(map[int]model.User),
		logger:    logger.With().Str("store", "memory").Logger(),
	}
	s.seedMenu()
	return s
}

func (s *memoryStore) seedMenu() {
	samples := []model.InsertMenuItem{
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella and fresh basil", Price: "11.50", Category: "Pizza"},
		{Name: "Pad Thai", Description: "Rice noodles with peanuts, egg and lime", Price: "12.90", Category: "Noodles"},
		{Name: "Spring Rolls", Description: "Crispy vegetable rolls with sweet chili dip", Price: "5.50", Category: "Starters"},
		{Name: "Chicken Burrito", Description: "Grilled chicken, rice, beans and salsa", Price: "10.90", Category: "Mexican"},
		{Name: "Caesar Salad", Description: "Romaine, parmesan, croutons and dressing", Price: "8.90", Category: "Salads"},
		{Name: "Tiramisu", Description: "Espresso-soaked ladyfingers with mascarpone", Price: "6.50", Category: "Desserts"},
	}
	for i := range samples {
		s.menuItemID++
		s.menuItems[s.menuItemID] = model.MenuItem{
			ID:          s.menuItemID,
			Name:        samples[i].Name,
			Description: samples[i].Description,
			Price:       samples[i].Price,
			Category:    samples[i].Category,
			IsAvailable: true,
		}
	}
}

// Menu items

func (s *memoryStore) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.MenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *memoryStore) GetMenuItem(ctx context.Context, id int) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menuItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *memoryStore) CreateMenuItem(ctx context.Context, insert *model.InsertMenuItem) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.menuItemID++
	item := model.MenuItem{
		ID:          s.menuItemID,
		Name:        insert.Name,
		Description: insert.Description,
		Price:       insert.Price,
		Category:    insert.Category,
		ImageURL:    insert.ImageURL,
		IsAvailable: true,
	}
	if insert.IsAvailable != nil {
		item.IsAvailable = *insert.IsAvailable
	}
	s.menuItems[item.ID] = item
	return &item, nil
}

func (s *memoryStore) UpdateMenuItem(ctx context.Context, id int, update *model.UpdateMenuItem) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menuItems[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.ImageURL != nil {
		item.ImageURL = update.ImageURL
	}
	if update.IsAvailable != nil {
		item.IsAvailable = *update.IsAvailable
	}
	s.menuItems[id] = item
	return &item, nil
}

func (s *memoryStore) DeleteMenuItem(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuItems[id]; !ok {
		return false, nil
	}
	// Hard delete: orders referencing this item keep a dangling reference.
	delete(s.menuItems, id)
	return true, nil
}

// Order sessions

func (s *memoryStore) ListSessions(ctx context.Context) ([]model.OrderSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]model.OrderSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions, nil
}

func (s *memoryStore) GetSession(ctx context.Context, id int) (*model.OrderSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *memoryStore) GetSessionByLink(ctx context.Context, link string) (*model.OrderSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.SessionLink == link {
			return &sess, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) CreateSession(ctx context.Context, insert *model.InsertOrderSession, link string) (*model.OrderSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionID++
	sess := model.OrderSession{
		ID:          s.sessionID,
		Name:        insert.Name,
		Restaurant:  insert.Restaurant,
		SessionLink: link,
		IsActive:    true,
		TimeLimit:   insert.TimeLimit,
		CreatedAt:   time.Now().UTC(),
	}
	s.sessions[sess.ID] = sess
	return &sess, nil
}

func (s *memoryStore) FinalizeSession(ctx context.Context, id int) (*model.OrderSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if !sess.IsActive {
		return &sess, nil
	}
	now := time.Now().UTC()
	sess.IsActive = false
	sess.FinalizedAt = &now
	s.sessions[id] = sess
	return &sess, nil
}

// Orders

func (s *memoryStore) GetOrdersBySession(ctx context.Context, sessionID int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	for _, o := range s.orders {
		if o.SessionID == sessionID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *memoryStore) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *memoryStore) CreateOrder(ctx context.Context, insert *model.InsertOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderID++
	o := model.Order{
		ID:           s.orderID,
		SessionID:    insert.SessionID,
		CustomerName: insert.CustomerName,
		MenuItemID:   insert.MenuItemID,
		Quantity:     insert.Quantity,
		UnitPrice:    insert.UnitPrice,
		TotalPrice:   insert.TotalPrice,
		IsPaid:       insert.IsPaid,
		CreatedAt:    time.Now().UTC(),
	}
	s.orders[o.ID] = o
	return &o, nil
}

func (s *memoryStore) DeleteOrder(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

func (s *memoryStore) UpdateOrderPayment(ctx context.Context, id int, isPaid bool) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	o.IsPaid = isPaid
	s.orders[id] = o
	return &o, nil
}

func (s *memoryStore) GetOrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	for _, o := range s.orders {
		// Inclusive on both ends.
		if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// Users

func (s *memoryStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memoryStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) CreateUser(ctx context.Context, insert *model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	u := model.User{
		ID:       s.userID,
		Username: insert.Username,
		Password: insert.Password,
	}
	s.users[u.ID] = u
	return &u, nil
}
