package integration

import (
	"context"
	"testing"
	"time"

	"grub-pool/internal/model"
	"grub-pool/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPostgresStore_MenuItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	store := repository.NewPostgresStore(testDB.Pool, zerolog.Nop())

	ctx := context.Background()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := store.CreateMenuItem(ctx, &model.InsertMenuItem{
			Name:        "Pad Thai",
			Description: "Rice noodles with peanuts",
			Price:       "12.90",
			Category:    "Mains",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Greater(t, created.ID, 0)
		assert.Equal(t, "12.90", created.Price)
		assert.Nil(t, created.ImageURL)
		assert.True(t, created.IsAvailable)

		got, err := store.GetMenuItem(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created, got)
	})

	t.Run("Get returns nil for unknown id", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := store.GetMenuItem(ctx, 12345)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("List returns items ordered by id", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		for _, name := range []string{"Spring Rolls", "Tiramisu", "Caesar Salad"} {
			_, err := store.CreateMenuItem(ctx, &model.InsertMenuItem{
				Name:        name,
				Description: "test item",
				Price:       "5.50",
				Category:    "Test",
			})
			require.NoError(t, err)
		}

		items, err := store.ListMenuItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Spring Rolls", items[0].Name)
		assert.Equal(t, "Tiramisu", items[1].Name)
		assert.Equal(t, "Caesar Salad", items[2].Name)
		assert.Less(t, items[0].ID, items[1].ID)
		assert.Less(t, items[1].ID, items[2].ID)
	})

	t.Run("Update changes only provided fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := store.CreateMenuItem(ctx, &model.InsertMenuItem{
			Name:        "Margherita Pizza",
			Description: "Tomato and mozzarella",
			Price:       "11.50",
			Category:    "Mains",
		})
		require.NoError(t, err)

		updated, err := store.UpdateMenuItem(ctx, created.ID, &model.UpdateMenuItem{
			Price:       strPtr("13.00"),
			IsAvailable: boolPtr(false),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "13.00", updated.Price)
		assert.False(t, updated.IsAvailable)
		assert.Equal(t, "Margherita Pizza", updated.Name)
		assert.Equal(t, "Tomato and mozzarella", updated.Description)
	})

	t.Run("Update returns nil for unknown id", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := store.UpdateMenuItem(ctx, 12345, &model.UpdateMenuItem{
			Name: strPtr("Ghost Item"),
		})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Delete reports removal and is permanent", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := store.CreateMenuItem(ctx, &model.InsertMenuItem{
			Name:        "Chicken Burrito",
			Description: "Grilled chicken wrap",
			Price:       "10.90",
			Category:    "Mains",
		})
		require.NoError(t, err)

		deleted, err := store.DeleteMenuItem(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteMenuItem(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := store.GetMenuItem(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPostgresStore_Sessions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	store := repository.NewPostgresStore(testDB.Pool, zerolog.Nop())

	ctx := context.Background()

	t.Run("Create and lookup by id and link", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		link := uuid.NewString()
		limit := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)

		created, err := store.CreateSession(ctx, &model.InsertOrderSession{
			Name:       "Friday lunch",
			Restaurant: "Thai Palace",
			TimeLimit:  &limit,
		}, link)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, link, created.SessionLink)
		assert.True(t, created.IsActive)
		assert.Nil(t, created.FinalizedAt)
		require.NotNil(t, created.TimeLimit)
		assert.True(t, created.TimeLimit.Equal(limit))

		byID, err := store.GetSession(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, created.ID, byID.ID)

		byLink, err := store.GetSessionByLink(ctx, link)
		require.NoError(t, err)
		require.NotNil(t, byLink)
		assert.Equal(t, created.ID, byLink.ID)
	})

	t.Run("Lookup by unknown link returns nil", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := store.GetSessionByLink(ctx, "no-such-link")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Finalize deactivates once and is idempotent", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := store.CreateSession(ctx, &model.InsertOrderSession{
			Name:       "Team dinner",
			Restaurant: "Luigi's",
		}, uuid.NewString())
		require.NoError(t, err)

		finalized, err := store.FinalizeSession(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, finalized)
		assert.False(t, finalized.IsActive)
		require.NotNil(t, finalized.FinalizedAt)

		again, err := store.FinalizeSession(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.False(t, again.IsActive)
		require.NotNil(t, again.FinalizedAt)
		assert.True(t, again.FinalizedAt.Equal(*finalized.FinalizedAt))
	})

	t.Run("Finalize unknown session returns nil", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := store.FinalizeSession(ctx, 12345)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPostgresStore_Orders(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	store := repository.NewPostgresStore(testDB.Pool, zerolog.Nop())

	ctx := context.Background()

	createSession := func(t *testing.T) *model.OrderSession {
		t.Helper()
		sess, err := store.CreateSession(ctx, &model.InsertOrderSession{
			Name:       "Lunch run",
			Restaurant: "Thai Palace",
		}, uuid.NewString())
		require.NoError(t, err)
		return sess
	}

	t.Run("Create and list by session", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		sess := createSession(t)

		for _, name := range []string{"Ann", "Bo"} {
			_, err := store.CreateOrder(ctx, &model.InsertOrder{
				SessionID:    sess.ID,
				CustomerName: name,
				MenuItemID:   1,
				Quantity:     2,
				UnitPrice:    "12.90",
				TotalPrice:   "25.80",
			})
			require.NoError(t, err)
		}

		orders, err := store.GetOrdersBySession(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "Ann", orders[0].CustomerName)
		assert.Equal(t, "25.80", orders[0].TotalPrice)
		assert.False(t, orders[0].IsPaid)
	})

	t.Run("Stored prices survive verbatim", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		sess := createSession(t)

		// The total is deliberately inconsistent with quantity * unit price;
		// the store persists what it was given.
		created, err := store.CreateOrder(ctx, &model.InsertOrder{
			SessionID:    sess.ID,
			CustomerName: "Ann",
			MenuItemID:   1,
			Quantity:     3,
			UnitPrice:    "5.50",
			TotalPrice:   "99.99",
		})
		require.NoError(t, err)
		assert.Equal(t, "99.99", created.TotalPrice)

		got, err := store.GetOrder(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "5.50", got.UnitPrice)
		assert.Equal(t, "99.99", got.TotalPrice)
	})

	t.Run("Orders keep dangling menu item references", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		sess := createSession(t)

		item, err := store.CreateMenuItem(ctx, &model.InsertMenuItem{
			Name:        "Tiramisu",
			Description: "Coffee-soaked dessert",
			Price:       "6.50",
			Category:    "Desserts",
		})
		require.NoError(t, err)

		order, err := store.CreateOrder(ctx, &model.InsertOrder{
			SessionID:    sess.ID,
			CustomerName: "Ann",
			MenuItemID:   item.ID,
			Quantity:     1,
			UnitPrice:    "6.50",
			TotalPrice:   "6.50",
		})
		require.NoError(t, err)

		deleted, err := store.DeleteMenuItem(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := store.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, item.ID, got.MenuItemID)
	})

	t.Run("UpdateOrderPayment flips and returns the order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		sess := createSession(t)

		order, err := store.CreateOrder(ctx, &model.InsertOrder{
			SessionID:    sess.ID,
			CustomerName: "Bo",
			MenuItemID:   1,
			Quantity:     1,
			UnitPrice:    "8.90",
			TotalPrice:   "8.90",
		})
		require.NoError(t, err)

		updated, err := store.UpdateOrderPayment(ctx, order.ID, true)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.IsPaid)

		updated, err = store.UpdateOrderPayment(ctx, order.ID, false)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.IsPaid)
	})

	t.Run("UpdateOrderPayment returns nil for unknown order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := store.UpdateOrderPayment(ctx, 12345, true)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Delete reports removal", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		sess := createSession(t)

		order, err := store.CreateOrder(ctx, &model.InsertOrder{
			SessionID:    sess.ID,
			CustomerName: "Cy",
			MenuItemID:   1,
			Quantity:     1,
			UnitPrice:    "5.50",
			TotalPrice:   "5.50",
		})
		require.NoError(t, err)

		deleted, err := store.DeleteOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Date range is inclusive of both bounds", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		sess := createSession(t)

		before := time.Now().UTC()
		_, err := store.CreateOrder(ctx, &model.InsertOrder{
			SessionID:    sess.ID,
			CustomerName: "Ann",
			MenuItemID:   1,
			Quantity:     1,
			UnitPrice:    "5.50",
			TotalPrice:   "5.50",
		})
		require.NoError(t, err)
		after := time.Now().UTC()

		orders, err := store.GetOrdersByDateRange(ctx, before, after)
		require.NoError(t, err)
		assert.Len(t, orders, 1)

		orders, err = store.GetOrdersByDateRange(ctx, after.Add(time.Hour), after.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestPostgresStore_Users(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	store := repository.NewPostgresStore(testDB.Pool, zerolog.Nop())

	ctx := context.Background()

	t.Run("Create and lookup by id and username", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := store.CreateUser(ctx, &model.InsertUser{
			Username: "organizer",
			Password: "hunter2",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Greater(t, created.ID, 0)

		byID, err := store.GetUser(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "organizer", byID.Username)

		byName, err := store.GetUserByUsername(ctx, "organizer")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, created.ID, byName.ID)
	})

	t.Run("Unknown username returns nil", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := store.GetUserByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
