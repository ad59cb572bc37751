package storage

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"bizbot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.User(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SaveUser(ctx, model.User{ChatID: 2, Name: "Bob"}))
	require.NoError(t, s.SaveUser(ctx, model.User{ChatID: 1, Name: "Alice"}))
	require.NoError(t, s.SaveUser(ctx, model.User{ChatID: 2, Name: "Bobby", Username: "bobby"}))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bobby", users[0].Name)
	assert.Equal(t, "Alice", users[1].Name)

	at := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.TouchUser(ctx, 1, at))
	require.NoError(t, s.TouchUser(ctx, 404, at))

	u, err := s.User(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, at, u.LastActivity)
}

func TestMemoryStore_OrdersAttachToUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SaveUser(ctx, model.User{ChatID: 7, Name: "Ivan"}))
	require.NoError(t, s.AddOrder(ctx, model.Order{ID: "a", CustomerID: 7, Status: model.StatusPending}))
	require.NoError(t, s.AddOrder(ctx, model.Order{ID: "b", CustomerID: 8, Status: model.StatusPending}))
	require.NoError(t, s.AddOrder(ctx, model.Order{ID: "c", CustomerID: 7, Status: model.StatusPending}))

	orders, err := s.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "c", orders[2].ID)

	u, err := s.User(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, u.OrderIDs)

	// Re-registering keeps the order history.
	require.NoError(t, s.SaveUser(ctx, model.User{ChatID: 7, Name: "Ivan P."}))
	u, err = s.User(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, u.OrderIDs)

	// Returned slices are copies.
	orders[0].ID = "mutated"
	again, err := s.Orders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].ID)
}

func TestMemoryStore_SupportRequests(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.AddSupportRequest(ctx, model.SupportRequest{ID: "s1", CustomerID: 1, Message: "help", Status: "new"}))

	reqs, err := s.SupportRequests(ctx)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "help", reqs[0].Message)
	assert.NoError(t, s.Close())
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
