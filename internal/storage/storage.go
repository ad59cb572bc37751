// Package storage owns users, orders and support requests.
package storage

import (
	"context"
	"errors"
	"time"

	"bizbot/internal/model"
)

var ErrNotFound = errors.New("not found")

// Store is the single owner of bot data. Users, Orders and SupportRequests
// return items in insertion order. A user's OrderIDs are derived from the
// orders collection.
type Store interface {
	SaveUser(ctx context.Context, user model.User) error
	User(ctx context.Context, chatID int64) (model.User, error)
	TouchUser(ctx context.Context, chatID int64, at time.Time) error
	Users(ctx context.Context) ([]model.User, error)

	AddOrder(ctx context.Context, order model.Order) error
	Orders(ctx context.Context) ([]model.Order, error)

	AddSupportRequest(ctx context.Context, req model.SupportRequest) error
	SupportRequests(ctx context.Context) ([]model.SupportRequest, error)

	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PostgresStorage)(nil)
)
