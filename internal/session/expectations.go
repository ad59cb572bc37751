package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"bizbot/internal/model"
	"bizbot/pkg/redis"
)

// ExpectationStore holds at most one pending expectation per chat.
type ExpectationStore interface {
	Set(ctx context.Context, chatID int64, e model.Expectation) error
	// Consume returns the pending expectation and clears it in one step.
	Consume(ctx context.Context, chatID int64) (model.Expectation, error)
	Peek(ctx context.Context, chatID int64) (model.Expectation, error)
	Clear(ctx context.Context, chatID int64) error
}

type MemoryExpectations struct {
	mu      sync.Mutex
	pending map[int64]model.Expectation
}

func NewMemoryExpectations() *MemoryExpectations {
	return &MemoryExpectations{pending: make(map[int64]model.Expectation)}
}

func (m *MemoryExpectations) Set(_ context.Context, chatID int64, e model.Expectation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e == model.ExpectNone {
		delete(m.pending, chatID)
		return nil
	}
	m.pending[chatID] = e
	return nil
}

func (m *MemoryExpectations) Consume(_ context.Context, chatID int64) (model.Expectation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.pending[chatID]
	if !ok {
		return model.ExpectNone, nil
	}
	delete(m.pending, chatID)
	return e, nil
}

func (m *MemoryExpectations) Peek(_ context.Context, chatID int64) (model.Expectation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pending[chatID], nil
}

func (m *MemoryExpectations) Clear(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.pending, chatID)
	return nil
}

type keyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetDel(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisExpectations keeps expectations under expect:<chat_id>. Keys expire
// after ttl, so an expectation that is never fulfilled does not live forever.
type RedisExpectations struct {
	kv  keyValue
	ttl time.Duration
}

func NewRedisExpectations(client *redis.Client) *RedisExpectations {
	return &RedisExpectations{kv: client, ttl: client.TTL()}
}

func expectationKey(chatID int64) string {
	return "expect:" + strconv.FormatInt(chatID, 10)
}

func (r *RedisExpectations) Set(ctx context.Context, chatID int64, e model.Expectation) error {
	if e == model.ExpectNone {
		return r.Clear(ctx, chatID)
	}
	if err := r.kv.Set(ctx, expectationKey(chatID), []byte(e.String()), r.ttl); err != nil {
		return fmt.Errorf("failed to set expectation: %w", err)
	}
	return nil
}

func (r *RedisExpectations) Consume(ctx context.Context, chatID int64) (model.Expectation, error) {
	data, err := r.kv.GetDel(ctx, expectationKey(chatID))
	if err != nil {
		if redis.IsNil(err) {
			return model.ExpectNone, nil
		}
		return model.ExpectNone, fmt.Errorf("failed to consume expectation: %w", err)
	}
	return model.ParseExpectation(string(data)), nil
}

func (r *RedisExpectations) Peek(ctx context.Context, chatID int64) (model.Expectation, error) {
	data, err := r.kv.Get(ctx, expectationKey(chatID))
	if err != nil {
		if redis.IsNil(err) {
			return model.ExpectNone, nil
		}
		return model.ExpectNone, fmt.Errorf("failed to read expectation: %w", err)
	}
	return model.ParseExpectation(string(data)), nil
}

func (r *RedisExpectations) Clear(ctx context.Context, chatID int64) error {
	if err := r.kv.Del(ctx, expectationKey(chatID)); err != nil {
		return fmt.Errorf("failed to clear expectation: %w", err)
	}
	return nil
}
