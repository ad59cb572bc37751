package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bizbot/internal/model"
)

// MemoryStore keeps everything in process memory. Data is lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int64]model.User
	userOrder []int64
	orders    []model.Order
	support   []model.SupportRequest
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[int64]model.User),
	}
}

func (s *MemoryStore) SaveUser(_ context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ChatID]; !exists {
		s.userOrder = append(s.userOrder, user.ChatID)
	}
	user.OrderIDs = nil
	s.users[user.ChatID] = user
	return nil
}

func (s *MemoryStore) User(_ context.Context, chatID int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[chatID]
	if !ok {
		return model.User{}, fmt.Errorf("user %d: %w", chatID, ErrNotFound)
	}
	user.OrderIDs = s.orderIDsLocked(chatID)
	return user, nil
}

func (s *MemoryStore) TouchUser(_ context.Context, chatID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[chatID]
	if !ok {
		return nil
	}
	user.LastActivity = at
	s.users[chatID] = user
	return nil
}

func (s *MemoryStore) Users(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		user := s.users[id]
		user.OrderIDs = s.orderIDsLocked(id)
		out = append(out, user)
	}
	return out, nil
}

func (s *MemoryStore) AddOrder(_ context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	return nil
}

func (s *MemoryStore) Orders(_ context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) AddSupportRequest(_ context.Context, req model.SupportRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.support = append(s.support, req)
	return nil
}

func (s *MemoryStore) SupportRequests(_ context.Context) ([]model.SupportRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.SupportRequest, len(s.support))
	copy(out, s.support)
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) orderIDsLocked(chatID int64) []string {
	var ids []string
	for _, o := range s.orders {
		if o.CustomerID == chatID {
			ids = append(ids, o.ID)
		}
	}
	return ids
}
