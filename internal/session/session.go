// Package session tracks who a chat is and which free-text reply it owes us.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizbot/internal/model"
	"bizbot/internal/storage"
)

type UserStore interface {
	SaveUser(ctx context.Context, user model.User) error
	User(ctx context.Context, chatID int64) (model.User, error)
	TouchUser(ctx context.Context, chatID int64, at time.Time) error
}

type Manager struct {
	users        UserStore
	expectations ExpectationStore
}

func NewManager(users UserStore, expectations ExpectationStore) *Manager {
	return &Manager{users: users, expectations: expectations}
}

// StartSession stores the profile, replacing an existing one, and drops any
// pending expectation for the chat.
func (m *Manager) StartSession(ctx context.Context, user model.User) error {
	if err := m.users.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	if err := m.expectations.Clear(ctx, user.ChatID); err != nil {
		return fmt.Errorf("failed to reset expectation: %w", err)
	}
	return nil
}

func (m *Manager) SetExpectation(ctx context.Context, chatID int64, e model.Expectation) error {
	return m.expectations.Set(ctx, chatID, e)
}

func (m *Manager) ConsumeExpectation(ctx context.Context, chatID int64) (model.Expectation, error) {
	return m.expectations.Consume(ctx, chatID)
}

func (m *Manager) Peek(ctx context.Context, chatID int64) (model.Expectation, error) {
	return m.expectations.Peek(ctx, chatID)
}

// Touch records activity. Chats that never sent /start are ignored.
func (m *Manager) Touch(ctx context.Context, chatID int64, at time.Time) error {
	return m.users.TouchUser(ctx, chatID, at)
}

func (m *Manager) Profile(ctx context.Context, chatID int64) (model.User, error) {
	return m.users.User(ctx, chatID)
}

// EnsureProfile returns the stored profile, saving fallback first when the
// chat has none.
func (m *Manager) EnsureProfile(ctx context.Context, fallback model.User) (model.User, error) {
	user, err := m.users.User(ctx, fallback.ChatID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return model.User{}, err
	}

	if err := m.users.SaveUser(ctx, fallback); err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return fallback, nil
}
