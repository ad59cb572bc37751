package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bizbot/internal/config"
	"bizbot/internal/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := RunMigrations(ctx, db.DB, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStorage{
		db:     db,
		logger: logger,
	}, nil
}

func (s *PostgresStorage) SaveUser(ctx context.Context, user model.User) error {
	const query = `
        INSERT INTO users (chat_id, name, username, last_activity)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (chat_id) DO UPDATE
        SET name = EXCLUDED.name,
            username = EXCLUDED.username,
            last_activity = EXCLUDED.last_activity
    `

	if _, err := s.db.ExecContext(ctx, query, user.ChatID, user.Name, user.Username, user.LastActivity); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *PostgresStorage) User(ctx context.Context, chatID int64) (model.User, error) {
	const query = `SELECT chat_id, name, username, last_activity FROM users WHERE chat_id = $1`

	var user model.User
	if err := s.db.GetContext(ctx, &user, query, chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %d: %w", chatID, ErrNotFound)
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	ids, err := s.orderIDs(ctx, chatID)
	if err != nil {
		return model.User{}, err
	}
	user.OrderIDs = ids
	return user, nil
}

func (s *PostgresStorage) TouchUser(ctx context.Context, chatID int64, at time.Time) error {
	const query = `UPDATE users SET last_activity = $1 WHERE chat_id = $2`

	if _, err := s.db.ExecContext(ctx, query, at, chatID); err != nil {
		return fmt.Errorf("failed to touch user: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Users(ctx context.Context) ([]model.User, error) {
	const query = `SELECT chat_id, name, username, last_activity FROM users ORDER BY seq`

	var users []model.User
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	var refs []struct {
		ID         string `db:"id"`
		CustomerID int64  `db:"customer_id"`
	}
	if err := s.db.SelectContext(ctx, &refs, `SELECT id, customer_id FROM orders ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("failed to get order ids: %w", err)
	}

	byCustomer := make(map[int64][]string)
	for _, r := range refs {
		byCustomer[r.CustomerID] = append(byCustomer[r.CustomerID], r.ID)
	}
	for i := range users {
		users[i].OrderIDs = byCustomer[users[i].ChatID]
	}
	return users, nil
}

func (s *PostgresStorage) AddOrder(ctx context.Context, order model.Order) error {
	const query = `
        INSERT INTO orders (
            id, product_id, product_name, description, customer_id,
            customer_name, amount, category, kind, status, created_at
        ) VALUES (
            :id, :product_id, :product_name, :description, :customer_id,
            :customer_name, :amount, :category, :kind, :status, :created_at
        )
    `

	if _, err := s.db.NamedExecContext(ctx, query, order); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Orders(ctx context.Context) ([]model.Order, error) {
	const query = `
        SELECT id, product_id, product_name, description, customer_id,
               customer_name, amount, category, kind, status, created_at
        FROM orders
        ORDER BY seq
    `

	var orders []model.Order
	if err := s.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *PostgresStorage) AddSupportRequest(ctx context.Context, req model.SupportRequest) error {
	const query = `
        INSERT INTO support_requests (
            id, customer_id, customer_name, username, message, status, created_at
        ) VALUES (
            :id, :customer_id, :customer_name, :username, :message, :status, :created_at
        )
    `

	if _, err := s.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("failed to save support request: %w", err)
	}
	return nil
}

func (s *PostgresStorage) SupportRequests(ctx context.Context) ([]model.SupportRequest, error) {
	const query = `
        SELECT id, customer_id, customer_name, username, message, status, created_at
        FROM support_requests
        ORDER BY seq
    `

	var reqs []model.SupportRequest
	if err := s.db.SelectContext(ctx, &reqs, query); err != nil {
		return nil, fmt.Errorf("failed to fetch support requests: %w", err)
	}
	return reqs, nil
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresStorage) orderIDs(ctx context.Context, chatID int64) ([]string, error) {
	var ids []string
	if err := s.db.SelectContext(ctx, &ids, `SELECT id FROM orders WHERE customer_id = $1 ORDER BY seq`, chatID); err != nil {
		return nil, fmt.Errorf("failed to get order ids: %w", err)
	}
	return ids, nil
}
