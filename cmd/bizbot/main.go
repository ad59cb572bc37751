package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bizbot/internal/bot"
	"bizbot/internal/catalog"
	"bizbot/internal/config"
	"bizbot/internal/notify"
	"bizbot/internal/session"
	"bizbot/internal/storage"
	"bizbot/pkg/logger"
	"bizbot/pkg/redis"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully")
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg, zapLogger)
	if err != nil {
		return err
	}
	defer store.Close()

	expectations, closeExpectations, err := openExpectations(ctx, cfg, zapLogger)
	if err != nil {
		return err
	}
	defer closeExpectations()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("failed to create telegram client: %w", err)
	}
	api.Debug = cfg.Debug

	zapLogger.Info("Bot configured",
		zap.String("bot", api.Self.UserName),
		zap.String("company", cfg.Company.Name),
		zap.String("admin_chat_id", cfg.AdminChatID),
		zap.Int("products", len(cat.Products)),
		zap.Int("faq", len(cat.FAQ)),
		zap.String("storage", cfg.StorageDriver),
		zap.String("sessions", cfg.SessionDriver),
		zap.Int("max_orders_per_day", cfg.Limits.MaxOrdersPerDay),
		zap.Int("max_support_requests_per_day", cfg.Limits.MaxSupportRequestsPerDay),
		zap.Int("message_length", cfg.Limits.MessageLength))

	if _, ok := cfg.AdminID(); !ok {
		zapLogger.Warn("ADMIN_CHAT_ID is not set, admin panel and notifications are disabled")
	}

	b := bot.New(bot.Deps{
		API:      api,
		Updates:  api,
		Sessions: session.NewManager(store, expectations),
		Store:    store,
		Catalog:  cat,
		Notifier: notify.New(api, cfg.AdminChatID, zapLogger),
		Config:   cfg,
		Logger:   zapLogger,
	})

	err = b.Start(ctx)

	reason := "updates_closed"
	if ctx.Err() != nil {
		reason = "signal"
	}
	zapLogger.Info("Bot is shutting down",
		zap.String("event", "bot_shutdown"),
		zap.String("reason", reason))

	return err
}

func openStore(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (storage.Store, error) {
	if cfg.StorageDriver == config.StoragePostgres {
		return storage.NewPostgresStorage(ctx, cfg.Database, zapLogger)
	}
	zapLogger.Info("Using in-memory storage, data is lost on restart")
	return storage.NewMemoryStore(), nil
}

func openExpectations(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (session.ExpectationStore, func(), error) {
	if cfg.SessionDriver != config.SessionRedis {
		return session.NewMemoryExpectations(), func() {}, nil
	}

	client := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.SessionTTL)
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	zapLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	return session.NewRedisExpectations(client), func() {
		if err := client.Close(); err != nil {
			zapLogger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}, nil
}
