package bot

import (
	"context"
	"strings"
	"sync"
	"time"

	"bizbot/internal/catalog"
	"bizbot/internal/config"
	"bizbot/internal/format"
	"bizbot/internal/model"
	"bizbot/internal/notify"
	"bizbot/internal/session"
	"bizbot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Deps struct {
	API      Sender
	Updates  UpdateSource
	Sessions *session.Manager
	Store    storage.Store
	Catalog  *catalog.Catalog
	Notifier *notify.Notifier
	Config   *config.Config
	Logger   *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Bot struct {
	api      Sender
	updates  UpdateSource
	sessions *session.Manager
	store    storage.Store
	catalog  *catalog.Catalog
	notifier *notify.Notifier
	cfg      *config.Config
	logger   *zap.Logger
	hours    format.WorkingHours
	now      func() time.Time

	// mu serializes update processing.
	mu sync.Mutex
}

func New(d Deps) *Bot {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	hours := format.DefaultWorkingHours
	hours.StartHour = d.Config.Work.StartHour
	hours.EndHour = d.Config.Work.EndHour

	return &Bot{
		api:      d.API,
		updates:  d.Updates,
		sessions: d.Sessions,
		store:    d.Store,
		catalog:  d.Catalog,
		notifier: d.Notifier,
		cfg:      d.Config,
		logger:   d.Logger,
		hours:    hours,
		now:      now,
	}
}

// Start polls for updates until ctx is cancelled or the update channel closes.
// Updates are processed one at a time.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.updates.GetUpdatesChan(u)
	defer b.updates.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case update, ok := <-updates:
			if !ok {
				b.logger.Info("Update channel closed")
				return nil
			}
			b.mu.Lock()
			b.processUpdate(ctx, update)
			b.mu.Unlock()
		}
	}
}

func (b *Bot) processUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic while processing update",
				zap.String("event", "uncaught_exception"),
				zap.Int("update_id", update.UpdateID),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	switch {
	case update.Message != nil:
		b.processMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.processCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	b.touch(ctx, chatID)

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() || strings.HasPrefix(msg.Text, "/") {
		b.handleCommand(ctx, msg)
		return
	}

	if strings.TrimSpace(msg.Text) == "" {
		b.logger.Debug("Ignoring message without text", zap.Int64("chat_id", chatID))
		return
	}

	expectation, err := b.sessions.ConsumeExpectation(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to consume expectation",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	switch expectation {
	case model.ExpectOrder:
		b.processCustomOrder(ctx, msg)
	case model.ExpectSupport:
		b.processSupportRequest(ctx, msg)
	default:
		b.logger.Debug("Dropping free text without pending expectation",
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	defer b.answerCallback(callback.ID)

	chatID := callbackChatID(callback)
	b.touch(ctx, chatID)

	b.logger.Debug("Processing callback",
		zap.String("event", "callback_query"),
		zap.Int64("chat_id", chatID),
		zap.String("data", callback.Data))

	b.handleAction(ctx, chatID, callback.From, ParseAction(callback.Data), callback.Data)
}

func callbackChatID(callback *tgbotapi.CallbackQuery) int64 {
	if callback.Message != nil && callback.Message.Chat != nil {
		return callback.Message.Chat.ID
	}
	if callback.From != nil {
		return callback.From.ID
	}
	return 0
}

func (b *Bot) touch(ctx context.Context, chatID int64) {
	if err := b.sessions.Touch(ctx, chatID, b.now()); err != nil {
		b.logger.Warn("Failed to update last activity",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (b *Bot) answerCallback(id string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, "")); err != nil {
		b.logger.Error("Failed to answer callback query",
			zap.String("callback_id", id),
			zap.Error(err))
	}
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
}

// sendMarkdown sends text with Markdown parse mode. markup may be nil.
func (b *Bot) sendMarkdown(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	b.sendMessage(msg)
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+text))
}

func (b *Bot) responseTime() string {
	return format.ResponseTimeMessage(b.hours.Contains(b.now()))
}
