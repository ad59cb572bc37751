// Package notify delivers best-effort messages to the administrator chat.
package notify

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bizbot/internal/format"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Level string

const (
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
	Success Level = "success"
)

func (l Level) Emoji() string {
	switch l {
	case Info:
		return "ℹ️"
	case Warning:
		return "⚠️"
	case Error:
		return "❌"
	case Success:
		return "✅"
	}
	return "📢"
}

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Notifier struct {
	sender  Sender
	adminID int64
	enabled bool
	logger  *zap.Logger
	now     func() time.Time
}

// New builds a notifier for adminChatID. An empty or non-numeric id turns
// every Notify call into a no-op.
func New(sender Sender, adminChatID string, logger *zap.Logger) *Notifier {
	n := &Notifier{
		sender: sender,
		logger: logger,
		now:    time.Now,
	}

	if id, err := strconv.ParseInt(strings.TrimSpace(adminChatID), 10, 64); err == nil {
		n.adminID = id
		n.enabled = true
	}
	return n
}

func (n *Notifier) Enabled() bool {
	return n.enabled
}

// Notify sends text, which must already be valid Markdown, to the admin chat.
// Delivery errors are logged and swallowed.
func (n *Notifier) Notify(_ context.Context, level Level, text string) {
	if !n.enabled {
		return
	}

	body := fmt.Sprintf("%s *Уведомление*\n\n%s\n\n⏰ %s", level.Emoji(), text, format.Date(n.now()))

	msg := tgbotapi.NewMessage(n.adminID, body)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableNotification = level == Info

	if _, err := n.sender.Send(msg); err != nil {
		n.logger.Error("Failed to send admin notification",
			zap.Int64("admin_id", n.adminID),
			zap.String("level", string(level)),
			zap.Error(err))
	}
}
