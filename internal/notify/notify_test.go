package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestNotify(t *testing.T) {
	sender := &fakeSender{}
	n := New(sender, "777", zap.NewNop())
	n.now = func() time.Time { return time.Date(2026, 10, 16, 14, 5, 0, 0, time.Local) }

	n.Notify(context.Background(), Success, "Новый заказ")

	require.Len(t, sender.sent, 1)
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(777), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
	assert.False(t, msg.DisableNotification)
	assert.Contains(t, msg.Text, "✅ *Уведомление*")
	assert.Contains(t, msg.Text, "Новый заказ")
	assert.Contains(t, msg.Text, "16 октября 2026 г. в 14:05")
}

func TestNotify_InfoIsSilent(t *testing.T) {
	sender := &fakeSender{}
	New(sender, "1", zap.NewNop()).Notify(context.Background(), Info, "x")

	require.Len(t, sender.sent, 1)
	assert.True(t, sender.sent[0].(tgbotapi.MessageConfig).DisableNotification)
}

func TestNotify_NoAdmin(t *testing.T) {
	for _, id := range []string{"", "not-a-number"} {
		sender := &fakeSender{}
		n := New(sender, id, zap.NewNop())
		assert.False(t, n.Enabled())

		n.Notify(context.Background(), Warning, "x")
		assert.Empty(t, sender.sent)
	}
}

func TestNotify_FailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	sender := &fakeSender{err: errors.New("chat not found")}

	assert.NotPanics(t, func() {
		New(sender, "1", zap.New(core)).Notify(context.Background(), Error, "x")
	})
	assert.Equal(t, 1, logs.FilterMessage("Failed to send admin notification").Len())
}

func TestLevelEmoji(t *testing.T) {
	assert.Equal(t, "ℹ️", Info.Emoji())
	assert.Equal(t, "⚠️", Warning.Emoji())
	assert.Equal(t, "📢", Level("other").Emoji())
}
