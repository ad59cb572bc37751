package bot

import (
	"context"
	"fmt"
	"unicode/utf8"

	"bizbot/internal/format"
	"bizbot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) showSupport(ctx context.Context, chatID int64) {
	text := `🆘 *Техническая поддержка*

Если у вас возникли вопросы или проблемы, мы всегда готовы помочь!

💬 *Как получить помощь:*
1. Опишите вашу проблему
2. Укажите контактную информацию
3. Наш специалист свяжется с вами

📝 *Отправьте сообщение с описанием проблемы:*`

	b.sendMarkdown(chatID, text, nil)
	b.expect(ctx, chatID, model.ExpectSupport)
}

func (b *Bot) processSupportRequest(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if _, ok := b.ensureCustomer(ctx, chatID, msg.From); !ok {
		return
	}

	req := model.SupportRequest{
		ID:           format.NewID(),
		CustomerID:   chatID,
		CustomerName: fullName(msg.From),
		Username:     username(msg.From),
		Message:      msg.Text,
		Status:       supportStatusNew,
		CreatedAt:    b.now(),
	}

	if err := b.store.AddSupportRequest(ctx, req); err != nil {
		b.logger.Error("Failed to save support request",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	b.logger.Info("Support request received",
		zap.String("event", "support_request"),
		zap.String("request_id", req.ID),
		zap.Int64("chat_id", chatID),
		zap.Int("message_length", utf8.RuneCountInString(req.Message)))

	text := fmt.Sprintf(`✅ *Спасибо за обращение!*

Ваше сообщение принято в обработку.
🆔 Номер обращения: #%s

%s.

📝 *Ваше сообщение:*
%s`, req.ID, b.responseTime(), md(model.Truncate(req.Message, echoPreviewLimit, "...")))

	b.sendMarkdown(chatID, text, backKeyboard())

	b.notifySupportRequest(ctx, req)
}
