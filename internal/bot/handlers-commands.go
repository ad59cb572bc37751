package bot

import (
	"context"
	"fmt"
	"strings"

	"bizbot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch commandName(msg) {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.handleHelp(ctx, chatID)
	case "admin":
		b.handleAdmin(ctx, chatID)
	default:
		b.handleUnknownCommand(ctx, chatID)
	}
}

// commandName handles both entity-tagged commands and plain "/word" text.
func commandName(msg *tgbotapi.Message) string {
	if msg.IsCommand() {
		return msg.Command()
	}
	text := strings.TrimPrefix(msg.Text, "/")
	if i := strings.IndexAny(text, " \n"); i >= 0 {
		text = text[:i]
	}
	if i := strings.Index(text, "@"); i >= 0 {
		text = text[:i]
	}
	return text
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	name := firstName(msg.From)

	user := model.User{
		ChatID:       chatID,
		Name:         name,
		Username:     username(msg.From),
		LastActivity: b.now(),
	}
	if err := b.sessions.StartSession(ctx, user); err != nil {
		b.logger.Error("Failed to start session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	b.logger.Info("User started bot",
		zap.String("event", "user_started_bot"),
		zap.Int64("chat_id", chatID),
		zap.String("user_name", name))

	text := fmt.Sprintf(`🌟 *Добро пожаловать!*

Здравствуйте, %s! 👋 Вас приветствует %s.

Я ваш персональный помощник. Чем могу помочь?

📋 *Наши услуги:*
• Консультации и поддержка
• Заказ товаров и услуг
• Информация о компании
• Ответы на частые вопросы

Выберите действие ниже:`, md(name), md(b.cfg.Company.Name))

	b.sendMarkdown(chatID, text, mainMenuKeyboard())
}

func (b *Bot) handleHelp(ctx context.Context, chatID int64) {
	helpText := `Доступные команды:
/start - Начать работу с ботом
/help - Показать эту справку

Если у вас возникли проблемы, воспользуйтесь разделом «Поддержка» в меню.`
	b.sendMessage(tgbotapi.NewMessage(chatID, helpText))
}

func (b *Bot) handleUnknownCommand(ctx context.Context, chatID int64) {
	b.sendError(chatID, "Неизвестная команда. Пожалуйста, используйте /start для начала работы.")
}

func (b *Bot) handleAdmin(ctx context.Context, chatID int64) {
	if !b.cfg.IsAdmin(chatID) {
		b.logger.Warn("Unauthorized admin access",
			zap.String("event", "unauthorized_admin_access"),
			zap.Int64("chat_id", chatID))
		b.sendError(chatID, textAccessDenied)
		return
	}
	b.showAdminPanel(ctx, chatID)
}
