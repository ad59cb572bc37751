package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizbot/internal/format"
	"bizbot/internal/model"
	"bizbot/internal/report"
	"bizbot/internal/stats"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// loadAdminData fetches orders and users, replying with an error on failure.
func (b *Bot) loadAdminData(ctx context.Context, chatID int64) ([]model.Order, []model.User, bool) {
	orders, err := b.store.Orders(ctx)
	if err != nil {
		b.logger.Error("Failed to get orders",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return nil, nil, false
	}

	users, err := b.store.Users(ctx)
	if err != nil {
		b.logger.Error("Failed to get users",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return nil, nil, false
	}
	return orders, users, true
}

func (b *Bot) showAdminPanel(ctx context.Context, chatID int64) {
	orders, users, ok := b.loadAdminData(ctx, chatID)
	if !ok {
		return
	}

	now := b.now()
	s := stats.Calculate(orders, len(users), now)

	text := fmt.Sprintf(`🔧 *Панель администратора*

📊 *Статистика за сегодня:*
• Заказов: %d
• Выручка: %s
• Активных пользователей: %d

📈 *Общая статистика:*
• Всего заказов: %d
• Выполнено заказов: %d
• Пользователей: %d
• Общая выручка: %s

⚙️ *Управление:*`,
		s.TodayOrders, format.Price(s.TodayRevenue), stats.ActiveToday(users, now),
		s.TotalOrders, s.CompletedOrders, s.TotalUsers, format.Price(s.Revenue))

	b.sendMarkdown(chatID, text, adminKeyboard())
}

func (b *Bot) showAdminOrders(ctx context.Context, chatID int64) {
	orders, err := b.store.Orders(ctx)
	if err != nil {
		b.logger.Error("Failed to get orders",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	if len(orders) == 0 {
		b.sendMessage(tgbotapi.NewMessage(chatID, textNoOrders))
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 *Последние заказы*\n\n")

	for i := len(orders) - 1; i >= 0 && i >= len(orders)-adminListLimit; i-- {
		o := orders[i]
		fmt.Fprintf(&sb, "%s #%s\n", o.Status.Emoji(), o.ID)
		fmt.Fprintf(&sb, "👤 %s\n", md(o.CustomerName))
		fmt.Fprintf(&sb, "📦 %s\n", md(o.Summary()))
		fmt.Fprintf(&sb, "💰 %s\n", format.Price(o.AmountOrZero()))
		fmt.Fprintf(&sb, "📅 %s\n\n", format.Date(o.CreatedAt))
	}

	b.sendMarkdown(chatID, sb.String(), nil)
}

func (b *Bot) showAdminUsers(ctx context.Context, chatID int64) {
	users, err := b.store.Users(ctx)
	if err != nil {
		b.logger.Error("Failed to get users",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	if len(users) == 0 {
		b.sendMessage(tgbotapi.NewMessage(chatID, textNoUsers))
		return
	}

	var sb strings.Builder
	sb.WriteString("👥 *Пользователи*\n\n")

	for i := len(users) - 1; i >= 0 && i >= len(users)-adminListLimit; i-- {
		u := users[i]
		sb.WriteString("👤 " + md(u.Name))
		if u.Username != "" {
			sb.WriteString(" (@" + md(u.Username) + ")")
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "📅 Последняя активность: %s\n", format.Date(u.LastActivity))
		fmt.Fprintf(&sb, "🛒 Заказов: %d\n\n", len(u.OrderIDs))
	}

	b.sendMarkdown(chatID, sb.String(), nil)
}

func (b *Bot) showAdminStats(ctx context.Context, chatID int64) {
	orders, users, ok := b.loadAdminData(ctx, chatID)
	if !ok {
		return
	}

	now := b.now()
	s := stats.Calculate(orders, len(users), now)

	working := "❌ Нет"
	if b.hours.Contains(now) {
		working = "✅ Да"
	}

	text := fmt.Sprintf(`📈 *Подробная статистика*

💰 *Финансы:*
• Общая выручка: %s
• Выручка за сегодня: %s
• Средний чек: %s

📦 *Заказы:*
• Всего заказов: %d
• Заказов сегодня: %d
• В ожидании: %d
• Выполнено: %d

👥 *Пользователи:*
• Всего пользователей: %d
• Активны сегодня: %d

⏰ *Рабочее время:*
• Текущее время: %s
• Рабочие часы: %s`,
		format.Price(s.Revenue), format.Price(s.TodayRevenue), format.Price(s.AverageCheck()),
		s.TotalOrders, s.TodayOrders, s.PendingOrders, s.CompletedOrders,
		s.TotalUsers, stats.ActiveToday(users, now),
		format.Date(now), working)

	b.sendMarkdown(chatID, text, nil)
	b.sendDailyChart(chatID, orders, now)
}

func (b *Bot) sendDailyChart(chatID int64, orders []model.Order, now time.Time) {
	png, err := report.DailyChart(stats.Daily(orders, now, chartDays))
	if err != nil {
		if !errors.Is(err, report.ErrNoData) {
			b.logger.Error("Failed to render stats chart",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "stats.png", Bytes: png})
	photo.Caption = "📊 Выручка за последние 7 дней"
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Error("Failed to send stats chart",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (b *Bot) exportOrders(ctx context.Context, chatID int64) {
	orders, err := b.store.Orders(ctx)
	if err != nil {
		b.logger.Error("Failed to get orders",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	if len(orders) == 0 {
		b.sendMessage(tgbotapi.NewMessage(chatID, textNoOrders))
		return
	}

	buf, err := report.OrdersWorkbook(orders)
	if err != nil {
		b.logger.Error("Failed to build orders workbook",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Не удалось сформировать файл")
		return
	}

	filename := fmt.Sprintf("orders_%s.xlsx", b.now().Format("20060102_1504"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: buf.Bytes()})
	doc.Caption = fmt.Sprintf("📥 Выгрузка заказов: %d шт.", len(orders))

	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("Failed to send orders export",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}

	b.logger.Info("Orders exported",
		zap.String("event", "orders_exported"),
		zap.Int64("chat_id", chatID),
		zap.Int("orders", len(orders)))
}
