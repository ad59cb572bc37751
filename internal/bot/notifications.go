package bot

import (
	"context"
	"fmt"

	"bizbot/internal/format"
	"bizbot/internal/model"
	"bizbot/internal/notify"
)

func (b *Bot) notifyNewOrder(ctx context.Context, order model.Order) {
	if !b.cfg.Notifications.NewOrder {
		return
	}

	text := fmt.Sprintf("🆕 *Новый заказ*\n\n📦 %s\n👤 %s\n💰 %s\n🆔 #%s",
		md(order.ProductName), md(order.CustomerName), format.Price(order.AmountOrZero()), order.ID)
	b.notifier.Notify(ctx, notify.Success, text)
}

func (b *Bot) notifyCustomOrder(ctx context.Context, order model.Order) {
	if !b.cfg.Notifications.NewOrder {
		return
	}

	text := fmt.Sprintf("🆕 *Пользовательский заказ*\n\n👤 %s\n📝 %s\n🆔 #%s",
		md(order.CustomerName), md(model.Truncate(order.Description, orderPreviewLimit, "...")), order.ID)
	b.notifier.Notify(ctx, notify.Info, text)
}

func (b *Bot) notifySupportRequest(ctx context.Context, req model.SupportRequest) {
	if !b.cfg.Notifications.NewSupportRequest {
		return
	}

	customer := md(req.CustomerName)
	if req.Username != "" {
		customer += " (@" + md(req.Username) + ")"
	}

	text := fmt.Sprintf("🚨 *Новое обращение в поддержку*\n\n👤 %s\n🆔 #%s\n📝 %s\n⏰ %s",
		customer, req.ID, md(model.Truncate(req.Message, supportPreviewLimit, "...")), format.Date(req.CreatedAt))
	b.notifier.Notify(ctx, notify.Warning, text)
}
