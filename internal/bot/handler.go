package bot

import (
	"context"

	"bizbot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleAction routes a decoded button press. It never consumes a pending
// expectation; only plain text does.
func (b *Bot) handleAction(ctx context.Context, chatID int64, from *tgbotapi.User, action Action, data string) {
	if action.IsAdmin() && !b.cfg.IsAdmin(chatID) {
		b.logger.Warn("Ignoring admin action from non-admin chat",
			zap.String("event", "unauthorized_admin_access"),
			zap.Int64("chat_id", chatID),
			zap.String("data", data))
		return
	}

	switch action.Kind {
	case ActionMenu:
		b.showMainMenu(ctx, chatID)
	case ActionCatalog:
		b.showCatalog(ctx, chatID)
	case ActionOrderForm:
		b.showOrderForm(ctx, chatID)
	case ActionAbout:
		b.showAbout(ctx, chatID)
	case ActionFAQ:
		b.showFAQ(ctx, chatID)
	case ActionContacts:
		b.showContacts(ctx, chatID)
	case ActionSupport:
		b.showSupport(ctx, chatID)
	case ActionProduct:
		b.showProductDetail(ctx, chatID, action.ProductID)
	case ActionOrderProduct:
		b.createCatalogOrder(ctx, chatID, from, action.ProductID)
	case ActionAdminOrders:
		b.showAdminOrders(ctx, chatID)
	case ActionAdminUsers:
		b.showAdminUsers(ctx, chatID)
	case ActionAdminStats:
		b.showAdminStats(ctx, chatID)
	case ActionAdminRefresh:
		b.showAdminPanel(ctx, chatID)
	case ActionAdminExport:
		b.exportOrders(ctx, chatID)
	default:
		b.logger.Warn("Unknown callback data",
			zap.Int64("chat_id", chatID),
			zap.String("data", data))
	}
}

func (b *Bot) expect(ctx context.Context, chatID int64, e model.Expectation) {
	if err := b.sessions.SetExpectation(ctx, chatID, e); err != nil {
		b.logger.Error("Failed to set expectation",
			zap.Int64("chat_id", chatID),
			zap.String("expectation", e.String()),
			zap.Error(err))
	}
}
