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

func (b *Bot) showOrderForm(ctx context.Context, chatID int64) {
	text := `📝 *Оформление заказа*

Пожалуйста, подробно опишите ваш заказ:
• Что именно вас интересует?
• Какой бюджет вы планируете?
• Сроки выполнения?
• Контактная информация?

Отправьте сообщение с деталями заказа.`

	b.sendMarkdown(chatID, text, nil)
	b.expect(ctx, chatID, model.ExpectOrder)
}

// ensureCustomer returns the chat's profile. A chat that never sent /start
// gets one built from the sender, so its orders are linked to a user.
func (b *Bot) ensureCustomer(ctx context.Context, chatID int64, from *tgbotapi.User) (model.User, bool) {
	user, err := b.sessions.EnsureProfile(ctx, model.User{
		ChatID:       chatID,
		Name:         firstName(from),
		Username:     username(from),
		LastActivity: b.now(),
	})
	if err != nil {
		b.logger.Error("Failed to load user profile",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return model.User{}, false
	}
	return user, true
}

// createCatalogOrder places an order for a catalog product.
func (b *Bot) createCatalogOrder(ctx context.Context, chatID int64, from *tgbotapi.User, productID int) {
	product, ok := b.lookupProduct(chatID, productID)
	if !ok {
		return
	}

	user, ok := b.ensureCustomer(ctx, chatID, from)
	if !ok {
		return
	}
	now := b.now()

	id := product.ID
	price := product.Price
	order := model.Order{
		ID:           format.NewID(),
		ProductID:    &id,
		ProductName:  product.Name,
		Description:  "Заказ товара: " + product.Name,
		CustomerID:   chatID,
		CustomerName: user.Name,
		Amount:       &price,
		Category:     product.Category,
		Kind:         model.KindCatalog,
		Status:       model.StatusPending,
		CreatedAt:    now,
	}

	if err := b.store.AddOrder(ctx, order); err != nil {
		b.logger.Error("Failed to save order",
			zap.Int64("chat_id", chatID),
			zap.Int("product_id", product.ID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	b.logger.Info("Order created",
		zap.String("event", "order_created"),
		zap.String("order_id", order.ID),
		zap.Int("product_id", product.ID),
		zap.Int64("chat_id", chatID),
		zap.Int64("price", price))

	b.notifyNewOrder(ctx, order)

	text := fmt.Sprintf(`✅ *Заказ успешно создан!*

📦 Товар: %s
💰 Стоимость: %s
🆔 Номер заказа: #%s
⏰ Дата создания: %s

%s.

Хотите заказать что-нибудь ещё?`,
		md(product.Name), format.Price(price), order.ID, format.Date(order.CreatedAt), b.responseTime())

	b.sendMarkdown(chatID, text, afterOrderKeyboard())
}

func (b *Bot) processCustomOrder(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if _, ok := b.ensureCustomer(ctx, chatID, msg.From); !ok {
		return
	}

	order := model.Order{
		ID:           format.NewID(),
		Description:  msg.Text,
		CustomerID:   chatID,
		CustomerName: fullName(msg.From),
		Kind:         model.KindCustom,
		Status:       model.StatusPending,
		CreatedAt:    b.now(),
	}

	if err := b.store.AddOrder(ctx, order); err != nil {
		b.logger.Error("Failed to save custom order",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, textInternalError)
		return
	}

	b.logger.Info("Custom order created",
		zap.String("event", "custom_order_created"),
		zap.String("order_id", order.ID),
		zap.Int64("chat_id", chatID),
		zap.Int("description_length", utf8.RuneCountInString(msg.Text)))

	b.notifyCustomOrder(ctx, order)

	text := fmt.Sprintf(`✅ *Спасибо за ваш заказ!*

🆔 Номер заказа: #%s
👤 Клиент: %s
📝 Описание: %s

%s.

Хотите уточнить что-нибудь ещё?`,
		order.ID, md(order.CustomerName), md(model.Truncate(order.Description, echoPreviewLimit, "...")), b.responseTime())

	b.sendMarkdown(chatID, text, backKeyboard())
}
