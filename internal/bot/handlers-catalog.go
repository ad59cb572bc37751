package bot

import (
	"context"
	"fmt"
	"strings"

	"bizbot/internal/format"
	"bizbot/internal/model"
)

func (b *Bot) showCatalog(ctx context.Context, chatID int64) {
	var sb strings.Builder
	sb.WriteString("🛍️ *Каталог наших товаров и услуг*\n\n")

	for _, category := range b.catalog.Categories() {
		fmt.Fprintf(&sb, "📂 %s:\n", md(category.Name))
		for _, p := range category.Products {
			status := "✅"
			if !p.Available {
				status = "❌"
			}
			fmt.Fprintf(&sb, "%s %s - %s\n", status, md(p.Name), format.Price(p.Price))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Выберите товар для подробной информации:")

	b.sendMarkdown(chatID, sb.String(), productsKeyboard(b.catalog.Available()))
}

// lookupProduct replies to the chat and returns false when the product is
// missing or unavailable.
func (b *Bot) lookupProduct(chatID int64, productID int) (model.Product, bool) {
	product, ok := b.catalog.Product(productID)
	if !ok {
		b.sendError(chatID, textProductNotFound)
		return model.Product{}, false
	}
	if !product.Available {
		b.sendError(chatID, textProductUnavailable)
		return model.Product{}, false
	}
	return product, true
}

func (b *Bot) showProductDetail(ctx context.Context, chatID int64, productID int) {
	product, ok := b.lookupProduct(chatID, productID)
	if !ok {
		return
	}

	text := fmt.Sprintf(`📦 %s

💰 *Цена:* %s
📂 *Категория:* %s
⏱️ *Срок выполнения:* %s
📝 *Описание:* %s

Хотите заказать эту услугу?`,
		md(product.Name), format.Price(product.Price), md(product.Category),
		md(product.Duration), md(product.Description))

	b.sendMarkdown(chatID, text, productDetailKeyboard(product.ID))
}
