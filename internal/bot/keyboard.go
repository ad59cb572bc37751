package bot

import (
	"net/url"
	"strings"

	"bizbot/internal/config"
	"bizbot/internal/format"
	"bizbot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BOT KEYBOARDS

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛍️ Каталог товаров", CallbackCatalog),
			tgbotapi.NewInlineKeyboardButtonData("📝 Сделать заказ", CallbackOrder),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ О компании", CallbackAbout),
			tgbotapi.NewInlineKeyboardButtonData("❓ FAQ", CallbackFAQ),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📞 Контакты", CallbackContacts),
			tgbotapi.NewInlineKeyboardButtonData("🆘 Поддержка", CallbackSupport),
		),
	)
}

// productsKeyboard has one row per product and a back row.
func productsKeyboard(products []model.Product) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(products)+1)
	for _, p := range products {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Name+" - "+format.Price(p.Price), productCallback(p.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", CallbackMenu),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productDetailKeyboard(productID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Заказать", orderCallback(productID)),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад к каталогу", CallbackCatalog),
		),
	)
}

func afterOrderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛍️ Продолжить покупки", CallbackCatalog),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", CallbackMenu),
		),
	)
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", CallbackMenu),
		),
	)
}

func faqKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🆘 Поддержка", CallbackSupport),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", CallbackMenu),
		),
	)
}

// contactsKeyboard links to the website and a map search for the address.
// Telegram only accepts http(s) and tg URLs in buttons, so phone and email
// stay in the message text.
func contactsKeyboard(company config.CompanyConfig) tgbotapi.InlineKeyboardMarkup {
	var links []tgbotapi.InlineKeyboardButton
	if company.Website != "" {
		links = append(links, tgbotapi.NewInlineKeyboardButtonURL("🌐 Сайт", websiteURL(company.Website)))
	}
	if company.Address != "" {
		links = append(links, tgbotapi.NewInlineKeyboardButtonURL("🗺️ Карта", mapURL(company.Address)))
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 2)
	if len(links) > 0 {
		rows = append(rows, links)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", CallbackMenu),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Все заказы", CallbackAdminOrders),
			tgbotapi.NewInlineKeyboardButtonData("👥 Пользователи", CallbackAdminUsers),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Подробная статистика", CallbackAdminStats),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", CallbackAdminRefresh),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📥 Выгрузить заказы (Excel)", CallbackAdminExport),
		),
	)
}

func websiteURL(site string) string {
	site = strings.TrimSpace(site)
	if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
		return site
	}
	return "https://" + site
}

func mapURL(address string) string {
	return "https://maps.google.com/?q=" + url.QueryEscape(address)
}
