package bot

import (
	"context"
	"fmt"
	"strings"
)

func (b *Bot) showMainMenu(ctx context.Context, chatID int64) {
	b.sendMarkdown(chatID, "🏠 *Главное меню*\n\nВыберите нужный раздел:", mainMenuKeyboard())
}

func (b *Bot) showAbout(ctx context.Context, chatID int64) {
	text := fmt.Sprintf(`🏢 *О нашей компании*

%s - ведущий поставщик бизнес-решений.

🎯 *Наша миссия:*
Помогать бизнесу расти и развиваться с помощью инновационных решений и качественного сервиса.

💼 *Что мы предлагаем:*
• Бизнес-консалтинг и аудит
• IT-решения и разработка
• Маркетинговые стратегии
• Обучение и развитие персонала
• Юридическое сопровождение
• Финансовый анализ

🚀 *Почему выбирают нас:*
• Профессиональная команда экспертов
• Индивидуальный подход к каждому клиенту
• Современные технологии и методы
• Гарантия качества и сроков
• Конкурентные цены`, md(b.cfg.Company.Name))

	b.sendMarkdown(chatID, text, backKeyboard())
}

func (b *Bot) showFAQ(ctx context.Context, chatID int64) {
	var sb strings.Builder
	sb.WriteString("❓ *Часто задаваемые вопросы*\n\n")
	for _, item := range b.catalog.FAQ {
		fmt.Fprintf(&sb, "🔸 %s\n%s\n\n", md(item.Question), md(item.Answer))
	}
	sb.WriteString("Остались вопросы? Напишите нам!")

	b.sendMarkdown(chatID, sb.String(), faqKeyboard())
}

func (b *Bot) showContacts(ctx context.Context, chatID int64) {
	c := b.cfg.Company
	text := fmt.Sprintf(`📞 *Контактная информация*

🏢 *Адрес:*
%s

📱 *Телефон:*
%s

📧 *Email:*
%s

🌐 *Сайт:*
%s

🕒 *Режим работы:*
%s
Сб-Вс: выходной

💬 *Онлайн-чат:*
Доступен 24/7 через этого бота`,
		md(c.Address), md(c.Phone), md(c.Email), md(c.Website), md(c.WorkingHours))

	b.sendMarkdown(chatID, text, contactsKeyboard(c))
}
