package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// md escapes user-supplied text for legacy Markdown messages.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// firstName is how /start greets a user.
func firstName(u *tgbotapi.User) string {
	if u == nil || strings.TrimSpace(u.FirstName) == "" {
		return defaultCustomerName
	}
	return u.FirstName
}

// fullName is how orders and support requests record the customer.
func fullName(u *tgbotapi.User) string {
	if u == nil {
		return defaultCustomerName
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return defaultCustomerName
	}
	return name
}

func username(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.UserName
}
