package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySign = "₽"

var (
	printer = message.NewPrinter(language.Russian)

	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+7|7|8)?[\s\-]?\(?[0-9]{3}\)?[\s\-]?[0-9]{3}[\s\-]?[0-9]{2}[\s\-]?[0-9]{2}$`)

	monthsGenitive = [...]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
)

// Price renders whole rubles with ru-RU digit grouping, e.g. "5 000 ₽".
// Separators are non-breaking spaces.
func Price(amount int64) string {
	return printer.Sprintf("%d", amount) + "\u00a0" + currencySign
}

// Date renders t as "16 октября 2026 г. в 14:05".
func Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d г. в %02d:%02d",
		t.Day(), monthsGenitive[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone accepts Russian numbers like +7(495)123-45-67, 8 495 123 45 67, 4951234567.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// NewID returns a short opaque identifier. Uniqueness is probabilistic only.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// WorkingHours is a weekday range and an hour window [StartHour, EndHour) in local time.
type WorkingHours struct {
	StartDay  time.Weekday
	EndDay    time.Weekday
	StartHour int
	EndHour   int
}

// DefaultWorkingHours is Monday to Friday, 9:00 to 18:00.
var DefaultWorkingHours = WorkingHours{
	StartDay:  time.Monday,
	EndDay:    time.Friday,
	StartHour: 9,
	EndHour:   18,
}

func (w WorkingHours) Contains(t time.Time) bool {
	day := t.Weekday()
	if day < w.StartDay || day > w.EndDay {
		return false
	}
	hour := t.Hour()
	return hour >= w.StartHour && hour < w.EndHour
}

// ResponseTimeMessage tells the customer when to expect an answer.
func ResponseTimeMessage(inWorkingHours bool) string {
	if inWorkingHours {
		return "Мы ответим в течение 2 часов"
	}
	return "Мы ответим в течение 24 часов после начала рабочего дня"
}
