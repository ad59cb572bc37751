package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func normalizeSpaces(s string) string {
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "5 000 ₽", normalizeSpaces(Price(5000)))
	assert.Equal(t, "25 000 ₽", normalizeSpaces(Price(25000)))
	assert.Equal(t, "0 ₽", normalizeSpaces(Price(0)))
	assert.NotContains(t, Price(5000), ",")
}

func TestDate(t *testing.T) {
	ts := time.Date(2026, time.October, 16, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "16 октября 2026 г. в 09:05", Date(ts))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("test@email.com"))
	assert.False(t, IsValidEmail("test@"))
	assert.False(t, IsValidEmail("test @email.com"))
	assert.False(t, IsValidEmail("test@email"))
}

func TestIsValidPhone(t *testing.T) {
	for _, phone := range []string{"+7(495)123-45-67", "84951234567", "+7 495 123 45 67", "4951234567"} {
		assert.True(t, IsValidPhone(phone), phone)
	}
	for _, phone := range []string{"12345", "+1(495)123-45-67", "phone"} {
		assert.False(t, IsValidPhone(phone), phone)
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.Len(t, id, 16)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestWorkingHours_Contains(t *testing.T) {
	wh := DefaultWorkingHours

	// 2026-10-14 is a Wednesday.
	assert.True(t, wh.Contains(time.Date(2026, 10, 14, 10, 0, 0, 0, time.Local)))
	assert.True(t, wh.Contains(time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local)))
	assert.False(t, wh.Contains(time.Date(2026, 10, 14, 18, 0, 0, 0, time.Local)))
	assert.False(t, wh.Contains(time.Date(2026, 10, 14, 7, 59, 0, 0, time.Local)))

	// Weekend is closed at any hour.
	for hour := 0; hour < 24; hour++ {
		assert.False(t, wh.Contains(time.Date(2026, 10, 17, hour, 0, 0, 0, time.Local)))
		assert.False(t, wh.Contains(time.Date(2026, 10, 18, hour, 0, 0, 0, time.Local)))
	}
}

func TestResponseTimeMessage(t *testing.T) {
	assert.Contains(t, ResponseTimeMessage(true), "2 часов")
	assert.Contains(t, ResponseTimeMessage(false), "24 часов")
}
