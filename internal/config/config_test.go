package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := parseMap(map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"})
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, "Ваша Компания", cfg.Company.Name)
	assert.Equal(t, "www.company.com", cfg.Company.Website)
	assert.True(t, cfg.Notifications.NewOrder)
	assert.True(t, cfg.Notifications.NewSupportRequest)
	assert.Equal(t, 50, cfg.Limits.MaxOrdersPerDay)
	assert.Equal(t, 20, cfg.Limits.MaxSupportRequestsPerDay)
	assert.Equal(t, 1000, cfg.Limits.MessageLength)
	assert.Equal(t, 9, cfg.Work.StartHour)
	assert.Equal(t, 18, cfg.Work.EndHour)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, SessionMemory, cfg.SessionDriver)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_MissingToken(t *testing.T) {
	_, err := parseMap(map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := parseMap(map[string]string{
		"TELEGRAM_BOT_TOKEN": "t",
		"ADMIN_CHAT_ID":      "42",
		"COMPANY_NAME":       "Рога и копыта",
		"NOTIFY_NEW_ORDER":   "false",
		"SESSION_DRIVER":     "redis",
		"REDIS_ADDR":         "redis:6379",
		"SESSION_TTL":        "30m",
	})
	require.NoError(t, err)

	assert.Equal(t, "Рога и копыта", cfg.Company.Name)
	assert.False(t, cfg.Notifications.NewOrder)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"non numeric admin", map[string]string{"ADMIN_CHAT_ID": "admin"}},
		{"unknown storage", map[string]string{"STORAGE_DRIVER": "mongo"}},
		{"postgres without db", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"unknown session", map[string]string{"SESSION_DRIVER": "etcd"}},
		{"inverted hours", map[string]string{"WORK_START_HOUR": "18", "WORK_END_HOUR": "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.vars["TELEGRAM_BOT_TOKEN"] = "t"
			_, err := parseMap(tt.vars)
			assert.Error(t, err)
		})
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminChatID: "100500"}
	assert.True(t, cfg.IsAdmin(100500))
	assert.False(t, cfg.IsAdmin(100501))

	id, ok := cfg.AdminID()
	assert.True(t, ok)
	assert.Equal(t, int64(100500), id)

	empty := &Config{}
	assert.False(t, empty.IsAdmin(0))
	_, ok = empty.AdminID()
	assert.False(t, ok)
}
