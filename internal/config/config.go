package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	SessionMemory = "memory"
	SessionRedis  = "redis"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	AdminChatID   string `env:"ADMIN_CHAT_ID"`
	Debug         bool   `env:"BOT_DEBUG" envDefault:"false"`
	CatalogPath   string `env:"CATALOG_PATH"`

	Log           LogConfig           `envPrefix:"LOG_"`
	Company       CompanyConfig       `envPrefix:"COMPANY_"`
	Notifications NotificationsConfig `envPrefix:"NOTIFY_"`
	Limits        LimitsConfig        `envPrefix:"LIMIT_"`
	Work          WorkConfig          `envPrefix:"WORK_"`

	StorageDriver string         `env:"STORAGE_DRIVER" envDefault:"memory"`
	Database      DatabaseConfig `envPrefix:"DB_"`

	SessionDriver string        `env:"SESSION_DRIVER" envDefault:"memory"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	Redis         RedisConfig   `envPrefix:"REDIS_"`
}

type LogConfig struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

type CompanyConfig struct {
	Name         string `env:"NAME" envDefault:"Ваша Компания"`
	Address      string `env:"ADDRESS" envDefault:"г. Москва, ул. Примерная, д. 1"`
	Phone        string `env:"PHONE" envDefault:"+7 (495) 123-45-67"`
	Email        string `env:"EMAIL" envDefault:"info@company.com"`
	Website      string `env:"WEBSITE" envDefault:"www.company.com"`
	WorkingHours string `env:"WORKING_HOURS" envDefault:"Пн-Пт: 9:00 - 18:00"`
}

type NotificationsConfig struct {
	NewOrder          bool `env:"NEW_ORDER" envDefault:"true"`
	NewSupportRequest bool `env:"NEW_SUPPORT_REQUEST" envDefault:"true"`
}

// LimitsConfig is declared for operators but not enforced by the bot.
type LimitsConfig struct {
	MaxOrdersPerDay          int `env:"MAX_ORDERS_PER_DAY" envDefault:"50"`
	MaxSupportRequestsPerDay int `env:"MAX_SUPPORT_REQUESTS_PER_DAY" envDefault:"20"`
	MessageLength            int `env:"MESSAGE_LENGTH" envDefault:"1000"`
}

type WorkConfig struct {
	StartHour int `env:"START_HOUR" envDefault:"9"`
	EndHour   int `env:"END_HOUR" envDefault:"18"`
}

type DatabaseConfig struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"2m"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.TelegramToken) == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is empty")
	}

	if c.AdminChatID != "" {
		if _, err := strconv.ParseInt(c.AdminChatID, 10, 64); err != nil {
			return fmt.Errorf("ADMIN_CHAT_ID must be a numeric chat id, got %q", c.AdminChatID)
		}
	}

	if c.Work.StartHour < 0 || c.Work.EndHour > 24 || c.Work.StartHour >= c.Work.EndHour {
		return fmt.Errorf("invalid working hours %d-%d", c.Work.StartHour, c.Work.EndHour)
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.User == "" || c.Database.Name == "" {
			return errors.New("DB_USER and DB_NAME are required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.SessionDriver {
	case SessionMemory:
	case SessionRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required for the redis session driver")
		}
		if c.SessionTTL <= 0 {
			return errors.New("SESSION_TTL must be positive")
		}
	default:
		return fmt.Errorf("unknown SESSION_DRIVER %q", c.SessionDriver)
	}

	return nil
}

// IsAdmin compares the chat id with the configured admin id as text.
func (c *Config) IsAdmin(chatID int64) bool {
	return c.AdminChatID != "" && strconv.FormatInt(chatID, 10) == strings.TrimSpace(c.AdminChatID)
}

func (c *Config) AdminID() (int64, bool) {
	if c.AdminChatID == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(c.AdminChatID), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
