package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Title returns the human-readable status name shown to admins.
func (s OrderStatus) Title() string {
	switch s {
	case StatusPending:
		return "Ожидает обработки"
	case StatusConfirmed:
		return "Подтвержден"
	case StatusInProgress:
		return "В работе"
	case StatusCompleted:
		return "Завершен"
	case StatusCancelled:
		return "Отменен"
	}
	return string(s)
}

func (s OrderStatus) Emoji() string {
	switch s {
	case StatusPending:
		return "⏳"
	case StatusConfirmed, StatusCompleted:
		return "✅"
	case StatusInProgress:
		return "🔄"
	case StatusCancelled:
		return "❌"
	}
	return "❓"
}

type OrderKind string

const (
	// KindCatalog is an order for a predefined product.
	KindCatalog OrderKind = "catalog"
	// KindCustom is an order described in free text.
	KindCustom OrderKind = "custom"
)

type Order struct {
	ID           string      `db:"id" json:"id"`
	ProductID    *int        `db:"product_id" json:"product_id,omitempty"`
	ProductName  string      `db:"product_name" json:"product_name,omitempty"`
	Description  string      `db:"description" json:"description"`
	CustomerID   int64       `db:"customer_id" json:"customer_id"`
	CustomerName string      `db:"customer_name" json:"customer_name"`
	Amount       *int64      `db:"amount" json:"amount,omitempty"`
	Category     string      `db:"category" json:"category,omitempty"`
	Kind         OrderKind   `db:"kind" json:"kind"`
	Status       OrderStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// AmountOrZero treats orders without a price as zero-valued.
func (o Order) AmountOrZero() int64 {
	if o.Amount == nil {
		return 0
	}
	return *o.Amount
}

// Summary is the product name, or the first 50 characters of the description
// for custom orders.
func (o Order) Summary() string {
	if o.ProductName != "" {
		return o.ProductName
	}
	return Truncate(o.Description, 50, "")
}

type User struct {
	ChatID       int64     `db:"chat_id" json:"chat_id"`
	Name         string    `db:"name" json:"name"`
	Username     string    `db:"username" json:"username,omitempty"`
	OrderIDs     []string  `db:"-" json:"order_ids"`
	LastActivity time.Time `db:"last_activity" json:"last_activity"`
}

type SupportRequest struct {
	ID           string    `db:"id" json:"id"`
	CustomerID   int64     `db:"customer_id" json:"customer_id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Username     string    `db:"username" json:"username,omitempty"`
	Message      string    `db:"message" json:"message"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Product struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Price       int64  `yaml:"price"`
	Category    string `yaml:"category"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
	Available   bool   `yaml:"available"`
}

type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Expectation marks which flow the next plain-text message of a chat belongs to.
type Expectation int

const (
	ExpectNone Expectation = iota
	ExpectOrder
	ExpectSupport
)

func (e Expectation) String() string {
	switch e {
	case ExpectOrder:
		return "order"
	case ExpectSupport:
		return "support"
	}
	return "none"
}

// ParseExpectation is the inverse of Expectation.String. Unknown names map to ExpectNone.
func ParseExpectation(s string) Expectation {
	switch strings.TrimSpace(s) {
	case "order":
		return ExpectOrder
	case "support":
		return ExpectSupport
	}
	return ExpectNone
}

// Truncate cuts s to at most limit runes and appends suffix when something was cut.
func Truncate(s string, limit int, suffix string) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + suffix
}
