package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"menu", Action{Kind: ActionMenu}},
		{"catalog", Action{Kind: ActionCatalog}},
		{"order", Action{Kind: ActionOrderForm}},
		{"about", Action{Kind: ActionAbout}},
		{"faq", Action{Kind: ActionFAQ}},
		{"contacts", Action{Kind: ActionContacts}},
		{"support", Action{Kind: ActionSupport}},
		{"product_3", Action{Kind: ActionProduct, ProductID: 3}},
		{"order_8", Action{Kind: ActionOrderProduct, ProductID: 8}},
		{"admin_orders", Action{Kind: ActionAdminOrders}},
		{"admin_users", Action{Kind: ActionAdminUsers}},
		{"admin_stats", Action{Kind: ActionAdminStats}},
		{"admin_refresh", Action{Kind: ActionAdminRefresh}},
		{"admin_export", Action{Kind: ActionAdminExport}},
		{"product_", Action{Kind: ActionUnknown}},
		{"product_x", Action{Kind: ActionUnknown}},
		{"order_1_2", Action{Kind: ActionUnknown}},
		{"admin_delete", Action{Kind: ActionUnknown}},
		{"", Action{Kind: ActionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAction(tt.data))
		})
	}
}

func TestAction_IsAdmin(t *testing.T) {
	assert.True(t, ParseAction(CallbackAdminExport).IsAdmin())
	assert.False(t, ParseAction(CallbackCatalog).IsAdmin())
	assert.False(t, ParseAction("garbage").IsAdmin())
}

func TestCallbackBuilders(t *testing.T) {
	assert.Equal(t, Action{Kind: ActionProduct, ProductID: 5}, ParseAction(productCallback(5)))
	assert.Equal(t, Action{Kind: ActionOrderProduct, ProductID: 5}, ParseAction(orderCallback(5)))
}

func TestWebsiteURL(t *testing.T) {
	assert.Equal(t, "https://www.company.com", websiteURL("www.company.com"))
	assert.Equal(t, "http://example.org", websiteURL("http://example.org"))
	assert.Contains(t, mapURL("г. Москва"), "https://maps.google.com/?q=")
}
