package bot

// Callback payloads carried by inline buttons.
const (
	CallbackMenu     = "menu"
	CallbackCatalog  = "catalog"
	CallbackOrder    = "order"
	CallbackAbout    = "about"
	CallbackFAQ      = "faq"
	CallbackContacts = "contacts"
	CallbackSupport  = "support"

	CallbackProductPrefix = "product_"
	CallbackOrderPrefix   = "order_"

	CallbackAdminOrders  = "admin_orders"
	CallbackAdminUsers   = "admin_users"
	CallbackAdminStats   = "admin_stats"
	CallbackAdminRefresh = "admin_refresh"
	CallbackAdminExport  = "admin_export"
)

const (
	defaultCustomerName = "Уважаемый клиент"
	supportStatusNew    = "new"

	adminListLimit      = 10
	orderPreviewLimit   = 200
	supportPreviewLimit = 300
	echoPreviewLimit    = 1000
	chartDays           = 7
)

const (
	textProductNotFound    = "Товар не найден"
	textProductUnavailable = "Этот товар временно недоступен"
	textAccessDenied       = "Доступ запрещен"
	textInternalError      = "Что-то пошло не так. Пожалуйста, попробуйте позже."
	textNoOrders           = "📋 Заказов пока нет"
	textNoUsers            = "👥 Пользователей пока нет"
)
