package bot

import (
	"strconv"
	"strings"
)

type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionMenu
	ActionCatalog
	ActionOrderForm
	ActionAbout
	ActionFAQ
	ActionContacts
	ActionSupport
	ActionProduct
	ActionOrderProduct
	ActionAdminOrders
	ActionAdminUsers
	ActionAdminStats
	ActionAdminRefresh
	ActionAdminExport
)

// Action is a decoded callback payload. ProductID is set for ActionProduct
// and ActionOrderProduct only.
type Action struct {
	Kind      ActionKind
	ProductID int
}

func (a Action) IsAdmin() bool {
	switch a.Kind {
	case ActionAdminOrders, ActionAdminUsers, ActionAdminStats, ActionAdminRefresh, ActionAdminExport:
		return true
	}
	return false
}

var exactActions = map[string]ActionKind{
	CallbackMenu:         ActionMenu,
	CallbackCatalog:      ActionCatalog,
	CallbackOrder:        ActionOrderForm,
	CallbackAbout:        ActionAbout,
	CallbackFAQ:          ActionFAQ,
	CallbackContacts:     ActionContacts,
	CallbackSupport:      ActionSupport,
	CallbackAdminOrders:  ActionAdminOrders,
	CallbackAdminUsers:   ActionAdminUsers,
	CallbackAdminStats:   ActionAdminStats,
	CallbackAdminRefresh: ActionAdminRefresh,
	CallbackAdminExport:  ActionAdminExport,
}

// ParseAction decodes callback data. Anything unrecognised, including a
// product prefix with a non-numeric id, is ActionUnknown.
func ParseAction(data string) Action {
	if kind, ok := exactActions[data]; ok {
		return Action{Kind: kind}
	}

	if id, ok := prefixedID(data, CallbackProductPrefix); ok {
		return Action{Kind: ActionProduct, ProductID: id}
	}
	if id, ok := prefixedID(data, CallbackOrderPrefix); ok {
		return Action{Kind: ActionOrderProduct, ProductID: id}
	}

	return Action{Kind: ActionUnknown}
}

func prefixedID(data, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(data, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

func productCallback(id int) string {
	return CallbackProductPrefix + strconv.Itoa(id)
}

func orderCallback(id int) string {
	return CallbackOrderPrefix + strconv.Itoa(id)
}
