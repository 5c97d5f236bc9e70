// Package nav defines the role-scoped navigation model: a fixed, ordered list
// of entries per role, looked up by the shell layout. It is a pure table — no
// computation, no network, no state.
package nav

import "github.com/RivoltaAlpha/FreshCart-sub001/session"

// Icon is a symbolic icon reference. The presentation layer resolves it to an
// actual glyph at render time; nothing here depends on an icon toolkit.
type Icon string

const (
	IconHome      Icon = "home"
	IconBasket    Icon = "basket"
	IconCart      Icon = "cart"
	IconOrders    Icon = "orders"
	IconHeart     Icon = "heart"
	IconUser      Icon = "user"
	IconGear      Icon = "gear"
	IconBoxes     Icon = "boxes"
	IconTags      Icon = "tags"
	IconTruck     Icon = "truck"
	IconRoute     Icon = "route"
	IconWallet    Icon = "wallet"
	IconUsers     Icon = "users"
	IconStore     Icon = "store"
	IconChart     Icon = "chart"
	IconClipboard Icon = "clipboard"
)

// Entry is one navigation item. ID doubles as the render key and the
// active-entry comparison value, so it is unique within a role's list.
type Entry struct {
	ID    string
	Label string
	Icon  Icon
	Path  string
}

var customerEntries = []Entry{
	{ID: "home", Label: "Home", Icon: IconHome, Path: "/customer/home"},
	{ID: "products", Label: "Products", Icon: IconBasket, Path: "/customer/products"},
	{ID: "cart", Label: "Cart", Icon: IconCart, Path: "/customer/cart"},
	{ID: "orders", Label: "Orders", Icon: IconOrders, Path: "/customer/orders"},
	{ID: "wishlist", Label: "Wishlist", Icon: IconHeart, Path: "/customer/wishlist"},
	{ID: "profile", Label: "Profile", Icon: IconUser, Path: "/customer/profile"},
	{ID: "settings", Label: "Settings", Icon: IconGear, Path: "/customer/settings"},
}

var storeEntries = []Entry{
	{ID: "dashboard", Label: "Dashboard", Icon: IconChart, Path: "/store/dashboard"},
	{ID: "products", Label: "Products", Icon: IconBasket, Path: "/store/products"},
	{ID: "categories", Label: "Categories", Icon: IconTags, Path: "/store/categories"},
	{ID: "inventory", Label: "Inventory", Icon: IconBoxes, Path: "/store/inventory"},
	{ID: "orders", Label: "Orders", Icon: IconOrders, Path: "/store/orders"},
	{ID: "payments", Label: "Payments", Icon: IconWallet, Path: "/store/payments"},
	{ID: "settings", Label: "Settings", Icon: IconGear, Path: "/store/settings"},
}

var driverEntries = []Entry{
	{ID: "dashboard", Label: "Dashboard", Icon: IconChart, Path: "/driver/dashboard"},
	{ID: "deliveries", Label: "Deliveries", Icon: IconTruck, Path: "/driver/deliveries"},
	{ID: "routes", Label: "Routes", Icon: IconRoute, Path: "/driver/routes"},
	{ID: "earnings", Label: "Earnings", Icon: IconWallet, Path: "/driver/earnings"},
	{ID: "profile", Label: "Profile", Icon: IconUser, Path: "/driver/profile"},
	{ID: "settings", Label: "Settings", Icon: IconGear, Path: "/driver/settings"},
}

var adminEntries = []Entry{
	{ID: "dashboard", Label: "Dashboard", Icon: IconChart, Path: "/admin/dashboard"},
	{ID: "users", Label: "Users", Icon: IconUsers, Path: "/admin/users"},
	{ID: "stores", Label: "Stores", Icon: IconStore, Path: "/admin/stores"},
	{ID: "categories", Label: "Categories", Icon: IconTags, Path: "/admin/categories"},
	{ID: "orders", Label: "Orders", Icon: IconOrders, Path: "/admin/orders"},
	{ID: "payments", Label: "Payments", Icon: IconWallet, Path: "/admin/payments"},
	{ID: "reports", Label: "Reports", Icon: IconClipboard, Path: "/admin/reports"},
	{ID: "settings", Label: "Settings", Icon: IconGear, Path: "/admin/settings"},
}

// EntriesFor returns the ordered navigation list for a role. Unknown roles —
// including the back-office roles that have no shell of their own — get an
// empty list rather than an error.
func EntriesFor(role session.Role) []Entry {
	switch role {
	case session.RoleCustomer:
		return customerEntries
	case session.RoleStore:
		return storeEntries
	case session.RoleDriver:
		return driverEntries
	case session.RoleAdmin:
		return adminEntries
	}
	return nil
}

// Active returns the entry matching the currently active id, if any.
func Active(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
