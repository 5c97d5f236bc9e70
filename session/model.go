package session

import "strings"

// Role identifies which role-scoped area of the platform a user belongs to.
// The set is closed; anything else parses to RoleUnknown.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleStore     Role = "store"
	RoleDriver    Role = "driver"
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleWarehouse Role = "warehouse"
	RoleSales     Role = "sales"
	RoleSupplier  Role = "supplier"

	// RoleUnknown is the parse result for anything outside the closed set.
	RoleUnknown Role = ""
)

// ParseRole normalizes a backend-supplied role string into the closed enum.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer
	case RoleStore:
		return RoleStore
	case RoleDriver:
		return RoleDriver
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	case RoleWarehouse:
		return RoleWarehouse
	case RoleSales:
		return RoleSales
	case RoleSupplier:
		return RoleSupplier
	}
	return RoleUnknown
}

// UserIdentity is the platform user attached to a session.
type UserIdentity struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// TokenPair carries the bearer credentials for a session. Both are opaque to
// this client; the access token additionally carries an expiry claim that the
// token package inspects without verification.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Session is the authenticated user's identity plus its bearer credentials.
//
// Invariant: Authenticated==true implies both tokens are non-empty and
// User.Role is set. [Store.Save] enforces this at persist time.
type Session struct {
	Authenticated bool         `json:"isAuthenticated"`
	User          UserIdentity `json:"user"`
	Tokens        TokenPair    `json:"tokens"`
}

// Empty returns the well-defined unauthenticated session: no tokens, an empty
// user with the default customer role. Consumers never see a nil session.
func Empty() Session {
	return Session{
		Authenticated: false,
		User:          UserIdentity{Role: RoleCustomer},
		Tokens:        TokenPair{},
	}
}

// Valid reports whether the session satisfies the authenticated-state
// invariant. An unauthenticated session is always valid.
func (s Session) Valid() bool {
	if !s.Authenticated {
		return true
	}
	return s.Tokens.AccessToken != "" &&
		s.Tokens.RefreshToken != "" &&
		s.User.Role != RoleUnknown
}

// SelectedStore is the durable record of the storefront a user is currently
// browsing or managing. It lives alongside the session under its own key.
type SelectedStore struct {
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
