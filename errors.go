package freshcart

import "errors"

var (
	// ErrClientNotReady is returned when a Client method runs before Build or
	// after Close.
	ErrClientNotReady = errors.New("client not ready")
	// ErrUnauthenticated is returned when an operation needs a live session
	// and none exists.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMissingRefreshCredentials is returned when a refresh is attempted
	// without a refresh token or user id. No network call is made.
	ErrMissingRefreshCredentials = errors.New("missing refresh credentials")
	// ErrRefreshFailed wraps the cause of a failed refresh attempt. The
	// session has already been torn down when this error surfaces.
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrInvalidSignIn is returned when sign-in or sign-up input fails local
	// validation before any network call.
	ErrInvalidSignIn = errors.New("invalid sign-in request")
	// ErrInvalidSession is returned when the backend hands back a session
	// that violates the authenticated-state invariant.
	ErrInvalidSession = errors.New("backend returned an invalid session")
	// ErrNoSelectedStore is returned when no storefront selection exists.
	ErrNoSelectedStore = errors.New("no store selected")
)
