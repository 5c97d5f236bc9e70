package middleware

import (
	"context"
	"net/http"
	"net/url"

	freshcart "github.com/RivoltaAlpha/FreshCart-sub001"
	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

// SignInPath is where denied visitors are redirected.
const SignInPath = "/login"

// RedirectParam is the query parameter carrying the originally requested
// location, so sign-in can return the user afterward.
const RedirectParam = "redirect"

type sessionContextKey struct{}

// SessionFromContext returns the session a guard injected for this request.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(session.Session)
	return sess, ok
}

// Guard gates a role-scoped area. It reads the durable session store
// synchronously and admits only an authenticated session with exactly the
// required role; everything else is redirected to [SignInPath] with the
// original location in the [RedirectParam] query parameter.
func Guard(client *freshcart.Client, role session.Role) func(http.Handler) http.Handler {
	return guard(client, func(sess session.Session) bool {
		return sess.Authenticated && sess.User.Role == role
	})
}

// RequireAuthenticated gates an area shared by all roles: any authenticated
// session is admitted.
func RequireAuthenticated(client *freshcart.Client) func(http.Handler) http.Handler {
	return guard(client, func(sess session.Session) bool {
		return sess.Authenticated
	})
}

func guard(client *freshcart.Client, allow func(session.Session) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				redirectToSignIn(w, r)
				return
			}

			sess := client.PersistedSession(r.Context())
			if !allow(sess) {
				redirectToSignIn(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func redirectToSignIn(w http.ResponseWriter, r *http.Request) {
	target := SignInPath + "?" + RedirectParam + "=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusFound)
}
