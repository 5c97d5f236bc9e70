// Package fiber adapts the freshcart route guards to the Fiber framework.
// The predicate is identical to the net/http guards: authenticated AND exact
// role match, fail closed, original location preserved for sign-in.
package fiber

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	freshcart "github.com/RivoltaAlpha/FreshCart-sub001"
	"github.com/RivoltaAlpha/FreshCart-sub001/middleware"
	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

// SessionLocal is the Locals key guards store the admitted session under.
const SessionLocal = "freshcartSession"

// Guard returns a Fiber handler gating a role-scoped area.
func Guard(client *freshcart.Client, role session.Role) fiber.Handler {
	return guard(client, func(sess session.Session) bool {
		return sess.Authenticated && sess.User.Role == role
	})
}

// RequireAuthenticated admits any authenticated session.
func RequireAuthenticated(client *freshcart.Client) fiber.Handler {
	return guard(client, func(sess session.Session) bool {
		return sess.Authenticated
	})
}

// SessionFromCtx returns the session a guard stored for this request.
func SessionFromCtx(c *fiber.Ctx) (session.Session, bool) {
	sess, ok := c.Locals(SessionLocal).(session.Session)
	return sess, ok
}

func guard(client *freshcart.Client, allow func(session.Session) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil {
			return redirectToSignIn(c)
		}

		sess := client.PersistedSession(c.Context())
		if !allow(sess) {
			return redirectToSignIn(c)
		}

		c.Locals(SessionLocal, sess)
		return c.Next()
	}
}

func redirectToSignIn(c *fiber.Ctx) error {
	target := middleware.SignInPath + "?" + middleware.RedirectParam + "=" + url.QueryEscape(c.OriginalURL())
	return c.Redirect(target, fiber.StatusFound)
}
