package flows

import (
	"context"

	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

// SignOutDeps captures sign-out flow dependencies.
type SignOutDeps struct {
	CurrentSession func() session.Session
	Call           func(ctx context.Context, userID string) error
	ClearDurable   func(ctx context.Context) error
	ResetReactive  func()
	Warn           func(msg string, args ...any)
}

// RunSignOut tears the session down. The remote invalidation is best-effort:
// a failed or skipped call never leaves the local session standing.
func RunSignOut(ctx context.Context, deps SignOutDeps) error {
	sess := deps.CurrentSession()
	if sess.User.UserID != "" {
		if err := deps.Call(ctx, sess.User.UserID); err != nil && deps.Warn != nil {
			deps.Warn("remote sign-out failed, clearing local session anyway", "error", err)
		}
	}

	err := deps.ClearDurable(ctx)
	deps.ResetReactive()
	return err
}

// RunTeardown is the local-only variant used when the session must be
// destroyed without touching the network (refresh failure, decode failure).
func RunTeardown(ctx context.Context, deps SignOutDeps) error {
	err := deps.ClearDurable(ctx)
	deps.ResetReactive()
	return err
}
