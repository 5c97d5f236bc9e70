package flows

import (
	"context"
	"errors"

	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

// RefreshFailureKind classifies refresh flow failures for root-level mapping.
type RefreshFailureKind int

const (
	RefreshFailureNone RefreshFailureKind = iota
	// RefreshFailureUnauthenticated means the reactive state carried no
	// refresh token or no user id. No network call was attempted.
	RefreshFailureUnauthenticated
	// RefreshFailureCall covers both transport failures and non-2xx
	// responses from the refresh endpoint.
	RefreshFailureCall
	RefreshFailurePersist
)

// RefreshResult carries either the replacement access token or failure
// metadata. On any failure the caller must tear the whole session down —
// the single-attempt, fail-closed policy lives at the call site, not here.
type RefreshResult struct {
	Failure     RefreshFailureKind
	Err         error
	UserID      string
	AccessToken string
}

// RefreshDeps captures refresh flow dependencies.
type RefreshDeps struct {
	CurrentSession func() session.Session
	Call           func(ctx context.Context, userID, refreshToken string) (string, error)
	Persist        func(ctx context.Context, sess session.Session) error
	Apply          func(sess session.Session)
	Warn           func(msg string, args ...any)
}

// RunRefresh exchanges the current refresh token for a new access token and
// applies it in place: the access token is replaced in both stores, the
// refresh token is retained. Exactly one network attempt is made.
func RunRefresh(ctx context.Context, deps RefreshDeps) RefreshResult {
	sess := deps.CurrentSession()
	if sess.Tokens.RefreshToken == "" || sess.User.UserID == "" {
		return RefreshResult{
			Failure: RefreshFailureUnauthenticated,
			Err:     errors.New("refresh requires a refresh token and a user id"),
		}
	}

	access, err := deps.Call(ctx, sess.User.UserID, sess.Tokens.RefreshToken)
	if err != nil {
		return RefreshResult{
			Failure: RefreshFailureCall,
			Err:     err,
			UserID:  sess.User.UserID,
		}
	}
	if access == "" {
		return RefreshResult{
			Failure: RefreshFailureCall,
			Err:     errors.New("refresh endpoint returned an empty access token"),
			UserID:  sess.User.UserID,
		}
	}

	sess.Tokens.AccessToken = access
	sess.Authenticated = true

	// Durable first, reactive second: the durable copy is the source of truth
	// and the reactive cache must never be ahead of it.
	if err := deps.Persist(ctx, sess); err != nil {
		if deps.Warn != nil {
			deps.Warn("refresh succeeded but session persist failed", "error", err)
		}
		return RefreshResult{
			Failure: RefreshFailurePersist,
			Err:     err,
			UserID:  sess.User.UserID,
		}
	}
	deps.Apply(sess)

	return RefreshResult{
		Failure:     RefreshFailureNone,
		UserID:      sess.User.UserID,
		AccessToken: access,
	}
}
