package flows

import (
	"context"

	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

// SignInFailureKind classifies sign-in flow failures for root-level mapping.
type SignInFailureKind int

const (
	SignInFailureNone SignInFailureKind = iota
	SignInFailureValidation
	SignInFailureCall
	// SignInFailureInvalidSession means the backend answered 2xx but the
	// session it returned violates the authenticated-state invariant.
	SignInFailureInvalidSession
	SignInFailurePersist
)

// Credentials is the flow-local sign-in payload.
type Credentials struct {
	Email    string
	Password string
}

// SignUpProfile is the flow-local account creation payload. Role is advisory;
// the backend decides the effective role on the returned session.
type SignUpProfile struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// SignInResult carries the established session or failure metadata.
type SignInResult struct {
	Failure SignInFailureKind
	Err     error
	Session session.Session
}

// SignInDeps captures sign-in flow dependencies.
type SignInDeps struct {
	Validate func(Credentials) error
	Call     func(ctx context.Context, creds Credentials) (session.Session, error)
	Persist  func(ctx context.Context, sess session.Session) error
	Apply    func(sess session.Session)
}

// SignUpDeps captures sign-up flow dependencies.
type SignUpDeps struct {
	Validate func(SignUpProfile) error
	Call     func(ctx context.Context, profile SignUpProfile) (session.Session, error)
	Persist  func(ctx context.Context, sess session.Session) error
	Apply    func(sess session.Session)
}

// RunSignIn validates credentials, exchanges them for a session, and persists
// it durable-first.
func RunSignIn(ctx context.Context, creds Credentials, deps SignInDeps) SignInResult {
	if err := deps.Validate(creds); err != nil {
		return SignInResult{Failure: SignInFailureValidation, Err: err}
	}
	sess, err := deps.Call(ctx, creds)
	if err != nil {
		return SignInResult{Failure: SignInFailureCall, Err: err}
	}
	return establish(ctx, sess, deps.Persist, deps.Apply)
}

// RunSignUp creates an account and establishes its session the same way
// sign-in does.
func RunSignUp(ctx context.Context, profile SignUpProfile, deps SignUpDeps) SignInResult {
	if err := deps.Validate(profile); err != nil {
		return SignInResult{Failure: SignInFailureValidation, Err: err}
	}
	sess, err := deps.Call(ctx, profile)
	if err != nil {
		return SignInResult{Failure: SignInFailureCall, Err: err}
	}
	return establish(ctx, sess, deps.Persist, deps.Apply)
}

func establish(
	ctx context.Context,
	sess session.Session,
	persist func(context.Context, session.Session) error,
	apply func(session.Session),
) SignInResult {
	sess.Authenticated = true
	if !sess.Valid() {
		return SignInResult{Failure: SignInFailureInvalidSession}
	}
	if err := persist(ctx, sess); err != nil {
		return SignInResult{Failure: SignInFailurePersist, Err: err}
	}
	apply(sess)
	return SignInResult{Failure: SignInFailureNone, Session: sess}
}
