package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

func backendSession() session.Session {
	return session.Session{
		User:   session.UserIdentity{UserID: "user-1", Email: "amina@example.com", Role: session.RoleCustomer},
		Tokens: session.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}
}

func TestRunSignInHappyPath(t *testing.T) {
	var persisted, applied session.Session

	res := RunSignIn(context.Background(), Credentials{Email: "amina@example.com", Password: "p4ssword!"}, SignInDeps{
		Validate: func(c Credentials) error { return nil },
		Call: func(ctx context.Context, c Credentials) (session.Session, error) {
			return backendSession(), nil
		},
		Persist: func(ctx context.Context, s session.Session) error { persisted = s; return nil },
		Apply:   func(s session.Session) { applied = s },
	})

	if res.Failure != SignInFailureNone {
		t.Fatalf("failure = %v err = %v", res.Failure, res.Err)
	}
	if !persisted.Authenticated || !applied.Authenticated {
		t.Fatal("established session must be authenticated in both stores")
	}
	if persisted != applied {
		t.Fatalf("stores diverged: %+v vs %+v", persisted, applied)
	}
}

func TestRunSignInValidationShortCircuits(t *testing.T) {
	wantErr := errors.New("email required")
	calls := 0

	res := RunSignIn(context.Background(), Credentials{}, SignInDeps{
		Validate: func(c Credentials) error { return wantErr },
		Call: func(ctx context.Context, c Credentials) (session.Session, error) {
			calls++
			return backendSession(), nil
		},
		Persist: func(ctx context.Context, s session.Session) error { return nil },
		Apply:   func(s session.Session) {},
	})

	if res.Failure != SignInFailureValidation || !errors.Is(res.Err, wantErr) {
		t.Fatalf("failure = %v err = %v", res.Failure, res.Err)
	}
	if calls != 0 {
		t.Fatal("backend called despite failed validation")
	}
}

func TestRunSignInRejectsInvalidBackendSession(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*session.Session)
	}{
		{"missing refresh token", func(s *session.Session) { s.Tokens.RefreshToken = "" }},
		{"missing access token", func(s *session.Session) { s.Tokens.AccessToken = "" }},
		{"unknown role", func(s *session.Session) { s.User.Role = session.RoleUnknown }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			persisted := false
			sess := backendSession()
			tt.mutate(&sess)

			res := RunSignIn(context.Background(), Credentials{Email: "a@b.co", Password: "p4ssword!"}, SignInDeps{
				Validate: func(c Credentials) error { return nil },
				Call: func(ctx context.Context, c Credentials) (session.Session, error) {
					return sess, nil
				},
				Persist: func(ctx context.Context, s session.Session) error { persisted = true; return nil },
				Apply:   func(s session.Session) {},
			})

			if res.Failure != SignInFailureInvalidSession {
				t.Fatalf("failure = %v, want invalid session", res.Failure)
			}
			if persisted {
				t.Fatal("invalid session must not be persisted")
			}
		})
	}
}

func TestRunSignOutClearsEvenWhenRemoteFails(t *testing.T) {
	cleared := false
	reset := false

	err := RunSignOut(context.Background(), SignOutDeps{
		CurrentSession: func() session.Session {
			s := backendSession()
			s.Authenticated = true
			return s
		},
		Call:          func(ctx context.Context, userID string) error { return errors.New("backend down") },
		ClearDurable:  func(ctx context.Context) error { cleared = true; return nil },
		ResetReactive: func() { reset = true },
	})

	if err != nil {
		t.Fatalf("sign-out failed: %v", err)
	}
	if !cleared || !reset {
		t.Fatalf("teardown incomplete: cleared=%v reset=%v", cleared, reset)
	}
}

func TestRunSignOutSkipsRemoteWithoutUser(t *testing.T) {
	calls := 0
	cleared := false

	err := RunSignOut(context.Background(), SignOutDeps{
		CurrentSession: func() session.Session { return session.Empty() },
		Call:           func(ctx context.Context, userID string) error { calls++; return nil },
		ClearDurable:   func(ctx context.Context) error { cleared = true; return nil },
		ResetReactive:  func() {},
	})

	if err != nil {
		t.Fatalf("sign-out failed: %v", err)
	}
	if calls != 0 {
		t.Fatal("remote sign-out attempted without a user id")
	}
	if !cleared {
		t.Fatal("durable entry not cleared")
	}
}
