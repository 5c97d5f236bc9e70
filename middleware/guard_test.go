package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	freshcart "github.com/RivoltaAlpha/FreshCart-sub001"
	"github.com/RivoltaAlpha/FreshCart-sub001/session"
)

func newGuardedClient(t *testing.T) (*freshcart.Client, *session.Store) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	client, err := freshcart.New().
		WithBaseURL("http://localhost:1").
		WithRedis(rdb).
		Build()
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	t.Cleanup(client.Close)

	return client, session.NewStore(rdb, freshcart.DefaultConfig().Session.RedisPrefix)
}

func persist(t *testing.T, store *session.Store, role session.Role) {
	t.Helper()

	err := store.Save(context.Background(), session.Session{
		User:   session.UserIdentity{UserID: "user-1", Role: role},
		Tokens: session.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	})
	if err != nil {
		t.Fatalf("persist session: %v", err)
	}
}

func requestGuarded(t *testing.T, mw func(http.Handler) http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	var sawSession bool
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSession = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code == http.StatusOK && !sawSession {
		t.Fatal("admitted request carried no session in context")
	}
	return rec
}

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	client, _ := newGuardedClient(t)

	for _, role := range []session.Role{session.RoleCustomer, session.RoleStore, session.RoleDriver, session.RoleAdmin} {
		rec := requestGuarded(t, Guard(client, role), "/area")
		if rec.Code != http.StatusFound {
			t.Fatalf("role %s: code = %d, want 302", role, rec.Code)
		}
	}
}

func TestGuardAdmitsMatchingRole(t *testing.T) {
	client, store := newGuardedClient(t)
	persist(t, store, session.RoleDriver)

	rec := requestGuarded(t, Guard(client, session.RoleDriver), "/driver/runs")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
}

func TestGuardRedirectsMismatchedRole(t *testing.T) {
	client, store := newGuardedClient(t)
	persist(t, store, session.RoleCustomer)

	// Fail closed on any mismatch, for every role.
	rec := requestGuarded(t, Guard(client, session.RoleStore), "/store/inventory")
	if rec.Code != http.StatusFound {
		t.Fatalf("code = %d, want 302", rec.Code)
	}
}

func TestGuardPreservesRequestedLocation(t *testing.T) {
	client, _ := newGuardedClient(t)

	rec := requestGuarded(t, Guard(client, session.RoleCustomer), "/customer/orders?page=2")

	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse redirect location: %v", err)
	}
	if loc.Path != SignInPath {
		t.Fatalf("redirect path = %q, want %q", loc.Path, SignInPath)
	}
	if got := loc.Query().Get(RedirectParam); got != "/customer/orders?page=2" {
		t.Fatalf("preserved location = %q", got)
	}
}

func TestRequireAuthenticatedAdmitsAnyRole(t *testing.T) {
	client, store := newGuardedClient(t)
	persist(t, store, session.RoleWarehouse)

	rec := requestGuarded(t, RequireAuthenticated(client), "/profile")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
}

func TestGuardFailsClosedOnMalformedDurableData(t *testing.T) {
	client, store := newGuardedClient(t)
	persist(t, store, session.RoleCustomer)

	// Corrupt the durable entry out from under the guard.
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}

	rec := requestGuarded(t, Guard(client, session.RoleCustomer), "/customer/home")
	if rec.Code != http.StatusFound {
		t.Fatalf("code = %d, want 302 after session removal", rec.Code)
	}
}
