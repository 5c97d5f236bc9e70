package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewStore(rdb, "fc"), mr
}

func testSession() Session {
	return Session{
		User: UserIdentity{
			UserID:    "user-1",
			FirstName: "Amina",
			LastName:  "Odhiambo",
			Email:     "amina@example.com",
			Role:      RoleCustomer,
		},
		Tokens: TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}
}

func TestStoreSaveForcesAuthenticated(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	in := testSession()
	in.Authenticated = false

	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !got.Authenticated {
		t.Fatal("expected Authenticated forced true on save")
	}

	want := in
	want.Authenticated = true
	if got != want {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
}

func TestStoreSaveRejectsMissingCredentials(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		name   string
		mutate func(*Session)
	}{
		{"missing access token", func(s *Session) { s.Tokens.AccessToken = "" }},
		{"missing refresh token", func(s *Session) { s.Tokens.RefreshToken = "" }},
		{"missing role", func(s *Session) { s.User.Role = RoleUnknown }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testSession()
			tt.mutate(&in)
			if err := store.Save(context.Background(), in); err == nil {
				t.Fatal("expected save to reject invariant-violating session")
			}
		})
	}
}

func TestStoreReadAbsentIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != Empty() {
		t.Fatalf("expected empty session, got %+v", got)
	}
}

func TestStoreReadMalformedIsEmpty(t *testing.T) {
	store, mr := newTestStore(t)

	blobs := []string{
		"not json at all",
		"{truncated",
		`"a bare string"`,
		`{"isAuthenticated":true}`, // authenticated without credentials
	}

	for _, blob := range blobs {
		mr.Set("fc:auth", blob)
		got, err := store.Read(context.Background())
		if err != nil {
			t.Fatalf("read of %q returned error: %v", blob, err)
		}
		if got != Empty() {
			t.Fatalf("read of %q: expected empty session, got %+v", blob, got)
		}
	}
}

func TestStoreClear(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if mr.Exists("fc:auth") {
		t.Fatal("expected auth entry removed")
	}

	// clearing again is a no-op
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}

func TestSelectedStoreRoundtrip(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.ReadSelectedStore(ctx); err != nil || ok {
		t.Fatalf("expected no selection, got ok=%v err=%v", ok, err)
	}

	sel := SelectedStore{StoreID: "store-9", Name: "Riverside Greens", Address: "14 Market Rd"}
	if err := store.SaveSelectedStore(ctx, sel); err != nil {
		t.Fatalf("save selection failed: %v", err)
	}

	got, ok, err := store.ReadSelectedStore(ctx)
	if err != nil || !ok {
		t.Fatalf("read selection failed: ok=%v err=%v", ok, err)
	}
	if got != sel {
		t.Fatalf("selection mismatch: got %+v want %+v", got, sel)
	}

	mr.Set("fc:selectedStore", "{broken")
	if _, ok, err := store.ReadSelectedStore(ctx); err != nil || ok {
		t.Fatalf("malformed selection should read as absent, got ok=%v err=%v", ok, err)
	}

	if err := store.ClearSelectedStore(ctx); err != nil {
		t.Fatalf("clear selection failed: %v", err)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"customer", RoleCustomer},
		{"  Driver ", RoleDriver},
		{"ADMIN", RoleAdmin},
		{"warehouse", RoleWarehouse},
		{"shopper", RoleUnknown},
		{"", RoleUnknown},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
