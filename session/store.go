package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrStoreUnavailable is returned when the durable backend cannot be reached.
var ErrStoreUnavailable = errors.New("session store unavailable")

const (
	authKey          = "auth"
	selectedStoreKey = "selectedStore"
)

// Store is the durable session store. It holds the full session JSON under a
// fixed `auth` key and the selected storefront under `selectedStore`, both
// namespaced by a configurable prefix.
//
// Only Save and Clear write the session entry; guards and the reactive seed
// read it. Keeping a single writer is what prevents drift between the durable
// copy and the reactive cache.
type Store struct {
	redis  redis.UniversalClient
	prefix string
}

// NewStore creates a durable [Store] backed by the given Redis client.
// prefix sets the key namespace, typically one per browser/device context.
func NewStore(redis redis.UniversalClient, prefix string) *Store {
	return &Store{redis: redis, prefix: prefix}
}

func (s *Store) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + ":" + name
}

// Save persists the session, forcing Authenticated=true. Sessions reach Save
// only through sign-in, sign-up, or refresh, all of which carry live
// credentials; an invariant-violating session is rejected instead of stored.
func (s *Store) Save(ctx context.Context, sess Session) error {
	sess.Authenticated = true
	if !sess.Valid() {
		return errors.New("refusing to persist authenticated session with missing credentials")
	}

	blob, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.redis.Set(ctx, s.key(authKey), blob, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Read returns the stored session, or [Empty] when no entry exists. A
// malformed entry also reads as Empty — corrupt durable data must never
// propagate as an error, it simply means "no session".
func (s *Store) Read(ctx context.Context) (Session, error) {
	blob, err := s.redis.Get(ctx, s.key(authKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sess Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		return Empty(), nil
	}
	if !sess.Valid() {
		return Empty(), nil
	}
	return sess, nil
}

// Clear removes the durable session entry. Clearing an absent entry is not an
// error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key(authKey)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// SaveSelectedStore persists the currently selected storefront.
func (s *Store) SaveSelectedStore(ctx context.Context, sel SelectedStore) error {
	blob, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encode selected store: %w", err)
	}
	if err := s.redis.Set(ctx, s.key(selectedStoreKey), blob, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ReadSelectedStore returns the stored storefront selection. Absence and
// malformed data both read as the zero value with ok=false.
func (s *Store) ReadSelectedStore(ctx context.Context) (SelectedStore, bool, error) {
	blob, err := s.redis.Get(ctx, s.key(selectedStoreKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return SelectedStore{}, false, nil
		}
		return SelectedStore{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sel SelectedStore
	if err := json.Unmarshal(blob, &sel); err != nil {
		return SelectedStore{}, false, nil
	}
	return sel, true, nil
}

// ClearSelectedStore removes the storefront selection.
func (s *Store) ClearSelectedStore(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key(selectedStoreKey)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
