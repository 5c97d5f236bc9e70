package session

import "sync"

// Reactive is the in-memory subscribable session container. It holds exactly
// one session at a time; SetState is a full replace. The initial value is
// [Empty], so GetState never returns an inconsistent or nil-like state.
//
// SetState holds the lock for the assignment and notifies subscribers after
// releasing it, so a reader always observes a complete pre- or post-update
// snapshot. Subscribers are invoked synchronously on the mutating goroutine.
type Reactive struct {
	mu      sync.RWMutex
	current Session

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Session)
}

// NewReactive creates a reactive store initialized to [Empty].
func NewReactive() *Reactive {
	return &Reactive{
		current: Empty(),
		subs:    map[int]func(Session){},
	}
}

// GetState returns the current session snapshot.
func (r *Reactive) GetState() Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SetState replaces the current session and notifies subscribers in
// registration order.
func (r *Reactive) SetState(sess Session) {
	r.mu.Lock()
	r.current = sess
	r.mu.Unlock()

	r.subMu.Lock()
	subs := make([]func(Session), 0, len(r.subs))
	for id := 0; id < r.nextID; id++ {
		if fn, ok := r.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	r.subMu.Unlock()

	for _, fn := range subs {
		fn(sess)
	}
}

// Reset replaces the current session with [Empty].
func (r *Reactive) Reset() {
	r.SetState(Empty())
}

// Subscribe registers fn to be called on every state replacement and returns
// an unsubscribe func. Unsubscribing twice is a no-op.
func (r *Reactive) Subscribe(fn func(Session)) func() {
	r.subMu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.subMu.Unlock()

	return func() {
		r.subMu.Lock()
		delete(r.subs, id)
		r.subMu.Unlock()
	}
}
