// Package freshcart is the client-side engine for the FreshCart multi-role
// grocery delivery platform. It owns the session lifecycle — durable
// persistence, reactive in-memory state, token freshness, refresh-on-demand,
// teardown — plus role-gated access for embedding applications, the role
// navigation model, and typed clients for the platform's HTTP API.
//
// The package is designed for explicit lifecycles: a [Client] is built through
// [Builder.Build], seeded with [Client.Initialize], and torn down with
// [Client.Close]. There is no import-time singleton.
//
// # Architecture boundaries
//
// freshcart is the public surface. It exposes [Client], [Builder], [Config],
// and value types. Flow orchestration lives under internal/ and is never
// exported; session state, token inspection, HTTP transport, guards, and
// navigation live in their own subpackages.
//
// # What this package must NOT do
//
//   - Expose Redis clients or durable key layout in its public API.
//   - Verify token signatures (a backend responsibility).
//   - Retry a failed refresh: one attempt, then the session is torn down.
package freshcart
