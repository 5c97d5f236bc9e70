// Package session owns the client's authentication state: the [Session] model,
// a Redis-backed durable [Store], and the in-memory [Reactive] container that
// UI-facing consumers subscribe to.
//
// # Two stores, one mutation path
//
// The durable store is the source of truth. It is written only by Save/Clear,
// and read synchronously by route guards before any reactive machinery exists.
// The [Reactive] container is a cache of it: seeded once at startup and kept in
// sync by the same mutation path, never written independently.
//
// # Architecture boundaries
//
// This package does NOT interpret bearer tokens, call the platform API, or make
// access-control decisions — those belong to the token package, the api
// package, and the middleware guards respectively.
//
// # What this package must NOT do
//
//   - Import the root freshcart package (no upward imports).
//   - Surface malformed durable data as an error: it reads as "no session".
//   - Persist a session marked authenticated with missing credentials.
package session
