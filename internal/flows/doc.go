// Package flows contains pure-function orchestrators for every Client
// operation that touches session state.
//
// Each flow function (RunSignIn, RunRefresh, RunSignOut, etc.) accepts a typed
// dependency struct and returns results without side-effects beyond those
// dependencies. This design enables exhaustive unit testing with mock
// dependencies and keeps the root Client type thin.
//
// # Architecture boundaries
//
// Flow functions coordinate the durable store, the reactive store, the token
// checker, and the auth endpoints. They do NOT own any of these resources —
// ownership stays with the Client.
//
// # What this package must NOT do
//
//   - Hold mutable state between calls.
//   - Import the root freshcart package (to avoid import cycles).
//   - Perform I/O directly — all I/O is mediated through dependency funcs.
package flows
