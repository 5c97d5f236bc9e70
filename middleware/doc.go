// Package middleware exposes HTTP route guards for role-scoped areas built on
// top of the freshcart client's persisted session.
//
// # Guards
//
//   - [Guard] — requires an authenticated session with a specific role.
//   - [RequireAuthenticated] — requires any authenticated session.
//
// Each guard reads the durable session store synchronously — no network call,
// no reactive machinery — and either injects the session into the request
// context or redirects to the sign-in page with the originally requested
// location preserved in the "redirect" query parameter.
//
// The predicate is uniform and fail-closed: not authenticated OR wrong role
// both redirect, for every role. A guard cannot detect a token the backend
// would reject; that is handled per-request by the refresh-on-demand
// credential source, not here.
//
// # What this package must NOT do
//
//   - Call the platform API or mutate session state.
//   - Apply different predicates to different roles.
package middleware
