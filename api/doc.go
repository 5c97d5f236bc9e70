// Package api is the typed HTTP surface of the FreshCart platform backend.
// It owns request construction, bearer injection, timeout and bounded retry
// policy, and the normalization of error bodies into a single message shape.
//
// # Error normalization
//
// The backend answers failures inconsistently: JSON {"message": ...}, JSON
// {"error": ...}, or plain text. All of them collapse into one [*Error] with a
// human-readable message; callers never parse response bodies themselves.
//
// # Architecture boundaries
//
// This package knows nothing about session persistence or staleness. Bearer
// credentials arrive through the [CredentialSource] interface; the root client
// implements it with the refresh-on-demand policy.
//
// # What this package must NOT do
//
//   - Store or cache tokens (the session package owns state).
//   - Retry non-idempotent requests, or retry more than the configured bound.
//   - Let a request run without a deadline.
package api
