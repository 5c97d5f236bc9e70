package internaldefs

import freshcart "github.com/RivoltaAlpha/FreshCart-sub001"

// CounterDef binds a client counter to its exported name and help text.
type CounterDef struct {
	ID   freshcart.MetricID
	Name string
	Help string
}

// CounterDefs is the canonical export order for client counters. Both
// exporters iterate it so the two surfaces never drift.
var CounterDefs = []CounterDef{
	{freshcart.MetricSignInSuccess, "freshcart_signin_success_total", "Successful sign-ins."},
	{freshcart.MetricSignInFailure, "freshcart_signin_failure_total", "Failed sign-ins."},
	{freshcart.MetricSignUpSuccess, "freshcart_signup_success_total", "Successful account creations."},
	{freshcart.MetricSignUpFailure, "freshcart_signup_failure_total", "Failed account creations."},
	{freshcart.MetricSignOut, "freshcart_signout_total", "Explicit sign-outs."},
	{freshcart.MetricRefreshSuccess, "freshcart_refresh_success_total", "Successful token refreshes."},
	{freshcart.MetricRefreshFailure, "freshcart_refresh_failure_total", "Failed token refreshes (session torn down)."},
	{freshcart.MetricRefreshSkippedUnauthenticated, "freshcart_refresh_skipped_unauthenticated_total", "Refreshes rejected locally for missing credentials."},
	{freshcart.MetricSessionCleared, "freshcart_session_cleared_total", "Session teardowns (sign-out or fail-closed refresh)."},
	{freshcart.MetricStaleTokenDetected, "freshcart_stale_token_total", "Stale access tokens detected before an API call."},
}
