// Package token inspects access tokens on the client side. It never verifies
// signatures — that is the backend's job — it only reads the expiry claim to
// decide whether a token is worth sending at all.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the unverified claim set this client cares about.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Parse decodes the token payload without verifying its signature. The second
// return is false when the token cannot be decoded at all.
func Parse(raw string) (*Claims, bool) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// IsStale reports whether the access token's expiry has passed. A token that
// cannot be decoded, or that carries no expiry claim, is treated as stale:
// the refresh path decides what happens next, never the caller's error path.
//
// Pure and side-effect free; it never panics on malformed input.
func IsStale(raw string) bool {
	return IsStaleAt(raw, time.Now())
}

// IsStaleAt is [IsStale] against an explicit clock, for tests.
func IsStaleAt(raw string, now time.Time) bool {
	claims, ok := Parse(raw)
	if !ok {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	// Strict second-level comparison: a token expiring this very second is
	// still fresh.
	return claims.ExpiresAt.Unix() < now.Unix()
}
