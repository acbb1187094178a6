// Package token extracts claims from auth tokens the backend issued.
//
// The validator never verifies signatures; tokens are minted and checked by
// the backend, and this package only peeks at expiry so cache lifetimes can
// be clamped to the token's remaining life.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry returns the exp claim of a JWT without verifying its signature.
// Opaque tokens and tokens without an exp claim yield (zero, false).
func Expiry(tokenStr string) (time.Time, bool) {
	if tokenStr == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Remaining returns how long the token is still valid at now. Tokens with no
// readable expiry yield (0, false); already expired tokens yield a
// non-positive duration with ok true.
func Remaining(tokenStr string, now time.Time) (time.Duration, bool) {
	exp, ok := Expiry(tokenStr)
	if !ok {
		return 0, false
	}
	return exp.Sub(now), true
}
