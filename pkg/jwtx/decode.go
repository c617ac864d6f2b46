// Package jwtx decodes the panel's bearer tokens client-side.
//
// Decoding here is deliberately unverified: the backend is the authority on
// token validity and signs/checks signatures itself. This package only reads
// the claims segment so the client can gate navigation and arm the expiry
// timer. Do not mistake a successful Decode for authentication.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports a token that is not a decodable three-segment JWT.
var ErrMalformed = errors.New("jwtx: malformed token")

// Decode parses the claims segment of a bearer token without verifying the
// signature. Any structural problem (wrong segment count, bad base64, bad
// JSON) comes back as ErrMalformed; decode failure is an expected outcome,
// not an exceptional one.
func Decode(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformed
	}
	return claims, nil
}

// IsExpiredAt reports whether the token is unusable at the given instant.
// It fails closed: an undecodable token or one without an exp claim is
// treated the same as an expired one, so callers never need to distinguish
// "broken" from "stale".
func IsExpiredAt(token string, now time.Time) bool {
	claims, err := Decode(token)
	if err != nil {
		return true
	}
	return claims.ExpiredAt(now)
}

// IsExpired is IsExpiredAt against the wall clock.
func IsExpired(token string) bool {
	return IsExpiredAt(token, time.Now())
}
