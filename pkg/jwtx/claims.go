package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access-token claims the panel backend issues. Only exp and
// roleId are load-bearing for the access layer; the profile fields ride along
// for display and any claim we don't model survives a decode untouched.
type Claims struct {
	jwt.RegisteredClaims

	// RoleID identifies the caller's role (1 admin, 2 user, 3 organiser).
	RoleID int `json:"roleId,omitempty"`

	// Name is the display name for the signed-in user.
	Name string `json:"name,omitempty"`

	// Email the account was registered with.
	Email string `json:"email,omitempty"`
}

// ExpiredAt reports whether the token is expired at the given instant.
// A missing exp claim counts as expired: the backend always sets one, so a
// token without it is not something we should keep trusting.
func (c *Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return c.ExpiresAt.Unix() < now.Unix()
}

// Expired is ExpiredAt against the wall clock.
func (c *Claims) Expired() bool {
	return c.ExpiredAt(time.Now())
}

// ExpiresIn returns the remaining lifetime of the claims at the given
// instant. Zero or negative means already expired (or no exp claim at all).
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}
