// Package guard answers authorization questions from the stored session.
// It never talks to the network: the token is decoded locally and expiry is
// checked fail-closed, so a session the guard rejects may still be valid on
// the backend but never the other way around.
package guard

import (
	"context"
	"time"

	"github.com/eventfest/panel/internal/panel/session"
	"github.com/eventfest/panel/pkg/jwtx"
)

type Guard struct {
	sessions session.Store
	now      func() time.Time
}

func New(sessions session.Store) *Guard {
	return &Guard{
		sessions: sessions,
		now:      time.Now,
	}
}

// CurrentRole returns the role carried by the stored token. The second
// return is false when there is no session, the token does not decode, or
// it has expired.
func (g *Guard) CurrentRole(ctx context.Context) (int, bool) {
	token, err := g.sessions.Token(ctx)
	if err != nil {
		return 0, false
	}

	claims, err := jwtx.Decode(token)
	if err != nil {
		return 0, false
	}
	if claims.ExpiredAt(g.now()) {
		return 0, false
	}

	role := claims.RoleID
	if role == 0 {
		// Older tokens omit the role claim; fall back to the user
		// snapshot saved at login.
		user, err := g.sessions.User(ctx)
		if err != nil {
			return 0, false
		}
		role = user.RoleID
	}

	return role, true
}

// IsAuthenticated reports whether the store holds a live, decodable token.
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	_, ok := g.CurrentRole(ctx)
	return ok
}

// IsAuthorized reports whether the current session may act with one of the
// required roles. A nil or empty required set admits any authenticated
// session. Unauthenticated sessions always fail.
func (g *Guard) IsAuthorized(ctx context.Context, required []int) bool {
	role, ok := g.CurrentRole(ctx)
	if !ok {
		return false
	}

	if len(required) == 0 {
		return true
	}

	for _, want := range required {
		if role == want {
			return true
		}
	}
	return false
}
