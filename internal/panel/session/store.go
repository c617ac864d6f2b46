// Package session owns the client-side session state: which bearer token and
// profile snapshot are current, where they persist, and when they expire.
package session

import (
	"context"
	"errors"

	"github.com/eventfest/panel/pkg/panelsdk"
)

// ErrNoSession reports that no session (or no usable entry) is stored.
var ErrNoSession = errors.New("session: no active session")

// Store persists the single active session: one bearer token plus the user
// snapshot the panel shows in its header. Establishing a new session
// overwrites the previous one; Clear removes both halves and is idempotent.
//
// Token and User can fail independently. An interrupted write may leave a
// token without a user snapshot; readers treat the missing snapshot as
// cosmetic and never as a reason to distrust the token.
type Store interface {
	// Save writes token and user together. Drivers make the pair as atomic
	// as their storage allows: bolt and sqlite write both in one
	// transaction, memory under one lock.
	Save(ctx context.Context, token string, user panelsdk.User) error

	// Token returns the stored bearer token, or ErrNoSession.
	Token(ctx context.Context) (string, error)

	// User returns the stored profile snapshot, or ErrNoSession.
	User(ctx context.Context) (panelsdk.User, error)

	// Clear removes token and user. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
