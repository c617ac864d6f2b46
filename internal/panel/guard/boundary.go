package guard

import (
	"context"
	"sync"
)

// Decision is the outcome of routing a session to a screen.
type Decision int

const (
	// DecisionAllow admits the session to the screen.
	DecisionAllow Decision = iota

	// DecisionSignIn sends the session to the sign-in screen. Issued for
	// missing, undecodable, or expired tokens.
	DecisionSignIn

	// DecisionNotFound hides the screen from an authenticated session
	// whose role is not in the allowed set. The screen's existence is not
	// confirmed to the caller.
	DecisionNotFound
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionSignIn:
		return "sign-in"
	case DecisionNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Boundary routes navigation through the guard using a screen table. It
// remembers the last screen a sign-in redirect bounced off of so the caller
// can return there after login.
type Boundary struct {
	guard  *Guard
	routes Routes

	mu       sync.Mutex
	intended string
}

func NewBoundary(g *Guard, routes Routes) *Boundary {
	if routes == nil {
		routes = DefaultRoutes()
	}
	return &Boundary{guard: g, routes: routes}
}

// Navigate evaluates whether the current session may open the named screen.
// Public screens (absent from the table) are always allowed.
func (b *Boundary) Navigate(ctx context.Context, screen string) Decision {
	required, protected := b.routes[screen]
	if !protected {
		return DecisionAllow
	}

	if !b.guard.IsAuthenticated(ctx) {
		b.remember(screen)
		return DecisionSignIn
	}

	if !b.guard.IsAuthorized(ctx, required) {
		return DecisionNotFound
	}

	return DecisionAllow
}

// Intended returns and clears the screen recorded by the last sign-in
// redirect. Empty when nothing was recorded.
func (b *Boundary) Intended() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	screen := b.intended
	b.intended = ""
	return screen
}

func (b *Boundary) remember(screen string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intended = screen
}
