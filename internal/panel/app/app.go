// Package app wires the panel console together: config, logging, the
// session store, the API client, the guard, and the idle watcher.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/eventfest/panel/internal/panel/guard"
	"github.com/eventfest/panel/internal/panel/session"
	"github.com/eventfest/panel/internal/panel/session/drivers/bolt"
	"github.com/eventfest/panel/internal/panel/session/drivers/memory"
	"github.com/eventfest/panel/internal/panel/session/drivers/sqlite"
	"github.com/eventfest/panel/pkg/panelsdk"
	"github.com/eventfest/panel/pkg/slogx"

	"golang.org/x/time/rate"
)

const (
	// BuildVersion should eventually come from ldflags.
	BuildVersion = "v0.1.0"
)

var (
	// ErrSignInRequired means the session is missing or expired and the
	// caller must log in before retrying.
	ErrSignInRequired = errors.New("sign in required")

	// ErrScreenNotFound means the session's role may not see the screen.
	ErrScreenNotFound = errors.New("screen not found")
)

// Application encapsulates the panel console with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	sessions session.Store
	client   *panelsdk.Client
	guard    *guard.Guard
	boundary *guard.Boundary
	watcher  *session.Watcher

	onExpired func()
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "panel",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initSessions(); err != nil {
		return nil, err
	}

	app.client = panelsdk.New(cfg.APIBaseURL, app.sessions)
	app.client.Logger = app.logger
	if cfg.Timeout > 0 {
		app.client.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.RateLimit > 0 && cfg.RateBurst > 0 {
		app.client.Limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	app.guard = guard.New(app.sessions)
	app.boundary = guard.NewBoundary(app.guard, guard.DefaultRoutes())
	app.watcher = session.NewWatcher(app.sessions, app.logger, app.sessionExpired)

	return app, nil
}

func (app *Application) initSessions() error {
	switch app.cfg.SessionDriver {
	case "memory":
		app.sessions = memory.New()
	case "bolt":
		store, err := bolt.Open(app.cfg.SessionFile)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		app.sessions = store
	case "sqlite":
		store, err := sqlite.NewStore(app.cfg.SessionFile)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		if err := store.ApplyMigrations(); err != nil {
			_ = store.Close()
			return fmt.Errorf("migrate session store: %w", err)
		}
		app.sessions = store
	default:
		return fmt.Errorf("unknown session driver %q", app.cfg.SessionDriver)
	}
	return nil
}

// Client exposes the API client for resource commands.
func (app *Application) Client() *panelsdk.Client { return app.client }

// OnSessionExpired registers a callback fired after the idle watcher clears
// an expired session.
func (app *Application) OnSessionExpired(fn func()) { app.onExpired = fn }

func (app *Application) sessionExpired() {
	if app.onExpired != nil {
		app.onExpired()
	}
}

// Resume re-arms the idle watcher for a session persisted by a previous run.
// Missing sessions are not an error.
func (app *Application) Resume(ctx context.Context) {
	token, err := app.sessions.Token(ctx)
	if err != nil {
		return
	}
	app.watcher.Arm(token)
}

// Login authenticates against the API, persists the session, and arms the
// idle watcher for the token's lifetime.
func (app *Application) Login(ctx context.Context, email, password string) (panelsdk.User, error) {
	res, err := app.client.Login(ctx, email, password)
	if err != nil {
		return panelsdk.User{}, err
	}

	if err := app.sessions.Save(ctx, res.Token, res.User); err != nil {
		return panelsdk.User{}, fmt.Errorf("persist session: %w", err)
	}
	app.watcher.Arm(res.Token)

	app.logger.Info("signed in", "user_id", res.User.ID, "role_id", res.User.RoleID)
	return res.User, nil
}

// Logout stops the idle watcher and drops the session. Safe to call without
// an active session.
func (app *Application) Logout(ctx context.Context) error {
	app.watcher.Stop()
	if err := app.sessions.Clear(ctx); err != nil {
		return err
	}

	app.logger.Info("signed out")
	return nil
}

// Whoami returns the stored user and their current role. Fails with
// ErrSignInRequired when the session is missing or expired.
func (app *Application) Whoami(ctx context.Context) (panelsdk.User, int, error) {
	role, ok := app.guard.CurrentRole(ctx)
	if !ok {
		return panelsdk.User{}, 0, ErrSignInRequired
	}

	user, err := app.sessions.User(ctx)
	if err != nil {
		return panelsdk.User{}, 0, ErrSignInRequired
	}
	return user, role, nil
}

// Open routes a screen-backed command through the authorization boundary.
func (app *Application) Open(ctx context.Context, screen string) error {
	switch app.boundary.Navigate(ctx, screen) {
	case guard.DecisionSignIn:
		return ErrSignInRequired
	case guard.DecisionNotFound:
		return ErrScreenNotFound
	default:
		return nil
	}
}

// Intended returns the screen a sign-in redirect bounced off of, if any.
func (app *Application) Intended() string { return app.boundary.Intended() }

// Categories lists event categories. Admin screen.
func (app *Application) Categories(ctx context.Context) ([]panelsdk.Category, error) {
	if err := app.Open(ctx, "category"); err != nil {
		return nil, err
	}
	return app.client.Categories(ctx)
}

// Cities lists cities. Admin screen.
func (app *Application) Cities(ctx context.Context) ([]panelsdk.City, error) {
	if err := app.Open(ctx, "city"); err != nil {
		return nil, err
	}
	return app.client.Cities(ctx)
}

// Events lists events for the current filters. Admin and organiser screen.
func (app *Application) Events(ctx context.Context, query panelsdk.EventQuery) (*panelsdk.EventPage, error) {
	if err := app.Open(ctx, "events"); err != nil {
		return nil, err
	}
	return app.client.Events(ctx, query)
}

// Approvals lists pending organiser requests. Admin screen.
func (app *Application) Approvals(ctx context.Context, organiserOnly bool) ([]panelsdk.Approval, error) {
	if err := app.Open(ctx, "approvals"); err != nil {
		return nil, err
	}
	return app.client.ApprovalRequests(ctx, organiserOnly)
}

// Approve accepts an organiser request. Admin screen.
func (app *Application) Approve(ctx context.Context, approvalID string) error {
	if err := app.Open(ctx, "approvals"); err != nil {
		return err
	}
	return app.client.ApproveRequest(ctx, approvalID)
}

// Reject declines an organiser request with a reason. Admin screen.
func (app *Application) Reject(ctx context.Context, approvalID, reason string) error {
	if err := app.Open(ctx, "approvals"); err != nil {
		return err
	}
	return app.client.RejectRequest(ctx, approvalID, reason)
}

// Close releases the watcher and the session store.
func (app *Application) Close() error {
	app.watcher.Stop()
	return app.sessions.Close()
}
