package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eventfest/panel/pkg/jwtx"
)

// clearTimeout bounds the store write when a session is terminated from the
// timer callback, which has no caller-supplied context.
const clearTimeout = 5 * time.Second

// stopper is the slice of *time.Timer the watcher needs. Tests substitute
// their own to drive expiry by hand.
type stopper interface {
	Stop() bool
}

// Watcher terminates the session at the token's own expiry instant, without
// waiting for some request to trip over the stale token first. One watcher
// owns at most one live timer; arming for a new session cancels the previous
// schedule so a stale timer can never fire against a newer session.
type Watcher struct {
	store    Store
	log      *slog.Logger
	onExpire func()

	now      func() time.Time
	newTimer func(d time.Duration, f func()) stopper

	mu    sync.Mutex
	timer stopper
}

// NewWatcher builds a watcher over the given store. onExpire runs after the
// store has been cleared (so it observes the post-clear state) and is where
// the caller forces navigation back to sign-in. It may be nil.
func NewWatcher(store Store, logger *slog.Logger, onExpire func()) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if onExpire == nil {
		onExpire = func() {}
	}

	return &Watcher{
		store:    store,
		log:      logger,
		onExpire: onExpire,
		now:      time.Now,
		newTimer: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Arm schedules session termination for the token's expiry, replacing any
// previously armed schedule. A token that is already expired, or not
// decodable at all, terminates the session immediately.
func (w *Watcher) Arm(token string) {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	claims, err := jwtx.Decode(token)
	if err != nil || claims.ExpiresAt == nil {
		w.mu.Unlock()
		w.expire()
		return
	}

	delay := claims.ExpiresIn(w.now())
	if delay <= 0 {
		w.mu.Unlock()
		w.expire()
		return
	}

	w.timer = w.newTimer(delay, w.expire)
	w.mu.Unlock()

	w.log.Debug("session expiry armed", "expires_in", delay.String())
}

// Stop cancels the pending termination, if any. Called on logout and on
// shutdown. A callback already in flight still runs; Clear is idempotent so
// the double clear is harmless.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) expire() {
	ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
	defer cancel()

	if err := w.store.Clear(ctx); err != nil {
		w.log.Warn("session clear on expiry failed", "err", err)
	} else {
		w.log.Info("session expired")
	}

	w.onExpire()
}
