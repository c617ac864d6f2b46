// Package memory is an in-process session store for tests and one-shot runs
// that should not leave a session on disk.
package memory

import (
	"context"
	"sync"

	"github.com/eventfest/panel/internal/panel/session"
	"github.com/eventfest/panel/pkg/panelsdk"
)

type Store struct {
	mu      sync.RWMutex
	token   string
	user    panelsdk.User
	hasUser bool
}

func New() *Store {
	return &Store{}
}

func (s *Store) Save(ctx context.Context, token string, user panelsdk.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user
	s.hasUser = true
	return nil
}

func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", session.ErrNoSession
	}
	return s.token, nil
}

func (s *Store) User(ctx context.Context) (panelsdk.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasUser {
		return panelsdk.User{}, session.ErrNoSession
	}
	return s.user, nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = panelsdk.User{}
	s.hasUser = false
	return nil
}

func (s *Store) Close() error { return nil }
