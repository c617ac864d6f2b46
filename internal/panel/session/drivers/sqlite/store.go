// Package sqlite keeps the session in a single-row SQLite table. Heavier
// than the bolt driver but handy when the host already ships a panel
// database and one file is preferred over two.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/eventfest/panel/internal/panel/session"
	"github.com/eventfest/panel/pkg/panelsdk"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save upserts the single session row so token and user change together.
func (s *Store) Save(ctx context.Context, token string, user panelsdk.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO panel_session (id, access_token, user_json, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			user_json    = excluded.user_json,
			updated_at   = CURRENT_TIMESTAMP;
	`, token, string(payload))
	return err
}

func (s *Store) Token(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT access_token FROM panel_session WHERE id = 1;`,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", session.ErrNoSession
	}
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", session.ErrNoSession
	}
	return token, nil
}

func (s *Store) User(ctx context.Context) (panelsdk.User, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT user_json FROM panel_session WHERE id = 1;`,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return panelsdk.User{}, session.ErrNoSession
	}
	if err != nil {
		return panelsdk.User{}, err
	}

	var user panelsdk.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return panelsdk.User{}, session.ErrNoSession
	}
	return user, nil
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM panel_session WHERE id = 1;`)
	return err
}
