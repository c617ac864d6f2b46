// Package bolt persists the session in a small bbolt file, the closest
// filesystem analog to the browser-local storage the panel grew up on. One
// bucket, two keys, survives restarts until cleared.
package bolt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/eventfest/panel/internal/panel/session"
	"github.com/eventfest/panel/pkg/panelsdk"
)

const bucketName = "session"

var (
	keyToken = []byte("access_token")
	keyUser  = []byte("user")
)

type Store struct {
	db *bbolt.DB
}

// Open initialises the session file and ensures the bucket exists. The
// timeout keeps a second panel process from hanging on the file lock.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Save writes token and user in one transaction.
func (s *Store) Save(ctx context.Context, token string, user panelsdk.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if err := b.Put(keyToken, []byte(token)); err != nil {
			return err
		}
		return b.Put(keyUser, payload)
	})
}

func (s *Store) Token(ctx context.Context) (string, error) {
	var token string
	err := s.db.View(func(tx *bbolt.Tx) error {
		token = string(tx.Bucket([]byte(bucketName)).Get(keyToken))
		return nil
	})
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", session.ErrNoSession
	}
	return token, nil
}

func (s *Store) User(ctx context.Context) (panelsdk.User, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get(keyUser); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return panelsdk.User{}, err
	}

	if len(raw) == 0 {
		return panelsdk.User{}, session.ErrNoSession
	}

	// Defensive decode: a corrupt snapshot reads as "absent", it does not
	// take the token down with it.
	var user panelsdk.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return panelsdk.User{}, session.ErrNoSession
	}
	return user, nil
}

func (s *Store) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if err := b.Delete(keyToken); err != nil {
			return err
		}
		return b.Delete(keyUser)
	})
}

func (s *Store) Close() error { return s.db.Close() }
