package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventfest/panel/internal/panel/session"
	"github.com/eventfest/panel/pkg/panelsdk"
)

func TestSaveAndRead(t *testing.T) {
	store := New()
	ctx := context.Background()

	user := panelsdk.User{ID: "u-1", Name: "Ada", RoleID: 1}
	require.NoError(t, store.Save(ctx, "tok", user))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)

	got, err := store.User(ctx)
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestEmptyStore(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.Token(ctx)
	require.True(t, errors.Is(err, session.ErrNoSession))

	_, err = store.User(ctx)
	require.True(t, errors.Is(err, session.ErrNoSession))
}

func TestClear(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok", panelsdk.User{ID: "u-1"}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Token(ctx)
	require.True(t, errors.Is(err, session.ErrNoSession))
	_, err = store.User(ctx)
	require.True(t, errors.Is(err, session.ErrNoSession))
}

func TestConcurrentAccess(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, "tok", panelsdk.User{ID: "u-1"})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Token(ctx)
		}()
	}
	wg.Wait()

	token, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
}
