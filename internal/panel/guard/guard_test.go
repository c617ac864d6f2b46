package guard_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventfest/panel/internal/panel/guard"
	"github.com/eventfest/panel/internal/panel/session/drivers/memory"
	"github.com/eventfest/panel/pkg/panelsdk"
)

func forgeToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + ".sig"
}

func seedSession(t *testing.T, token string, user panelsdk.User) *memory.Store {
	t.Helper()

	store := memory.New()
	require.NoError(t, store.Save(context.Background(), token, user))
	return store
}

func TestCurrentRole(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(time.Hour).Unix()

	t.Run("live token exposes its role", func(t *testing.T) {
		token := forgeToken(t, map[string]any{"roleId": guard.RoleOrganiser, "exp": future})
		g := guard.New(seedSession(t, token, panelsdk.User{ID: "u-1"}))

		role, ok := g.CurrentRole(ctx)
		require.True(t, ok)
		require.Equal(t, guard.RoleOrganiser, role)
	})

	t.Run("missing role claim falls back to stored user", func(t *testing.T) {
		token := forgeToken(t, map[string]any{"exp": future})
		g := guard.New(seedSession(t, token, panelsdk.User{ID: "u-1", RoleID: guard.RoleAdmin}))

		role, ok := g.CurrentRole(ctx)
		require.True(t, ok)
		require.Equal(t, guard.RoleAdmin, role)
	})

	t.Run("expired token yields no role", func(t *testing.T) {
		token := forgeToken(t, map[string]any{"roleId": guard.RoleAdmin, "exp": time.Now().Add(-time.Minute).Unix()})
		g := guard.New(seedSession(t, token, panelsdk.User{ID: "u-1"}))

		_, ok := g.CurrentRole(ctx)
		require.False(t, ok)
	})

	t.Run("undecodable token yields no role", func(t *testing.T) {
		g := guard.New(seedSession(t, "not-a-jwt", panelsdk.User{ID: "u-1"}))

		_, ok := g.CurrentRole(ctx)
		require.False(t, ok)
	})

	t.Run("empty store yields no role", func(t *testing.T) {
		g := guard.New(memory.New())

		_, ok := g.CurrentRole(ctx)
		require.False(t, ok)
	})
}

func TestIsAuthorized(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(time.Hour).Unix()

	organiser := forgeToken(t, map[string]any{"roleId": guard.RoleOrganiser, "exp": future})
	g := guard.New(seedSession(t, organiser, panelsdk.User{ID: "u-1"}))

	tests := []struct {
		name     string
		required []int
		want     bool
	}{
		{"nil set admits any authenticated session", nil, true},
		{"empty set admits any authenticated session", []int{}, true},
		{"matching role", []int{guard.RoleAdmin, guard.RoleOrganiser}, true},
		{"role outside set", []int{guard.RoleAdmin}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.IsAuthorized(ctx, tc.required))
		})
	}

	t.Run("unauthenticated always fails", func(t *testing.T) {
		anon := guard.New(memory.New())
		require.False(t, anon.IsAuthorized(ctx, nil))
		require.False(t, anon.IsAuthorized(ctx, []int{guard.RoleAdmin}))
	})
}
