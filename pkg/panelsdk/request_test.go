package panelsdk_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/eventfest/panel/pkg/panelsdk"
	"github.com/stretchr/testify/require"
)

// stubSessions is a minimal SessionStore for exercising the client.
type stubSessions struct {
	mu     sync.Mutex
	token  string
	clears int
}

var errNoSession = errors.New("no session")

func (s *stubSessions) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", errNoSession
	}
	return s.token, nil
}

func (s *stubSessions) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.clears++
	return nil
}

func (s *stubSessions) snapshot() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.clears
}

func newTestClient(t *testing.T, handler http.HandlerFunc, sessions *stubSessions) *panelsdk.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := panelsdk.New(srv.URL, sessions)
	client.Limiter = nil // tests should not sleep
	return client
}

func TestBearerInjection(t *testing.T) {
	t.Parallel()

	const token = "abc.eyJyb2xlSWQiOjF9.sig"

	t.Run("auth required with stored token", func(t *testing.T) {
		var gotAuth, gotReqID string
		var gotBody []byte

		sessions := &stubSessions{token: token}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotReqID = r.Header.Get("X-Request-ID")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
		}, sessions)

		_, err := client.Post(context.Background(), "admin/add-city", map[string]string{"city": "Pune"}, &panelsdk.RequestOptions{
			AuthRequired: true,
		})
		require.NoError(t, err)

		require.Equal(t, "Bearer "+token, gotAuth)
		require.NotEmpty(t, gotReqID)

		// The AuthRequired flag is client-side configuration. Nothing about
		// it may reach the wire.
		require.JSONEq(t, `{"city":"Pune"}`, string(gotBody))
		require.NotContains(t, string(gotBody), "authRequired")
	})

	t.Run("auth required without token dispatches bare", func(t *testing.T) {
		var gotAuth string

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
		}, &stubSessions{})

		_, err := client.Get(context.Background(), "admin/get-city", &panelsdk.RequestOptions{AuthRequired: true})
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})

	t.Run("public call never carries the token", func(t *testing.T) {
		var gotAuth string

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
		}, &stubSessions{token: token})

		_, err := client.Get(context.Background(), "admin/get-city", nil)
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})
}

func TestAuthFailureEvictsSession(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		cleared bool
	}{
		{"invalid token sentinel", http.StatusUnauthorized, `{"message":"Invalid Token"}`, true},
		{"token missing sentinel", http.StatusUnauthorized, `{"message":"Token missing"}`, true},
		{"sentinel outside 401 still evicts", http.StatusBadRequest, `{"message":"Invalid Token"}`, true},
		{"401 token expired variant", http.StatusUnauthorized, `{"message":"Token Expired, please sign in again"}`, true},
		{"401 unauthorized variant", http.StatusUnauthorized, `{"message":"User is Unauthorized"}`, true},
		{"401 with unrelated message", http.StatusUnauthorized, `{"message":"account suspended"}`, false},
		{"permission denied keeps session", http.StatusForbidden, `{"message":"Permission denied"}`, false},
		{"plain server error keeps session", http.StatusInternalServerError, `{"message":"boom"}`, false},
		{"non-JSON error body keeps session", http.StatusBadGateway, `<html>bad gateway</html>`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := &stubSessions{token: "tok.en.sig"}
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}, sessions)

			_, err := client.Get(context.Background(), "admin/get-events", &panelsdk.RequestOptions{AuthRequired: true})
			require.Error(t, err)

			var apiErr *panelsdk.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.status, apiErr.Status)

			token, clears := sessions.snapshot()
			if tc.cleared {
				require.Empty(t, token, "session should have been evicted")
				require.Equal(t, 1, clears)
				require.True(t, panelsdk.IsAuthFailure(err))
			} else {
				require.Equal(t, "tok.en.sig", token, "session must survive")
				require.Zero(t, clears)
				require.False(t, panelsdk.IsAuthFailure(err))
			}
		})
	}
}

func TestPermissionDeniedPropagates(t *testing.T) {
	t.Parallel()

	sessions := &stubSessions{token: "tok.en.sig"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Permission denied"}`))
	}, sessions)

	_, err := client.Post(context.Background(), "admin/approval-action", map[string]string{"approvalId": "a1"}, &panelsdk.RequestOptions{AuthRequired: true})
	require.True(t, panelsdk.IsPermissionDenied(err))

	token, _ := sessions.snapshot()
	require.Equal(t, "tok.en.sig", token)
}

func TestQueryParams(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}, &stubSessions{})

	params := url.Values{}
	params.Set("organiser", "true")
	params.Set("page", "2")

	_, err := client.Get(context.Background(), "admin/get-approvals-request", &panelsdk.RequestOptions{Params: params})
	require.NoError(t, err)
	require.Equal(t, "true", gotQuery.Get("organiser"))
	require.Equal(t, "2", gotQuery.Get("page"))
}

func TestBinaryResponsePassthrough(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.4 not really a pdf")

	var gotAccept string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}, &stubSessions{token: "tok.en.sig"})

	resp, err := client.Get(context.Background(), "uploads/mou/42.pdf", &panelsdk.RequestOptions{
		AuthRequired: true,
		ResponseType: panelsdk.ResponseBinary,
	})
	require.NoError(t, err)
	require.Equal(t, pdf, resp.Data)
	require.Equal(t, "application/octet-stream", gotAccept)
}

func TestHeaderOverride(t *testing.T) {
	t.Parallel()

	var gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}, &stubSessions{})

	_, err := client.Post(context.Background(), "admin/edit-profile", []byte("--boundary--"), &panelsdk.RequestOptions{
		Headers: map[string]string{"Content-Type": "multipart/form-data; boundary=boundary"},
	})
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data; boundary=boundary", gotContentType)
}
