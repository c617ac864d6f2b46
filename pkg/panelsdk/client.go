package panelsdk

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds every API call. The backend sits behind a free-tier
// host that cold-starts, hence the generous ceiling.
const DefaultTimeout = 50 * time.Second

// SessionStore is the slice of the session layer the client needs: read the
// bearer token before a call, evict the session after an authentication
// failure. The store is injected, never reached for globally, so tests and
// tools can swap in their own.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Client is an HTTP client for the back-office API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Sessions supplies bearer tokens and absorbs evictions. May be nil for
	// purely public use, in which case AuthRequired calls go out bare.
	Sessions SessionStore

	// Limiter throttles outbound calls so a misbehaving table screen cannot
	// hammer the backend. Nil disables throttling.
	Limiter *rate.Limiter

	Logger *slog.Logger
}

// New creates a client with the default timeout, a mild outbound rate limit
// and the default logger.
func New(baseURL string, sessions SessionStore) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		Sessions: sessions,
		Limiter:  rate.NewLimiter(rate.Limit(20), 40),
		Logger:   slog.Default(),
	}
}

// url builds a complete URL by appending the endpoint path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + "/" + strings.TrimPrefix(path, "/")
}
