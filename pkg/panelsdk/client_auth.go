package panelsdk

import (
	"context"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges panel credentials for a bearer token and profile snapshot.
// Persisting the pair (together, via the session store) is the caller's job;
// keeping the SDK read-only against the store means there is exactly one
// place in the application that establishes sessions.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := c.Post(ctx, endpointLogin, loginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
