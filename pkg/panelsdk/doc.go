/*
Package panelsdk is the HTTP client for the event-platform back-office API.

# Overview

The package wraps a plain net/http client with the two cross-cutting
behaviours every back-office call relies on:

  - Bearer injection: calls marked AuthRequired pick up the stored session
    token as an Authorization header. The flag itself never leaves the
    process. A call marked AuthRequired with no stored token is sent bare so
    the backend can answer with its own 401 instead of being second-guessed
    client-side.
  - Session eviction: error responses the backend classifies as
    authentication failures ("Token missing", "Invalid Token", 401s that talk
    about expired or invalid tokens) clear the injected session store before
    the error reaches the caller. "Permission denied" does not touch the
    session: the caller is signed in, just not allowed.

Errors are never swallowed. Every failed call comes back as an *APIError (or
a wrapped transport error) so screen-level code keeps full control of
user-facing messaging.

# Usage

	store := memory.New()
	client := panelsdk.New("https://api.example.com", store)

	login, err := client.Login(ctx, "admin@example.com", "secret")
	if err != nil {
		return err
	}
	// The caller persists the session; the SDK only reads it.
	_ = store.Save(ctx, login.Token, login.User)

	cities, err := client.Cities(ctx)

Typed operations are grouped per back-office area: client_auth.go,
client_catalog.go, client_event.go, client_mou.go, client_profile.go. The
generic verbs (Get, Post, Put, Patch, Delete) are exported for endpoints that
have no typed wrapper yet.
*/
package panelsdk
