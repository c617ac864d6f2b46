package panelsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed API response into the taxonomy the access
// layer acts on. Anything the taxonomy doesn't recognise is KindOther and
// passes through untouched.
type ErrorKind int

const (
	// KindOther is any failure the access layer has no policy for.
	KindOther ErrorKind = iota

	// KindAuthFailure means the backend no longer accepts our token. The
	// stored session is evicted before the error is returned.
	KindAuthFailure

	// KindPermissionDenied means the session is fine but the action was
	// refused. The session must NOT be evicted.
	KindPermissionDenied
)

// Sentinel message strings the backend emits verbatim. The body text is the
// only signal the backend gives us, so matching stays byte-exact here and
// nowhere else.
const (
	msgTokenMissing     = "Token missing"
	msgInvalidToken     = "Invalid Token"
	msgPermissionDenied = "Permission denied"
)

// fuzzy401Needles are matched case-insensitively against 401 bodies whose
// message isn't one of the exact sentinels.
var fuzzy401Needles = []string{"unauthorized", "invalid token", "token expired"}

// Classify maps a structured HTTP error (status plus optional backend
// message) onto an ErrorKind.
func Classify(status int, message string) ErrorKind {
	switch message {
	case msgTokenMissing, msgInvalidToken:
		return KindAuthFailure
	case msgPermissionDenied:
		return KindPermissionDenied
	}

	if status == http.StatusUnauthorized {
		m := strings.ToLower(message)
		for _, needle := range fuzzy401Needles {
			if strings.Contains(m, needle) {
				return KindAuthFailure
			}
		}
	}

	return KindOther
}

// APIError is a failed API response. Transport-level failures (DNS, timeouts)
// are not APIErrors; they surface as wrapped errors from the verbs.
type APIError struct {
	Status  int
	Message string
	Kind    ErrorKind
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("panel api: HTTP %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("panel api: HTTP %d: %s", e.Status, e.Message)
}

// newAPIError builds an APIError from a failed response body. The backend's
// error shape is {"message": "..."}; a body that isn't that (HTML error
// pages, empty bodies) just leaves Message blank.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	return &APIError{
		Status:  status,
		Message: payload.Message,
		Kind:    Classify(status, payload.Message),
	}
}

// IsAuthFailure reports whether err is an API error that invalidated the
// stored session.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuthFailure
}

// IsPermissionDenied reports whether err is the backend refusing an action
// for an otherwise valid session.
func IsPermissionDenied(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindPermissionDenied
}
