package panelsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/eventfest/panel/pkg/idx"
	"github.com/eventfest/panel/pkg/slogx"
)

// ResponseType hints at what the endpoint returns. The body always comes
// back as raw bytes either way; Binary additionally sets an Accept header so
// document endpoints (MOU PDFs) skip their JSON rendering path.
type ResponseType string

const (
	ResponseJSON   ResponseType = ""
	ResponseBinary ResponseType = "binary"
)

// RequestOptions is the per-call configuration bag. The zero value is a
// public JSON call.
type RequestOptions struct {
	// AuthRequired marks the call as needing the bearer token. The flag is
	// consumed client-side during augmentation and never serialised.
	AuthRequired bool

	// Headers are merged into the request after the injected ones, so a
	// caller can override Content-Type (multipart uploads do).
	Headers map[string]string

	// Params are appended to the URL as query parameters.
	Params url.Values

	ResponseType ResponseType
}

// Response is a successful API response.
type Response struct {
	Status int
	Data   []byte
	Header http.Header
}

func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

func (c *Client) Post(ctx context.Context, path string, body any, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, opts)
}

func (c *Client) Patch(ctx context.Context, path string, body any, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, opts)
}

func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// do runs one API call: augment, dispatch, inspect.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	opts *RequestOptions,
) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	target := c.url(path)
	if len(opts.Params) > 0 {
		target += "?" + opts.Params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("panelsdk: build request: %w", err)
	}

	reqID := idx.New().String()
	req.Header.Set("X-Request-ID", reqID)

	// The contextual logger carries the request ID so anything logging
	// beneath this call shares it.
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx = slogx.With(slogx.WithContext(ctx, logger), "req_id", reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if opts.ResponseType == ResponseBinary {
		req.Header.Set("Accept", "application/octet-stream")
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	// Conditional bearer injection. A marked call with no stored token goes
	// out bare: the backend owns the 401, not us.
	if opts.AuthRequired && c.Sessions != nil {
		if token, err := c.Sessions.Token(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	httpResp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("panelsdk: %s %s: %w", method, path, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("panelsdk: read response: %w", err)
	}

	log := slogx.FromContext(ctx).With("method", method, "path", path)
	log.Debug("api_request",
		"status", httpResp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if httpResp.StatusCode >= 400 {
		apiErr := newAPIError(httpResp.StatusCode, data)

		// Eviction happens before the caller observes the error, so a caller
		// that reacts by checking session state sees the post-clear state.
		if apiErr.Kind == KindAuthFailure && c.Sessions != nil {
			if clearErr := c.Sessions.Clear(ctx); clearErr != nil {
				log.Warn("session eviction failed", "err", clearErr)
			} else {
				log.Info("session evicted after auth failure", "status", apiErr.Status)
			}
		}

		return nil, apiErr
	}

	return &Response{
		Status: httpResp.StatusCode,
		Data:   data,
		Header: httpResp.Header,
	}, nil
}

// encodeBody turns the caller's body into a reader. Readers and raw bytes
// pass straight through (multipart uploads bring their own Content-Type);
// anything else is marshalled as JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return b, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("panelsdk: encode body: %w", err)
		}
		return bytes.NewReader(buf), "application/json", nil
	}
}

// decodeInto unmarshals a JSON response body into target.
func decodeInto(resp *Response, target any) error {
	if err := json.Unmarshal(resp.Data, target); err != nil {
		return fmt.Errorf("panelsdk: decode response: %w", err)
	}
	return nil
}
