package slogx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventfest/panel/pkg/slogx"
)

func newBufferedLogger(t *testing.T) (*bytes.Buffer, context.Context) {
	t.Helper()

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "panel",
		Version: "test",
		Env:     "test",
		Level:   "debug",
		Format:  "json",
		Output:  &buf,
	})
	return &buf, slogx.WithContext(context.Background(), logger)
}

func TestContextCarriesLogger(t *testing.T) {
	buf, ctx := newBufferedLogger(t)

	slogx.FromContext(ctx).Info("api_request", "status", 200)

	require.Contains(t, buf.String(), `"status":200`)
	require.Contains(t, buf.String(), `"service":"panel"`)
}

func TestWithAccumulatesAttrs(t *testing.T) {
	buf, ctx := newBufferedLogger(t)

	ctx = slogx.With(ctx, "req_id", "01JF8Z2Q4T")
	ctx = slogx.With(ctx, "attempt", 2)

	slogx.FromContext(ctx).Info("api_request")

	out := buf.String()
	require.Contains(t, out, `"req_id":"01JF8Z2Q4T"`)
	require.Contains(t, out, `"attempt":2`)
}

func TestFromContextFallsBack(t *testing.T) {
	require.NotNil(t, slogx.FromContext(context.Background()))
}
