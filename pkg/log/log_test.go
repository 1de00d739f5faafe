package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom_DefaultWhenEmpty(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), From(context.Background()))
}

func TestIntoFrom_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := Into(context.Background(), l)
	require.Same(t, l, From(ctx))

	// nil-логгер не затирает существующий.
	require.Same(t, l, From(Into(ctx, nil)))
}

func TestWith_EnrichesLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := Into(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx = With(ctx, "request_id", "rid-1")
	From(ctx).Info("hello")

	require.Contains(t, buf.String(), `"request_id":"rid-1"`)
	require.Contains(t, buf.String(), `"msg":"hello"`)
}
