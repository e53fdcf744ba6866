//go:build unit

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(requestIDHandler{Handler: slog.NewJSONHandler(&buf, nil)}).With("component", "test")

	ctx := context.WithValue(context.Background(), requestIDCtxKey{}, "req-42")
	logger.InfoContext(ctx, "with id")
	logger.InfoContext(context.Background(), "without id")

	dec := json.NewDecoder(&buf)
	var first, second map[string]any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "req-42", first[requestIDKey])
	assert.Equal(t, "test", first["component"])
	assert.NotContains(t, second, requestIDKey)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
