package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/inventory/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, slogx.ParseLevel(in), in)
	}
}

func TestNewWritesJSONWithServiceAttrs(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "inventory",
		Version: "test",
		Env:     "prod",
		Level:   "info",
		Format:  "json",
		Output:  &buf,
	})

	logger.Debug("hidden")
	logger.Info("hello", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "inventory", entry["service"])
	require.Equal(t, "v", entry["k"])
}

func TestWithCommandCarriesIDs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := slogx.WithContext(context.Background(), base)
	ctx = slogx.WithCommand(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "add")
	slogx.FromContext(ctx).Info("done")

	require.Contains(t, buf.String(), "cmd_id=01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.Contains(t, buf.String(), "cmd=add")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}
