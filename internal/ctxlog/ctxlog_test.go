// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, custom, Logger(New(context.Background(), custom)))
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)), "nil logger falls back to default")
	assert.Same(t, DefaultLogger, Logger(context.Background()))
	assert.Same(t, DefaultLogger, Logger(context.WithValue(context.Background(), loggerKey{}, "not a logger")))
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := New(context.Background(), logger)

	tests := []struct {
		name    string
		logFunc func(context.Context, string, ...any)
		level   string
	}{
		{"debug", Debug, "DEBUG"},
		{"info", Info, "INFO"},
		{"warn", Warn, "WARN"},
		{"error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, "spawned process", "service", "api")

			out := buf.String()
			assert.Contains(t, out, "level="+tt.level)
			assert.Contains(t, out, "spawned process")
			assert.Contains(t, out, "service=api")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{" Warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"ERROR", slog.LevelError, true},
		{"verbose", slog.LevelWarn, false},
		{"", slog.LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "debug")
	assert.Equal(t, slog.LevelDebug, logLevelFromEnv())

	t.Setenv(LogLevelEnvVar, "nonsense")
	assert.Equal(t, slog.LevelWarn, logLevelFromEnv(), "unknown values default to WARN")

	t.Setenv(LogLevelEnvVar, "")
	assert.Equal(t, slog.LevelWarn, logLevelFromEnv())
}

func TestLevelVarDrivesLoggers(t *testing.T) {
	require.NotNil(t, DefaultLogger)
	require.NotNil(t, JSONLogger)

	original := LevelVar.Level()
	t.Cleanup(func() { LevelVar.Set(original) })

	LevelVar.Set(slog.LevelError)
	assert.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, JSONLogger.Enabled(context.Background(), slog.LevelWarn))

	LevelVar.Set(slog.LevelDebug)
	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelInfo))
}

func TestFromEnv(t *testing.T) {
	t.Setenv(LogFormatEnvVar, "")
	assert.Same(t, DefaultLogger, FromEnv())

	t.Setenv(LogFormatEnvVar, " JSON ")
	assert.Same(t, JSONLogger, FromEnv())

	t.Setenv(LogFormatEnvVar, "text")
	assert.Same(t, DefaultLogger, FromEnv())

	ctx := New(context.Background(), FromEnv())
	assert.Same(t, DefaultLogger, Logger(ctx))
}
