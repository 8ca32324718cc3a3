// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

const (
	// LogLevelEnvVar is the environment variable holding the diagnostic log level.
	LogLevelEnvVar = "PRUN_LOG_LEVEL"
	// LogFormatEnvVar selects the diagnostic log format, "json" or "text" (the default).
	LogFormatEnvVar = "PRUN_LOG_FORMAT"
	logFormatJSON   = "json"
)

type loggerKey struct{}

// LevelVar is shared by DefaultLogger and JSONLogger so the level can be changed at runtime.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is a pretty text logger on stderr that is used if no logger is provided.
// Stdout is reserved for the multiplexed command output.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes JSON records to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// FromEnv returns JSONLogger when LogFormatEnvVar is "json", otherwise DefaultLogger.
func FromEnv() *slog.Logger {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(LogFormatEnvVar)), logFormatJSON) {
		return JSONLogger
	}

	return DefaultLogger
}

// New creates a new context with the given logger.
// If logger is nil, it uses the default logger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// ParseLevel converts DEBUG, INFO, WARN or ERROR (any case) to a slog.Level.
// The second return value is false for anything else.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// logLevelFromEnv reads LogLevelEnvVar, defaulting to WARN.
func logLevelFromEnv() slog.Level {
	level, _ := ParseLevel(os.Getenv(LogLevelEnvVar))
	return level
}
