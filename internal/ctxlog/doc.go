// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger for diagnostic messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler writing to stderr, so diagnostics never mix
// with the command output on stdout. The level is read from the PRUN_LOG_LEVEL
// environment variable ("DEBUG", "INFO", "WARN", "ERROR"), and defaults to WARN.
package ctxlog
