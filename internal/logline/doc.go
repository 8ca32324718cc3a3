// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logline formats the prefixed, color-coded lines written by the supervisor.
//
// Every line has the same layout:
//
//	[15:04:05] frontend     | ℹ️ message
//
// The name column is padded or truncated to a display width shared by all commands in a run.
package logline
