// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linesplit provides an io.Writer that turns an arbitrary stream of chunks
// into complete lines. Data after the last newline is held back until the next
// write completes the line, or until Flush is called at end of stream.
// Blank and whitespace-only lines are discarded.
package linesplit
