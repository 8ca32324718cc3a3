// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package supervisor runs a set of named shell commands concurrently.
//
// Each child's stdout and stderr is split into lines and printed through a logline.Formatter,
// so output from different commands interleaves at line granularity with a coloured, aligned prefix.
// Once every child has terminated a summary table is printed and the per-command results are returned.
//
// A Supervisor can be stopped from another goroutine, typically a signal watchdog. Stop terminates
// every registered child and makes RunParallel return ErrStopped without waiting for them.
package supervisor
