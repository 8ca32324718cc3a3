// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervisor

import (
	"slices"

	"github.com/matt-FFFFFF/prun/internal/color"
)

// NoExitCode is the exit code recorded when a child was killed by a signal or left no exit status.
const NoExitCode = -1

// CommandSpec describes one command to run.
type CommandSpec struct {
	Name    string       // Display name, used as the output prefix
	Command string       // Shell command line
	Cwd     string       // Working directory, empty means the current directory
	Color   *color.Style // Optional colour override, nil uses the next palette colour
}

// ExecutionResult is the terminal outcome of one command.
type ExecutionResult struct {
	Service  string
	ExitCode int
	Success  bool
}

// Results holds one ExecutionResult per submitted CommandSpec, in submission order.
type Results []ExecutionResult

// HasError reports whether any command failed.
func (r Results) HasError() bool {
	return slices.ContainsFunc(r, func(e ExecutionResult) bool {
		return !e.Success
	})
}

// Failed returns the number of commands that failed.
func (r Results) Failed() int {
	n := 0

	for _, e := range r {
		if !e.Success {
			n++
		}
	}

	return n
}

func newResult(service string, exitCode int) ExecutionResult {
	return ExecutionResult{
		Service:  service,
		ExitCode: exitCode,
		Success:  exitCode == 0,
	}
}
