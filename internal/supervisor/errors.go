// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervisor

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawn is matched by every error returned when a child process could not be started.
	ErrSpawn = errors.New("could not start process")
	// ErrStopped is returned by RunParallel when Stop was called before all children terminated.
	ErrStopped = errors.New("supervisor stopped")
	// ErrInvalidWidth is returned when the name column bounds are negative or min exceeds max.
	ErrInvalidWidth = errors.New("invalid name width")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
)

// SpawnError records which command could not be started and why.
type SpawnError struct {
	Service string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSpawn, e.Service, e.Err)
}

// Unwrap allows errors.Is to match both ErrSpawn and the underlying cause.
func (e *SpawnError) Unwrap() []error {
	return []error{ErrSpawn, e.Err}
}
