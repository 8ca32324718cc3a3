// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/logline"
)

var (
	// ErrInvalidConfig wraps every validation and parse problem.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrEmptyName is reported for a command without a name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrEmptyCommand is reported for a command without a command line.
	ErrEmptyCommand = errors.New("command must not be empty")
	// ErrDuplicateName is reported when two commands share a name.
	ErrDuplicateName = errors.New("duplicate command name")
	// ErrInvalidLength is reported for negative lengths or a min_length greater than max_length.
	ErrInvalidLength = errors.New("invalid name length")
)

// Validate checks the whole file and reports all problems found, wrapped in ErrInvalidConfig.
// An empty command list is valid.
func (f *File) Validate() error {
	var result error

	if f.MinLength < 0 || f.MaxLength < 0 {
		result = multierror.Append(result,
			fmt.Errorf("%w: min_length %d and max_length %d must not be negative", ErrInvalidLength, f.MinLength, f.MaxLength))
	} else if lo, hi := logline.EffectiveLengths(f.MinLength, f.MaxLength); lo > hi {
		result = multierror.Append(result,
			fmt.Errorf("%w: min_length %d is greater than max_length %d", ErrInvalidLength, lo, hi))
	}

	seen := make(map[string]int, len(f.Commands))

	for i, c := range f.Commands {
		if c.Name == "" {
			result = multierror.Append(result, fmt.Errorf("command %d: %w", i+1, ErrEmptyName))
		} else if first, dup := seen[c.Name]; dup {
			result = multierror.Append(result,
				fmt.Errorf("command %d: %w %q, first used by command %d", i+1, ErrDuplicateName, c.Name, first))
		} else {
			seen[c.Name] = i + 1
		}

		if c.Command == "" {
			result = multierror.Append(result, fmt.Errorf("command %d (%s): %w", i+1, c.Name, ErrEmptyCommand))
		}

		if c.Color != "" {
			if _, err := color.ParseStyle(c.Color); err != nil {
				result = multierror.Append(result, fmt.Errorf("command %d (%s): %w", i+1, c.Name, err))
			}
		}
	}

	if result != nil {
		return errors.Join(ErrInvalidConfig, result)
	}

	return nil
}
