// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const commandSeparator = ";"

// ErrNoInput is returned by FromInput when neither a command list nor a config source was given.
var ErrNoInput = errors.New("no commands or configuration file specified")

// FromInput builds a File from a command list, falling back to loading src.
// A non-empty command list wins and runs in the current working directory.
func FromInput(ctx context.Context, commands, src string) (*File, error) {
	switch {
	case commands != "":
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}

		return FromCommandLine(commands, wd), nil
	case src != "":
		return Load(ctx, src)
	default:
		return nil, ErrNoInput
	}
}

// FromCommandLine builds a File from a semicolon separated list of shell commands.
// Commands are named cmd1..cmdN by their position in raw, so empty entries leave gaps in the numbering.
// Every command runs in cwd.
func FromCommandLine(raw, cwd string) *File {
	f := &File{dir: cwd}

	for i, part := range strings.Split(raw, commandSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		f.Commands = append(f.Commands, Command{
			Name:    fmt.Sprintf("cmd%d", i+1),
			Command: part,
			Cwd:     cwd,
		})
	}

	return f
}
