// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"path/filepath"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/supervisor"
)

// File is a parsed configuration.
type File struct {
	MinLength int       `yaml:"min_length,omitempty"`
	MaxLength int       `yaml:"max_length,omitempty"`
	Commands  []Command `yaml:"commands"`

	dir string // relative working directories are resolved against this
}

// Command is a single entry in a configuration file.
type Command struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
	Cwd     string `yaml:"cwd,omitempty"`
	Color   string `yaml:"color,omitempty"`
}

// Dir returns the directory that relative working directories resolve against.
func (f *File) Dir() string {
	return f.dir
}

// SetDir sets the directory that relative working directories resolve against.
func (f *File) SetDir(dir string) {
	f.dir = dir
}

// Specs converts the commands to supervisor specs, in file order.
func (f *File) Specs() ([]supervisor.CommandSpec, error) {
	specs := make([]supervisor.CommandSpec, 0, len(f.Commands))

	for _, c := range f.Commands {
		spec := supervisor.CommandSpec{
			Name:    c.Name,
			Command: c.Command,
			Cwd:     f.resolveCwd(c.Cwd),
		}

		if c.Color != "" {
			s, err := color.ParseStyle(c.Color)
			if err != nil {
				return nil, fmt.Errorf("%w: command %q: %w", ErrInvalidConfig, c.Name, err)
			}

			spec.Color = &s
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func (f *File) resolveCwd(cwd string) string {
	if cwd == "" || filepath.IsAbs(cwd) || f.dir == "" {
		return cwd
	}

	return filepath.Join(f.dir, cwd)
}
