// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config implements the config command, which documents the configuration file formats.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/urfave/cli/v3"
)

const formatArg = "format"

// ErrUnknownFormat is returned for a format other than yaml, json or hcl.
var ErrUnknownFormat = errors.New("unknown format, use yaml, json or hcl")

// Examples holds an example configuration per format, keyed by file extension.
var Examples = map[string]string{
	"yaml": `# prun.yaml
min_length: 4
max_length: 12
commands:
  - name: frontend
    command: npm run dev
    cwd: ./frontend
  - name: backend
    command: npm run start:dev
    cwd: ./backend
    color: magenta
`,
	"json": `{
  "commands": [
    {"name": "frontend", "command": "npm run dev", "cwd": "./frontend"},
    {"name": "backend", "command": "npm run start:dev", "cwd": "./backend"}
  ]
}
`,
	"hcl": `# prun.hcl, the process environment is available as env
min_length = 4
max_length = 12

command "frontend" {
  command = "npm run dev"
  cwd     = "./frontend"
}

command "backend" {
  command = "npm run start:dev"
  cwd     = "${env.HOME}/src/backend"
  color   = "magenta"
}
`,
}

// ConfigCmd prints the recognised colours and an example configuration.
var ConfigCmd = &cli.Command{
	Name:   "config",
	Usage:  "Get info on the configuration format and colours",
	Action: actionFunc,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: formatArg,
		},
	},
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	format := cmd.StringArg(formatArg)
	if format == "" {
		format = "yaml"
	}

	if err := write(cmd.Writer, format); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

func write(w io.Writer, format string) error {
	example, ok := Examples[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	styler := color.AutoStyler()

	sb := strings.Builder{}
	sb.WriteString("Available colours:\n\n")

	for _, s := range color.Styles() {
		fmt.Fprintf(&sb, "- %s\n", styler.Wrap(s.String(), s))
	}

	sb.WriteString("\nExample configuration:\n\n")
	sb.WriteString(example)

	_, err := io.WriteString(w, sb.String())

	return err //nolint:wrapcheck
}
