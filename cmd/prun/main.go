// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the prun command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/prun"
	"github.com/matt-FFFFFF/prun/cmd/prun/config"
	"github.com/matt-FFFFFF/prun/cmd/prun/run"
	"github.com/matt-FFFFFF/prun/cmd/prun/show"
	"github.com/matt-FFFFFF/prun/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		config.ConfigCmd,
		run.RunCmd,
		show.ShowCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "prun",
	Description: `prun runs several shell commands at the same time and multiplexes their output
into one stream. Every line is prefixed with a timestamp and the command's name in its own colour.
When all commands have finished a summary shows which of them succeeded.

Press Ctrl+C once to terminate every command, twice to kill them.`,
	Usage:     "prun run --commands 'npm run dev; go run ./cmd/api'",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.FromEnv())
	defer cancel()

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", prun.Version, prun.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework
	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	ctxlog.Logger(ctx).Debug("command completed successfully")
}
