// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the run command, which executes commands in parallel.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/config"
	"github.com/matt-FFFFFF/prun/internal/ctxlog"
	"github.com/matt-FFFFFF/prun/internal/signalbroker"
	"github.com/matt-FFFFFF/prun/internal/supervisor"
	"github.com/urfave/cli/v3"
)

const (
	configFlag    = "config"
	commandsFlag  = "commands"
	minLengthFlag = "min-length"
	maxLengthFlag = "max-length"
	cliExitStr    = ""
)

var (
	// ErrCommandsFailed is returned when at least one command exited unsuccessfully.
	ErrCommandsFailed = errors.New("one or more commands failed")
)

// RunCmd is the command that runs the configured commands in parallel.
var RunCmd = &cli.Command{
	Name:  "run",
	Usage: "Run commands in parallel with prefixed, colour-coded output",
	Description: `Run every command at the same time and stream their output, one line at a time,
prefixed with a timestamp and the command's name.

Commands come either from --commands, a semicolon separated list of shell commands,
or from a YAML, JSON or HCL configuration file given with --config.
When both are given --commands wins.

Config file URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.

The exit code is 0 when every command succeeded and 1 otherwise.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Specify the path or go-getter URL of the configuration file",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:     commandsFlag,
			Usage:    "Semicolon separated shell commands to run in parallel, named cmd1..cmdN",
			OnlyOnce: true,
		},
		&cli.IntFlag{
			Name:  minLengthFlag,
			Usage: "Minimum width of the name column. Overrides the configuration file.",
		},
		&cli.IntFlag{
			Name:  maxLengthFlag,
			Usage: "Maximum width of the name column, longer names are truncated. Overrides the configuration file.",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("running run command")

	styler := color.AutoStyler()

	f, err := config.FromInput(ctx, cmd.String(commandsFlag), cmd.String(configFlag))
	if errors.Is(err, config.ErrNoInput) {
		return cli.ShowSubcommandHelp(cmd) //nolint:wrapcheck
	}

	if err != nil {
		return cli.Exit(styler.Wrap(err.Error(), color.Red), 1)
	}

	if cmd.IsSet(minLengthFlag) {
		f.MinLength = cmd.Int(minLengthFlag)
	}

	if cmd.IsSet(maxLengthFlag) {
		f.MaxLength = cmd.Int(maxLengthFlag)
	}

	err = execute(ctx, cmd.Writer, f, styler)
	if err != nil {
		logger.Debug("run finished", "error", err)
	}

	return exitError(err, styler)
}

// exitError maps the result of execute to the process exit status.
// A stopped run exits 0.
func exitError(err error, styler color.Styler) error {
	switch {
	case err == nil, errors.Is(err, supervisor.ErrStopped):
		return nil
	case errors.Is(err, ErrCommandsFailed), errors.Is(err, supervisor.ErrSpawn):
		// Already reported on the output stream.
		return cli.Exit(cliExitStr, 1)
	default:
		return cli.Exit(styler.Wrap(err.Error(), color.Red), 1)
	}
}

// execute runs f to completion. The first SIGINT or SIGTERM stops the supervisor,
// a second signal of the same type kills the remaining children.
func execute(ctx context.Context, w io.Writer, f *config.File, styler color.Styler) error {
	if err := f.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	specs, err := f.Specs()
	if err != nil {
		return err //nolint:wrapcheck
	}

	sup, err := supervisor.New(supervisor.Options{
		MinLength: f.MinLength,
		MaxLength: f.MaxLength,
		Out:       w,
		Styler:    styler,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	// Children run under killCtx, which only a second signal or the caller cancels.
	// A stopped run returns while its children are still handling SIGTERM.
	killCtx, kill := context.WithCancel(ctx)

	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()

	sigCh := signalbroker.New(watchCtx)
	defer signalbroker.Release(sigCh)

	go signalbroker.Watch(watchCtx, sigCh, sup.Stop, kill)

	results, err := sup.RunParallel(killCtx, specs)
	if errors.Is(err, supervisor.ErrStopped) {
		return err //nolint:wrapcheck
	}

	kill()

	if err != nil {
		return err //nolint:wrapcheck
	}

	if results.HasError() {
		return fmt.Errorf("%w: %d of %d", ErrCommandsFailed, results.Failed(), len(results))
	}

	return nil
}
