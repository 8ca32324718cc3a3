// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show implements the show command, which prints the execution plan without running it.
package show

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/config"
	"github.com/matt-FFFFFF/prun/internal/logline"
	"github.com/matt-FFFFFF/prun/internal/palette"
	"github.com/matt-FFFFFF/prun/internal/supervisor"
	"github.com/urfave/cli/v3"
)

const (
	configFlag   = "config"
	commandsFlag = "commands"
	swatch       = "■"
	currentDir   = "."
)

var (
	// ErrWritePlan is returned when the plan cannot be written.
	ErrWritePlan = errors.New("failed to write plan")
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// ShowCmd is the command that shows what would be run, without running anything.
var ShowCmd = &cli.Command{
	Name:        "show",
	Usage:       "Show the commands a configuration would run",
	Description: "Load and validate a configuration, then print each command with its display name, colour and working directory.",
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
			Usage:    "Semicolon separated shell commands",
			OnlyOnce: true,
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		f, err := config.FromInput(ctx, cmd.String(commandsFlag), cmd.String(configFlag))
		if err != nil {
			return cli.Exit(color.AutoStyler().Wrap(err.Error(), color.Red), 1)
		}

		out, err := Render(f)
		if err != nil {
			return cli.Exit(color.AutoStyler().Wrap(err.Error(), color.Red), 1)
		}

		if _, err := fmt.Fprintln(cmd.Writer, out); err != nil {
			return errors.Join(ErrWritePlan, err)
		}

		return nil
	},
}

// Render returns the plan for f as a table. Colours are assigned in the same order as the supervisor assigns them.
func Render(f *config.File) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err //nolint:wrapcheck
	}

	specs, err := f.Specs()
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if len(specs) == 0 {
		return supervisor.NoCommandsMessage, nil
	}

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}

	lo, hi := logline.EffectiveLengths(f.MinLength, f.MaxLength)
	width := logline.DisplayWidth(names, lo, hi)
	colors := palette.New()

	rows := make([][]string, 0, len(specs))

	for _, s := range specs {
		c := colors.Next()
		if s.Color != nil {
			c = *s.Color
		}

		cwd := s.Cwd
		if cwd == "" {
			cwd = currentDir
		}

		rows = append(rows, []string{logline.FitName(s.Name, width), colorSwatch(c), cwd, s.Command})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("NAME", "COLOUR", "CWD", "COMMAND").
		Rows(rows...)

	return t.String(), nil
}

func colorSwatch(s color.Style) string {
	st := lipgloss.NewStyle()
	if idx := s.ANSIIndex(); idx >= 0 {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(idx)))
	} else {
		st = st.Bold(true)
	}

	return st.Render(swatch + " " + s.String())
}
