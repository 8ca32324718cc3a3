// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package palette hands out colors to commands in round-robin order.
package palette

import (
	"slices"
	"sync"

	"github.com/matt-FFFFFF/prun/internal/color"
)

// DefaultPalette is the ordered set of colors used when none is supplied.
var DefaultPalette = []color.Style{
	color.Red,
	color.Green,
	color.Yellow,
	color.Blue,
	color.Magenta,
	color.Cyan,
	color.RedBright,
	color.GreenBright,
	color.YellowBright,
	color.BlueBright,
}

// Assigner returns palette[n % len(palette)] on the nth call to Next.
// Colors repeat once the palette is exhausted. It is safe for concurrent use.
type Assigner struct {
	colors []color.Style
	next   int
	mu     sync.Mutex
}

// New creates an Assigner over colors, or over DefaultPalette if none are given.
func New(colors ...color.Style) *Assigner {
	if len(colors) == 0 {
		colors = DefaultPalette
	}

	return &Assigner{
		colors: slices.Clone(colors),
	}
}

// Next returns the next color in the cycle.
func (a *Assigner) Next() color.Style {
	a.mu.Lock()
	defer a.mu.Unlock()

	c := a.colors[a.next%len(a.colors)]
	a.next++

	return c
}

// Len returns the palette size.
func (a *Assigner) Len() int {
	return len(a.colors)
}
