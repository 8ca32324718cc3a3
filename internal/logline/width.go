// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logline

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMinLength is the narrowest name column.
	DefaultMinLength = 4
	// DefaultMaxLength is the widest name column.
	DefaultMaxLength = 12
	// Ellipsis replaces the tail of names wider than the column.
	Ellipsis = "..."
)

// EffectiveLengths replaces a zero bound with DefaultMinLength or DefaultMaxLength.
func EffectiveLengths(minLength, maxLength int) (int, int) {
	if minLength == 0 {
		minLength = DefaultMinLength
	}

	if maxLength == 0 {
		maxLength = DefaultMaxLength
	}

	return minLength, maxLength
}

// DisplayWidth returns the longest name length clamped to [minLength, maxLength].
// Lengths are counted in runes.
func DisplayWidth(names []string, minLength, maxLength int) int {
	longest := 0

	for _, n := range names {
		longest = max(longest, utf8.RuneCountInString(n))
	}

	return max(minLength, min(maxLength, longest))
}

// FitName pads name with trailing spaces to width, or truncates it so that
// the last three characters of the column are the ellipsis.
// Columns narrower than the ellipsis are cut without one.
func FitName(name string, width int) string {
	if width <= 0 {
		return ""
	}

	n := utf8.RuneCountInString(name)

	switch {
	case n == width:
		return name
	case n < width:
		return name + strings.Repeat(" ", width-n)
	case width <= len(Ellipsis):
		return string([]rune(name)[:width])
	default:
		return string([]rune(name)[:width-len(Ellipsis)]) + Ellipsis
	}
}
