// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when a style name is not one of the recognised tags.
var ErrUnknownStyle = errors.New("unknown style")

// Style is a symbolic style tag. The set of tags is closed.
type Style int

// Recognised style tags.
const (
	Red Style = iota
	Green
	Yellow
	Blue
	Magenta
	Cyan
	RedBright
	GreenBright
	YellowBright
	BlueBright
	Gray
	BoldText
	styleCount // must be last
)

type sgrPair struct {
	name  string
	open  Code
	close Code
}

var styles = [styleCount]sgrPair{
	Red:          {"red", FgRed, closeFg},
	Green:        {"green", FgGreen, closeFg},
	Yellow:       {"yellow", FgYellow, closeFg},
	Blue:         {"blue", FgBlue, closeFg},
	Magenta:      {"magenta", FgMagenta, closeFg},
	Cyan:         {"cyan", FgCyan, closeFg},
	RedBright:    {"redBright", FgHiRed, closeFg},
	GreenBright:  {"greenBright", FgHiGreen, closeFg},
	YellowBright: {"yellowBright", FgHiYellow, closeFg},
	BlueBright:   {"blueBright", FgHiBlue, closeFg},
	Gray:         {"gray", FgHiBlack, closeFg},
	BoldText:     {"bold", Bold, closeBold},
}

// String returns the tag name, e.g. "redBright".
func (s Style) String() string {
	if !s.valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}

	return styles[s].name
}

// ANSIIndex returns the 16-color palette index for a color tag, or -1 for modifiers such as bold.
func (s Style) ANSIIndex() int {
	if !s.valid() {
		return -1
	}

	switch c := styles[s].open; {
	case c >= FgBlack && c <= FgWhite:
		return int(c - FgBlack)
	case c >= FgHiBlack && c <= FgHiWhite:
		return int(c-FgHiBlack) + 8 //nolint:mnd
	}

	return -1
}

func (s Style) valid() bool {
	return s >= 0 && s < styleCount
}

// Styles returns every recognised style tag in declaration order.
func Styles() []Style {
	out := make([]Style, 0, styleCount)
	for s := range styleCount {
		out = append(out, s)
	}

	return out
}

// ParseStyle resolves a tag name to a Style. Matching is case-insensitive.
func ParseStyle(name string) (Style, error) {
	for i, p := range styles {
		if strings.EqualFold(p.name, name) {
			return Style(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Apply brackets text with the open codes of every tag, followed by the close codes of every tag,
// both in the order given. Wrapping the empty string returns the empty string.
// Apply panics on a tag outside the recognised set; use ParseStyle to validate input.
func Apply(tags []Style, text string) string {
	if text == "" {
		return ""
	}

	var open, closing strings.Builder

	for _, t := range tags {
		if !t.valid() {
			panic(fmt.Sprintf("color: %v", t))
		}

		open.WriteString(ControlString(styles[t].open))
		closing.WriteString(ControlString(styles[t].close))
	}

	return open.String() + text + closing.String()
}

// Styler applies styles when enabled and passes text through untouched otherwise.
// The zero value is disabled.
type Styler struct {
	enabled bool
}

// NewStyler returns a Styler with styling switched on or off.
func NewStyler(on bool) Styler {
	return Styler{enabled: on}
}

// AutoStyler returns a Styler that follows the NO_COLOR/FORCE_COLOR/terminal detection.
func AutoStyler() Styler {
	return NewStyler(Enabled())
}

// Enabled reports whether the Styler emits escape codes.
func (s Styler) Enabled() bool {
	return s.enabled
}

// Wrap applies tags to text, see Apply.
func (s Styler) Wrap(text string, tags ...Style) string {
	if !s.enabled {
		return text
	}

	return Apply(tags, text)
}
