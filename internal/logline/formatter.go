// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logline

import (
	"strings"
	"time"

	"github.com/matt-FFFFFF/prun/internal/color"
)

// TimeFormat is the format used for the timestamp column.
const TimeFormat = "[15:04:05]"

// Severity classifies a line and selects its icon.
type Severity int

const (
	// SeverityInfo is the default for regular output.
	SeverityInfo Severity = iota
	// SeverityError marks stderr output and failures.
	SeverityError
	// SeveritySuccess marks successful completion.
	SeveritySuccess
)

// Icon returns the glyph shown for the severity.
func (s Severity) Icon() string {
	switch s {
	case SeverityError:
		return "❌"
	case SeveritySuccess:
		return "✅"
	default:
		return "ℹ️"
	}
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeveritySuccess:
		return "success"
	default:
		return "info"
	}
}

// Formatter composes output lines for one run.
type Formatter struct {
	Width  int              // Display width of the name column
	Styler color.Styler     // Applies escape codes, or not
	Now    func() time.Time // Clock, defaults to time.Now
}

// New creates a Formatter for the given column width.
func New(width int, styler color.Styler) *Formatter {
	return &Formatter{
		Width:  width,
		Styler: styler,
		Now:    time.Now,
	}
}

// Format returns gray(timestamp) + " " + c(name+" |") + " " + gray(icon) + " " + message.
// The result has no trailing newline.
func (f *Formatter) Format(service, message string, c color.Style, sev Severity) string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	sb := strings.Builder{}
	sb.WriteString(f.Styler.Wrap(now().Format(TimeFormat), color.Gray))
	sb.WriteString(" ")
	sb.WriteString(f.Styler.Wrap(FitName(service, f.Width)+" |", c))
	sb.WriteString(" ")
	sb.WriteString(f.Styler.Wrap(sev.Icon(), color.Gray))
	sb.WriteString(" ")
	sb.WriteString(message)

	return sb.String()
}
