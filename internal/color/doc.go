// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides terminal styling.
//
// Style tags (red, green, ..., gray, bold) form a closed set. Apply brackets text with the
// open codes of each tag and the matching close codes, and never emits codes around an empty string.
// A Styler decides whether styling is applied at all.
//
// The package checks the environment variables NO_COLOR and FORCE_COLOR to determine
// if color output should be enabled or disabled. It also checks if the output is a
// terminal using the golang.org/x/term package.
package color
