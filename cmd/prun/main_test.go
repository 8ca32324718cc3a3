// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands))
	for _, c := range rootCmd.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{"config", "run", "show"}, names)
	assert.Equal(t, "prun", rootCmd.Name)
}
