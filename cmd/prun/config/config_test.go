// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"testing"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamplesAreValid(t *testing.T) {
	t.Setenv("HOME", "/home/prun")

	for format, example := range Examples {
		t.Run(format, func(t *testing.T) {
			f, err := config.Parse("prun."+format, []byte(example))
			require.NoError(t, err)
			require.NoError(t, f.Validate())
			assert.Len(t, f.Commands, 2)

			_, err = f.Specs()
			require.NoError(t, err)
		})
	}
}

func Test_write(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, write(&buf, "HCL"))

	out := buf.String()
	for _, s := range color.Styles() {
		assert.Contains(t, out, s.String())
	}

	assert.Contains(t, out, `command "frontend"`)

	err := write(&buf, "toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}
