// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr []error
	}{
		{
			name: "valid",
			file: File{Commands: []Command{{Name: "api", Command: "make api"}, {Name: "web", Command: "make web", Color: "Yellow"}}},
		},
		{
			name: "empty list",
			file: File{},
		},
		{
			name:    "empty name",
			file:    File{Commands: []Command{{Command: "make"}}},
			wantErr: []error{ErrEmptyName},
		},
		{
			name:    "empty command",
			file:    File{Commands: []Command{{Name: "api"}}},
			wantErr: []error{ErrEmptyCommand},
		},
		{
			name:    "duplicate name",
			file:    File{Commands: []Command{{Name: "api", Command: "a"}, {Name: "api", Command: "b"}}},
			wantErr: []error{ErrDuplicateName},
		},
		{
			name:    "unknown colour",
			file:    File{Commands: []Command{{Name: "api", Command: "a", Color: "purple"}}},
			wantErr: []error{color.ErrUnknownStyle},
		},
		{
			name:    "min greater than max",
			file:    File{MinLength: 8, MaxLength: 6},
			wantErr: []error{ErrInvalidLength},
		},
		{
			name:    "min greater than default max",
			file:    File{MinLength: 20},
			wantErr: []error{ErrInvalidLength},
		},
		{
			name:    "negative length",
			file:    File{MaxLength: -1},
			wantErr: []error{ErrInvalidLength},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidConfig)

			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	f := File{
		MinLength: 10,
		MaxLength: 4,
		Commands: []Command{
			{Name: "api", Command: "make api"},
			{Name: "api", Command: ""},
			{Name: "", Command: "make"},
			{Name: "web", Command: "make web", Color: "chartreuse"},
		},
	}

	err := f.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)

	for _, want := range []error{ErrInvalidLength, ErrDuplicateName, ErrEmptyCommand, ErrEmptyName, color.ErrUnknownStyle} {
		assert.ErrorIs(t, err, want)
	}

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
}

func TestSpecs_UnknownColour(t *testing.T) {
	f := File{Commands: []Command{{Name: "api", Command: "a", Color: "nope"}}}

	_, err := f.Specs()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, color.ErrUnknownStyle)
}
