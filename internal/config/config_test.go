// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/prun/internal/color"
	"github.com/matt-FFFFFF/prun/internal/supervisor"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyFsWithFiles(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func TestLoad_UnknownColour(t *testing.T) {
	dummyFsWithFiles(t, map[string]string{
		"/work/prun.yaml": `
min_length: 6
max_length: 14
commands:
  - name: api
    command: go run ./cmd/api
    cwd: ./services/api
  - name: web
    command: npm start
    cwd: /srv/web
    color: cyanish
`,
	})

	_, err := Load(context.Background(), "/work/prun.yaml")
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, color.ErrUnknownStyle)
	assert.Contains(t, err.Error(), "cyanish")
}

func TestLoad_ResolvesRelativeCwd(t *testing.T) {
	dummyFsWithFiles(t, map[string]string{
		"/work/prun.yml": `
commands:
  - name: api
    command: go run ./cmd/api
    cwd: ./services/api
  - name: web
    command: npm start
    cwd: /srv/web
    color: blueBright
  - name: root
    command: make
`,
	})

	f, err := Load(context.Background(), "/work/prun.yml")
	require.NoError(t, err)
	assert.Equal(t, "/work", f.Dir())

	specs, err := f.Specs()
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, supervisor.CommandSpec{
		Name:    "api",
		Command: "go run ./cmd/api",
		Cwd:     filepath.Join("/work", "services", "api"),
	}, specs[0])

	assert.Equal(t, "/srv/web", specs[1].Cwd)
	require.NotNil(t, specs[1].Color)
	assert.Equal(t, color.BlueBright, *specs[1].Color)

	assert.Empty(t, specs[2].Cwd, "an empty cwd means the current directory")
	assert.Nil(t, specs[2].Color)
}

func TestLoad_JSON(t *testing.T) {
	dummyFsWithFiles(t, map[string]string{
		"/cfg/commands.json": `{
  "commands": [
    {"name": "frontend", "command": "npm run dev", "cwd": "./frontend"},
    {"name": "backend", "command": "npm run start:dev"}
  ]
}`,
	})

	f, err := Load(context.Background(), "/cfg/commands.json")
	require.NoError(t, err)
	assert.Equal(t, []Command{
		{Name: "frontend", Command: "npm run dev", Cwd: "./frontend"},
		{Name: "backend", Command: "npm run start:dev"},
	}, f.Commands)
	assert.Zero(t, f.MinLength)
	assert.Zero(t, f.MaxLength)
}

func TestLoad_HCL(t *testing.T) {
	t.Setenv("PRUN_TEST_ROOT", "/srv/app")

	dummyFsWithFiles(t, map[string]string{
		"/cfg/prun.hcl": `
min_length = 5
max_length = 10

command "api" {
  command = "go run ./cmd/api"
  cwd     = "${env.PRUN_TEST_ROOT}/api"
  color   = "green"
}

command "worker" {
  command = "go run ./cmd/worker"
}
`,
	})

	f, err := Load(context.Background(), "/cfg/prun.hcl")
	require.NoError(t, err)
	assert.Equal(t, 5, f.MinLength)
	assert.Equal(t, 10, f.MaxLength)
	assert.Equal(t, []Command{
		{Name: "api", Command: "go run ./cmd/api", Cwd: "/srv/app/api", Color: "green"},
		{Name: "worker", Command: "go run ./cmd/worker"},
	}, f.Commands)
}

func TestLoad_Errors(t *testing.T) {
	dummyFsWithFiles(t, map[string]string{
		"/cfg/broken.yaml": "commands: [\n",
		"/cfg/unknown.yaml": `
commands:
  - name: api
    command: true
    retries: 3
`,
		"/cfg/broken.hcl":  `command "api" {`,
		"/cfg/prun.toml":   `name = "x"`,
		"/cfg/nocmds.yaml": `commands: []`,
	})

	tests := []struct {
		name    string
		src     string
		wantErr []error
	}{
		{name: "empty source", src: "", wantErr: []error{ErrGetConfigFile}},
		{name: "invalid yaml", src: "/cfg/broken.yaml", wantErr: []error{ErrInvalidConfig, ErrParse}},
		{name: "unknown field", src: "/cfg/unknown.yaml", wantErr: []error{ErrInvalidConfig, ErrParse}},
		{name: "invalid hcl", src: "/cfg/broken.hcl", wantErr: []error{ErrInvalidConfig, ErrParse}},
		{name: "unsupported extension", src: "/cfg/prun.toml", wantErr: []error{ErrUnsupportedFormat}},
		{name: "missing file", src: filepath.Join(t.TempDir(), "absent.yaml"), wantErr: []error{ErrGetConfigFile}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(context.Background(), tt.src)
			assert.Nil(t, f)

			for _, want := range tt.wantErr {
				require.ErrorIs(t, err, want)
			}
		})
	}

	t.Run("empty command list is valid", func(t *testing.T) {
		f, err := Load(context.Background(), "/cfg/nocmds.yaml")
		require.NoError(t, err)
		assert.Empty(t, f.Commands)
	})
}

func TestLoad_LocalFileFromDisk(t *testing.T) {
	f, err := Load(context.Background(), filepath.Join("testdata", "prun.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, f.MaxLength)
	require.Len(t, f.Commands, 2)

	abs, err := filepath.Abs("testdata")
	require.NoError(t, err)
	assert.Equal(t, abs, f.Dir())
}

func TestFromCommandLine(t *testing.T) {
	f := FromCommandLine("npm run dev;  ; echo hi ;cd backend && make ", "/home/me/proj")

	assert.Equal(t, []Command{
		{Name: "cmd1", Command: "npm run dev", Cwd: "/home/me/proj"},
		{Name: "cmd3", Command: "echo hi", Cwd: "/home/me/proj"},
		{Name: "cmd4", Command: "cd backend && make", Cwd: "/home/me/proj"},
	}, f.Commands)
	require.NoError(t, f.Validate())

	specs, err := f.Specs()
	require.NoError(t, err)
	assert.Len(t, specs, 3)
	assert.Equal(t, "/home/me/proj", specs[0].Cwd)

	assert.Empty(t, FromCommandLine(" ; ;", "/").Commands)
}

func TestFromInput(t *testing.T) {
	dummyFsWithFiles(t, map[string]string{
		"/cfg/prun.yaml": `
commands:
  - name: api
    command: make api
`,
	})

	t.Run("no input", func(t *testing.T) {
		_, err := FromInput(context.Background(), "", "")
		require.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("commands win over config", func(t *testing.T) {
		f, err := FromInput(context.Background(), "echo a; echo b", "/cfg/prun.yaml")
		require.NoError(t, err)
		require.Len(t, f.Commands, 2)
		assert.Equal(t, "cmd1", f.Commands[0].Name)
		assert.Equal(t, "echo b", f.Commands[1].Command)
		assert.NotEmpty(t, f.Dir(), "commands run in the working directory")
	})

	t.Run("config file", func(t *testing.T) {
		f, err := FromInput(context.Background(), "", "/cfg/prun.yaml")
		require.NoError(t, err)
		require.Len(t, f.Commands, 1)
		assert.Equal(t, "api", f.Commands[0].Name)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := FromInput(context.Background(), "", "/cfg/missing.toml")
		require.Error(t, err)
	})
}
