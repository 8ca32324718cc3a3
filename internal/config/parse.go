// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

const (
	extHCL  = ".hcl"
	extJSON = ".json"
	extYAML = ".yaml"
	extYML  = ".yml"

	envVariable = "env"
)

var (
	// ErrUnsupportedFormat is returned for a file extension that is not .hcl, .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")
	// ErrParse is returned when the configuration file cannot be decoded.
	ErrParse = errors.New("failed to parse configuration file")
)

// hclFile is the HCL shape of File. Commands are labelled blocks.
type hclFile struct {
	MinLength *int         `hcl:"min_length,optional"`
	MaxLength *int         `hcl:"max_length,optional"`
	Commands  []hclCommand `hcl:"command,block"`
}

type hclCommand struct {
	Name    string `hcl:"name,label"`
	Command string `hcl:"command"`
	Cwd     string `hcl:"cwd,optional"`
	Color   string `hcl:"color,optional"`
}

// Parse decodes data according to the extension of name.
// HCL files can reference the process environment as env.NAME.
func Parse(name string, data []byte) (*File, error) {
	var (
		f   *File
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case extHCL:
		f, err = parseHCL(name, data)
	case extJSON, extYAML, extYML:
		f, err = parseYAML(data)
	default:
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}

	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, ErrParse, err)
	}

	return f, nil
}

// parseYAML handles both YAML and JSON, which is a subset of YAML.
func parseYAML(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.UnmarshalWithOptions(data, f, yaml.Strict()); err != nil {
		return nil, errors.New(yaml.FormatError(err, false, true)) //nolint:err113
	}

	return f, nil
}

func parseHCL(name string, data []byte) (*File, error) {
	var hf hclFile
	if err := hclsimple.Decode(filepath.Base(name), data, evalContext(), &hf); err != nil {
		return nil, err //nolint:wrapcheck
	}

	f := &File{
		Commands: make([]Command, 0, len(hf.Commands)),
	}

	if hf.MinLength != nil {
		f.MinLength = *hf.MinLength
	}

	if hf.MaxLength != nil {
		f.MaxLength = *hf.MaxLength
	}

	for _, c := range hf.Commands {
		f.Commands = append(f.Commands, Command(c))
	}

	return f, nil
}

func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			envVariable: cty.ObjectVal(env),
		},
	}
}
