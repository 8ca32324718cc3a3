// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/prun/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrGetConfigFile is returned when the file cannot be read.
	ErrGetConfigFile = errors.New("failed to get config file")
)

// Load reads, parses and validates the configuration at src.
//
// Paths that exist on FsFactory() are read directly and relative working directories resolve
// against the file's directory. Anything else is treated as a go-getter URL,
// see https://github.com/hashicorp/go-getter, and resolves relative working directories against
// the current directory.
func Load(ctx context.Context, src string) (*File, error) {
	if src == "" {
		return nil, ErrGetConfigFile
	}

	data, name, dir, err := read(ctx, src)
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "loaded configuration", "src", src, "file", name, "bytes", len(data))

	f, err := Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	f.dir = dir

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	return f, nil
}

// read returns the content of src, the file name used to pick a parser, and the base directory.
func read(ctx context.Context, src string) ([]byte, string, string, error) {
	fs := FsFactory()

	if ok, _ := afero.Exists(fs, src); ok {
		data, err := afero.ReadFile(fs, src)
		if err != nil {
			return nil, "", "", errors.Join(ErrGetConfigFile, err)
		}

		dir, err := filepath.Abs(filepath.Dir(src))
		if err != nil {
			return nil, "", "", errors.Join(ErrGetConfigFile, err)
		}

		return data, filepath.Base(src), dir, nil
	}

	data, name, err := getURL(ctx, src)
	if err != nil {
		return nil, "", "", err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", "", errors.Join(ErrGetConfigFile, err)
	}

	return data, name, wd, nil
}

// getURL retrieves the content from the specified URL using Hashicorp's go-getter.
// It returns the content and the file name. The temporary download is removed before returning.
func getURL(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", ErrGetConfigFile
	}

	tmpDir, err := os.MkdirTemp("", "prun-getter-*")
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string
	// If it's not a local file URL, we need to download the directory and read the file from there
	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, "", errors.Join(ErrGetConfigFile, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrGetConfigFile, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	ctxlog.Debug(ctx, "fetching configuration", "src", req.Src, "file", fileName)

	res, err := cli.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrGetConfigFile, err)
	}

	return data, fileName, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // Minimum parts in a go-getter URL: scheme, host, and path
)

// splitFileNameFromGetterURL splits the URL into the directory and file name.
// It returns the new getter URL without the file name and the file name itself.
// It will append any ref query parameter to the new URL if it exists.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref, fileName string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if strings.Contains(last, goGetterRefSeparator) {
		refSplit := strings.Split(last, goGetterRefSeparator)
		if len(refSplit) > 1 {
			ref = strings.Join(refSplit[1:], "")
		}

		last = refSplit[0]
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName = filepath.Base(last)
	parts[len(parts)-1] = filepath.Dir(last)

	if parts[len(parts)-1] == "." {
		parts = parts[:len(parts)-1]
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}
