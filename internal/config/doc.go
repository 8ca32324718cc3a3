// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the list of commands prun should run.
//
// A configuration can come from a YAML, JSON or HCL file, fetched locally or with
// Hashicorp's go-getter, or from a semicolon separated command line string.
// Validation reports every problem at once so that nothing is spawned from a broken file.
package config
