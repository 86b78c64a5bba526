// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strconv"
)

// Defaults and environment variables. Flags override the environment, which
// overrides these defaults.
const (
	// DefaultLogDir is where session logs are written.
	DefaultLogDir = ".minihabit/logs"

	// EnvLogDir overrides DefaultLogDir.
	EnvLogDir = "MINIHABIT_LOG_DIR"

	// EnvAccessible forces the line-by-line prompt frontend when truthy.
	EnvAccessible = "MINIHABIT_ACCESSIBLE"
)

// Options configures one wizard run.
type Options struct {
	Accessible bool   // Use huh prompts instead of the full-screen TUI
	Output     string // Export the plan as YAML to this path
	LogDir     string // Directory for the session log
	NoLog      bool   // Disable the session log
}

// resolveOptions fills unset options from the environment and defaults.
// changed reports whether a flag was set explicitly.
func resolveOptions(opts Options, changed func(name string) bool, getenv func(string) string) Options {
	if getenv == nil {
		getenv = os.Getenv
	}

	if !changed("log-dir") {
		opts.LogDir = DefaultLogDir
		if v := getenv(EnvLogDir); v != "" {
			opts.LogDir = v
		}
	}

	if !changed("accessible") {
		if v, err := strconv.ParseBool(getenv(EnvAccessible)); err == nil {
			opts.Accessible = v
		}
	}
	return opts
}
