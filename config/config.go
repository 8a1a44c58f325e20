// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the xyzedit editor,
// loaded from TOML or YAML files, and the table of variables that
// can be read and set from the console.
package config

import (
	"log/slog"
	"slices"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/base/logx"
	"cogentcore.org/xyzedit/editor"
	"cogentcore.org/xyzedit/registry"
)

// Backends are the names of the supported render backends.
var Backends = []string{"gl", "raylib"}

// Config is the main config struct of the editor.
type Config struct {

	// Debug logs at the debug level.
	Debug bool `toml:"debug" yaml:"debug"`

	// Verbose logs at the info level.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Quiet only logs errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`

	// Backend is the render backend: gl or raylib.
	Backend string `toml:"backend" yaml:"backend"`

	// SelectionMode is how picks change the selection: none, new or xor.
	SelectionMode string `toml:"selection_mode" yaml:"selection_mode"`

	// SuffixLimit is the number of name_N suffixes tried to make
	// a colliding name unique.
	SuffixLimit int `toml:"suffix_limit" yaml:"suffix_limit"`

	// Script is a console script to run at startup.
	Script string `toml:"script" yaml:"script"`
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.Backend = "gl"
	c.SelectionMode = editor.SelectionXor.String()
	c.SuffixLimit = registry.DefaultSuffixLimit
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// LogLevel returns the log level selected by the flags.
func (c *Config) LogLevel() slog.Level {
	return logx.LevelFromFlags(c.Debug, c.Verbose, c.Quiet)
}

// Mode returns the selection mode.
func (c *Config) Mode() editor.SelectionModes {
	var sm editor.SelectionModes
	if err := sm.SetString(c.SelectionMode); err != nil {
		return editor.SelectionXor
	}
	return sm
}

// Validate returns an error for any invalid value.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Backends, c.Backend) {
		errs = append(errs, errors.Errorf(errors.ErrInvalidArgument, "config: backend %q is not one of %v", c.Backend, Backends))
	}
	var sm editor.SelectionModes
	if err := sm.SetString(c.SelectionMode); err != nil {
		errs = append(errs, err)
	}
	if c.SuffixLimit <= 0 {
		errs = append(errs, errors.Errorf(errors.ErrInvalidArgument, "config: suffix_limit %d must be positive", c.SuffixLimit))
	}
	return errors.Join(errs...)
}
