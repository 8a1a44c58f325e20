// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"

	"cogentcore.org/xyzedit/base/errors"
)

// Var is a config variable that can be read and set by name,
// for example from the console.
type Var struct {

	// Name is the name, the same as the file key.
	Name string

	// Doc is a one-line description.
	Doc string

	// Get returns the current value as a string.
	Get func(c *Config) string

	// Set parses and sets the value.
	Set func(c *Config, value string) error
}

// Vars is the table of all config variables.
var Vars = []Var{
	boolVar("debug", "log at the debug level", func(c *Config) *bool { return &c.Debug }),
	boolVar("verbose", "log at the info level", func(c *Config) *bool { return &c.Verbose }),
	boolVar("quiet", "only log errors", func(c *Config) *bool { return &c.Quiet }),
	{
		Name: "backend",
		Doc:  "render backend: gl or raylib",
		Get:  func(c *Config) string { return c.Backend },
		Set: func(c *Config, v string) error {
			prev := c.Backend
			c.Backend = v
			if err := c.Validate(); err != nil {
				c.Backend = prev
				return err
			}
			return nil
		},
	},
	{
		Name: "selection_mode",
		Doc:  "how picks change the selection: none, new or xor",
		Get:  func(c *Config) string { return c.SelectionMode },
		Set: func(c *Config, v string) error {
			prev := c.SelectionMode
			c.SelectionMode = v
			if err := c.Validate(); err != nil {
				c.SelectionMode = prev
				return err
			}
			return nil
		},
	},
	{
		Name: "suffix_limit",
		Doc:  "number of name_N suffixes tried for a unique name",
		Get:  func(c *Config) string { return strconv.Itoa(c.SuffixLimit) },
		Set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return errors.Errorf(errors.ErrInvalidArgument, "config: suffix_limit %q must be a positive integer", v)
			}
			c.SuffixLimit = n
			return nil
		},
	},
	{
		Name: "script",
		Doc:  "console script run at startup",
		Get:  func(c *Config) string { return c.Script },
		Set:  func(c *Config, v string) error { c.Script = v; return nil },
	},
}

func boolVar(name, doc string, field func(c *Config) *bool) Var {
	return Var{
		Name: name,
		Doc:  doc,
		Get:  func(c *Config) string { return strconv.FormatBool(*field(c)) },
		Set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Errorf(errors.ErrInvalidArgument, "config: %s: %q is not a bool", name, v)
			}
			*field(c) = b
			return nil
		},
	}
}

// FindVar returns the variable with the given name, or nil.
func FindVar(name string) *Var {
	for i := range Vars {
		if Vars[i].Name == name {
			return &Vars[i]
		}
	}
	return nil
}

// VarNames returns the names of all variables, in table order.
func VarNames() []string {
	nms := make([]string, len(Vars))
	for i, v := range Vars {
		nms[i] = v.Name
	}
	return nms
}
