// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/xyzedit/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	// TOML is the default format, for .toml files.
	TOML Formats = iota

	// YAML is for .yaml and .yml files.
	YAML
)

// FormatFromFile returns the format for the extension of the given file.
func FormatFromFile(file string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, errors.Errorf(errors.ErrInvalidArgument, "config: unsupported config file type %q", file)
}

// DefaultFile returns the default config file, ~/.xyzedit/config.toml.
func DefaultFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".xyzedit", "config.toml"), nil
}

// Open reads the given config file into the given config, on top of
// the values already in it, and validates the result.
func Open(c *Config, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	if _, err := FormatFromFile(file); err != nil {
		return err
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(c, f, file)
}

// Read decodes config data in the format of the given file name.
func Read(c *Config, r io.Reader, file string) error {
	format, err := FormatFromFile(file)
	if err != nil {
		return err
	}
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(c)
		if err == io.EOF {
			err = nil
		}
	default:
		err = toml.NewDecoder(r).Decode(c)
	}
	if err != nil {
		return errors.Errorf(errors.ErrInvalidArgument, "config: reading %s: %v", file, err)
	}
	return c.Validate()
}

// Save writes the given config to the given file, in the format
// of its extension, creating its directory if needed.
func Save(c *Config, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	format, err := FormatFromFile(file)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	switch format {
	case YAML:
		enc := yaml.NewEncoder(&b)
		err = enc.Encode(c)
		enc.Close()
	default:
		err = toml.NewEncoder(&b).Encode(c)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	return os.WriteFile(file, b.Bytes(), 0o644)
}
