// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xyzedit is a console for the xyzedit scene editor. It runs
// editor commands from a startup script and then from standard input,
// mirroring the scene into the configured render backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/xyzedit/backend/glmirror"
	"cogentcore.org/xyzedit/backend/rlmirror"
	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/base/logx"
	"cogentcore.org/xyzedit/config"
	"cogentcore.org/xyzedit/editor"
	"cogentcore.org/xyzedit/scene"
)

var (
	configFile = flag.String("config", "", "the config file (default ~/.xyzedit/config.toml if it exists)")
	script     = flag.String("script", "", "a console script to run before reading standard input")
	verbose    = flag.Bool("v", false, "log at the info level")
	debug      = flag.Bool("debug", false, "log at the debug level")
	quiet      = flag.Bool("q", false, "only log errors")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	logx.SetDefaultLogger()
	os.Exit(run(os.Stdin, os.Stdout))
}

// run loads the config, builds the editor and runs the console,
// returning the exit code.
func run(in io.Reader, out io.Writer) int {
	cfg, file, err := loadConfig()
	if err != nil {
		errors.Log(err)
		return 1
	}
	cn, err := newConsole(cfg, out)
	if err != nil {
		errors.Log(err)
		return 1
	}
	defer cn.close()

	if file != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		// only the log level is safe to change from the watcher goroutine
		errors.Log(config.Watch(ctx, file, func(c *config.Config) {
			applyFlags(c)
			logx.UserLevel.Set(c.LogLevel())
		}))
	}

	nerr := 0
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			errors.Log(err)
			return 1
		}
		nerr += cn.Run(f)
		f.Close()
	}
	nerr += cn.Run(in)
	if nerr > 0 {
		return 1
	}
	return 0
}

// loadConfig returns the config from defaults, the config file and
// the flags, in increasing priority, and the config file used.
func loadConfig() (*config.Config, string, error) {
	cfg := config.New()
	file := *configFile
	if file == "" {
		def, err := config.DefaultFile()
		if err == nil {
			if _, err := os.Stat(def); err == nil {
				file = def
			}
		}
	}
	if file != "" {
		if err := config.Open(cfg, file); err != nil {
			return nil, "", err
		}
	}
	applyFlags(cfg)
	logx.UserLevel.Set(cfg.LogLevel())
	slog.Debug("xyzedit: config", "file", file, "backend", cfg.Backend)
	return cfg, file, nil
}

// applyFlags sets the command line flags on the given config,
// on top of the values from the config file.
func applyFlags(c *config.Config) {
	c.Debug = c.Debug || *debug
	c.Verbose = c.Verbose || *verbose
	c.Quiet = c.Quiet || *quiet
	if *script != "" {
		c.Script = *script
	}
}

// newConsole builds the scene, the backend, a default world and the editor.
func newConsole(cfg *config.Config, out io.Writer) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc := scene.NewScene()
	switch cfg.Backend {
	case "raylib":
		sc.AddRenderer(rlmirror.New())
	default:
		sc.AddRenderer(glmirror.New())
	}
	w, err := sc.NewWorld("main")
	if err != nil {
		return nil, err
	}
	cn := &Console{Config: cfg, Scene: sc, Editor: editor.New(sc, w), Out: out}
	cn.applyConfig()
	return cn, nil
}

// close tears down the editor and then the scene.
func (cn *Console) close() {
	errors.Log(cn.Editor.Close())
	cn.Scene.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Xyzedit is a console for editing 3D scenes.\n")
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\txyzedit [flags] < commands\n")
	fmt.Fprintf(os.Stderr, "Type help for the list of commands.\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
