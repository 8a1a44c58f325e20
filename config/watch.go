// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with a freshly loaded config whenever the given
// file is written, until the context is done. The directory is
// watched, so that editors that replace the file are seen too.
// Files that fail to load are logged and skipped. onChange is
// called on the watching goroutine.
func Watch(ctx context.Context, file string, onChange func(c *Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		watcher.Close()
		return err
	}
	name := filepath.Clean(file)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				c := New()
				if err := Open(c, file); err != nil {
					slog.Error("config: reload failed", "file", file, "err", err)
					continue
				}
				slog.Info("config: reloaded", "file", file)
				onChange(c)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config: watcher error: " + err.Error())
			}
		}
	}()
	return nil
}
