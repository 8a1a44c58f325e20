// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default,
// and the terminal color profile still decides whether any escape codes
// are actually written.
var UseColor = true

// NewDefaultHandler returns a new text [slog.Handler] writing to w,
// filtered by [UserLevel], with level names colored for the terminal.
func NewDefaultHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !UseColor || len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(levelString(out, lv))
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to one using
// [NewDefaultHandler] on [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewDefaultHandler(os.Stderr)))
}

// levelString returns the colored name of the given level.
func levelString(out *termenv.Output, lv slog.Level) string {
	st := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		st = st.Foreground(out.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Foreground(out.Color("8"))
	}
	return st.String()
}
