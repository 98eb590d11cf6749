// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [slog] logger used
// throughout tabular, with the level names coloured
// according to the capabilities of the output terminal.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the command line tool's --log-level flag.
var UserLevel = defaultUserLevel

// levelColors are the ANSI colors used for each standard level.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "4",
	slog.LevelInfo:  "2",
	slog.LevelWarn:  "3",
	slog.LevelError: "1",
}

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with the level rendered in color when w is a color-capable terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			c, ok := levelColors[lvl]
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(out.Color(c)).String())
			return a
		},
	})
}

// InitLogger sets the default [slog] logger to one writing to w,
// using [NewHandler].
func InitLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// levelVar is a [slog.Leveler] that always reports the current [UserLevel],
// so that changes to it take effect on existing loggers.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

// ParseLevel returns the [slog.Level] for the given name
// (debug, info, warn, error; case insensitive).
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return UserLevel, fmt.Errorf("logx.ParseLevel: unknown log level %q", name)
}
