// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package logging builds slog handlers for the emission tools.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/accumulatenetwork/emission/pkg/errors"
	"golang.org/x/exp/slog"
)

const (
	messageKey = "message"
	moduleKey  = "module"
)

// Config selects the output format and level rules of a handler.
type Config struct {
	// Format is text, plain, or json. The default is text.
	Format string

	// Levels is a rule string as accepted by ParseLevels.
	Levels string

	// Color enables colored console output.
	Color bool
}

// NewHandler returns a handler writing to w that filters records by module.
func NewHandler(w io.Writer, cfg Config) (slog.Handler, error) {
	levels, err := ParseLevels(cfg.Levels)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: levels.Lowest()}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text", "plain":
		h = NewConsoleHandler(w, cfg.Color, opts)
	case "json":
		h = NewJSONHandler(w, opts)
	default:
		return nil, errors.BadRequest.WithFormat("log format %q is not supported", cfg.Format)
	}

	return newFilterHandler(h, levels), nil
}

// NewConsoleHandler returns a handler that renders records with zerolog's
// console writer.
func NewConsoleHandler(w io.Writer, color bool, opts *slog.HandlerOptions) slog.Handler {
	o := withMessageKey(opts)
	return slog.NewJSONHandler(&zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
		FormatMessage: func(i interface{}) string {
			s, ok := i.(string)
			if ok {
				return s
			}
			return fmt.Sprint(i)
		},
	}, o)
}

// NewJSONHandler returns a handler that writes one JSON object per record.
func NewJSONHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewJSONHandler(w, withMessageKey(opts))
}

// withMessageKey renames the message attribute to the name zerolog expects.
func withMessageKey(opts *slog.HandlerOptions) *slog.HandlerOptions {
	o := new(slog.HandlerOptions)
	if opts != nil {
		*o = *opts
	}

	replace := o.ReplaceAttr
	o.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if replace != nil {
			a = replace(groups, a)
		}
		if len(groups) > 0 || a.Key != slog.MessageKey {
			return a
		}
		if a.Value.Kind() == slog.KindString {
			return slog.Any(messageKey, a.Value)
		}
		return slog.String(messageKey, fmt.Sprint(a.Value.Any()))
	}
	return o
}

// Module returns a logger whose records carry the given module name.
func Module(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(moduleKey, name)
}
