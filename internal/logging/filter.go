// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"context"
	"strings"

	"gitlab.com/accumulatenetwork/emission/pkg/errors"
	"golang.org/x/exp/slog"
)

// Levels is a default level plus per-module overrides.
type Levels struct {
	Default slog.Level
	Modules map[string]slog.Level
}

// ParseLevels parses rules of the form "info;sim=debug;curve=warn". A rule
// without a module, or with the module "*", sets the default level. An empty
// string yields INFO.
func ParseLevels(s string) (Levels, error) {
	levels := Levels{Default: slog.LevelInfo, Modules: map[string]slog.Level{}}
	rules := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
	for _, rule := range rules {
		parts := strings.Split(strings.TrimSpace(rule), "=")
		if len(parts) > 2 {
			return Levels{}, errors.BadRequest.WithFormat("invalid log level rule %q", rule)
		}

		var level slog.Level
		err := level.UnmarshalText([]byte(parts[len(parts)-1]))
		if err != nil {
			return Levels{}, errors.BadRequest.WithCauseAndFormat(err, "invalid log level rule %q", rule)
		}

		if len(parts) == 1 || parts[0] == "*" {
			levels.Default = level
		} else {
			levels.Modules[strings.ToLower(parts[0])] = level
		}
	}
	return levels, nil
}

// Lowest returns the most verbose level of any rule.
func (l Levels) Lowest() slog.Level {
	lowest := l.Default
	for _, level := range l.Modules {
		if level < lowest {
			lowest = level
		}
	}
	return lowest
}

// For returns the level that applies to the given module.
func (l Levels) For(module string) slog.Level {
	if level, ok := l.Modules[strings.ToLower(module)]; ok {
		return level
	}
	return l.Default
}

// filterHandler drops records below the level of their module and attaches
// the attributes carried by the context.
type filterHandler struct {
	handler slog.Handler
	levels  Levels
	module  string
}

func newFilterHandler(h slog.Handler, levels Levels) *filterHandler {
	return &filterHandler{handler: h, levels: levels}
}

func (h *filterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	i := *h
	i.handler = h.handler.WithAttrs(attrs)
	if m, ok := moduleOf(attrs); ok {
		i.module = m
	}
	return &i
}

func (h *filterHandler) WithGroup(name string) slog.Handler {
	i := *h
	i.handler = h.handler.WithGroup(name)
	return &i
}

func (h *filterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	lowest := h.levels.Lowest()
	if m, ok := moduleOf(Attrs(ctx)); ok {
		lowest = h.levels.For(m)
	} else if h.module != "" {
		lowest = h.levels.For(h.module)
	}
	if level < lowest {
		return false
	}
	return h.handler.Enabled(ctx, level)
}

func (h *filterHandler) Handle(ctx context.Context, record slog.Record) error {
	module := h.module
	if m, ok := moduleOf(Attrs(ctx)); ok {
		module = m
	}
	record.Attrs(func(a slog.Attr) bool {
		if a.Key != moduleKey {
			return true
		}
		module = a.Value.String()
		return false
	})
	if record.Level < h.levels.For(module) {
		return nil
	}

	record.AddAttrs(Attrs(ctx)...)
	return h.handler.Handle(ctx, record)
}

func moduleOf(attrs []slog.Attr) (string, bool) {
	for _, a := range attrs {
		if a.Key == moduleKey {
			return a.Value.String(), true
		}
	}
	return "", false
}
