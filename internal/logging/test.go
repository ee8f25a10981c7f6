// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

// TestLogger forwards each write to the test log.
type TestLogger struct {
	Test testing.TB
}

var _ io.Writer = (*TestLogger)(nil)

func (l *TestLogger) Write(b []byte) (int, error) {
	s := string(b)
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
	}
	l.Test.Log(s)
	return len(b), nil
}

// NewTestLogger returns a debug-level console logger that writes to the test
// log.
func NewTestLogger(t testing.TB) *slog.Logger {
	h := NewConsoleHandler(&TestLogger{Test: t}, false, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(newFilterHandler(h, Levels{Default: slog.LevelDebug}))
}
