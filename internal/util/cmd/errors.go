// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gitlab.com/accumulatenetwork/emission/pkg/errors"
	"golang.org/x/term"
)

// Stderr and Exit are variables so tests can capture them.
var (
	Stderr io.Writer = os.Stderr
	Exit             = os.Exit
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "Error: "+format+"\n", args...)
	Exit(1)
}

// Check exits if err is not nil. Invalid input exits with 2, anything else
// with 1.
func Check(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(Stderr, "Error: %v\n", err)
	if errors.Code(err).IsClientError() {
		Exit(2)
	} else {
		Exit(1)
	}
}

func Checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		Fatalf(format+": %v", append(otherArgs, err)...)
	}
}

func Warnf(format string, args ...interface{}) {
	format = "WARNING: " + format + "\n"
	if IsTerminal(Stderr) {
		fmt.Fprint(Stderr, color.RedString(format, args...))
	} else {
		fmt.Fprintf(Stderr, format, args...)
	}
}
