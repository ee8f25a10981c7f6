// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true if the status is a client error.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

// Error implements error.
func (s Status) Error() string { return s.String() }

// Wrap wraps err with the status. Wrap returns nil if err is nil.
func (s Status) Wrap(err error) error {
	if err == nil {
		return nil
	}
	e := new(Error)
	e.Code = s
	e.setCause(convert(err))
	return e
}

func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)

	u, ok := err.(interface{ Unwrap() error })
	if ok && u.Unwrap() != nil {
		e := &Error{Code: s, Message: err.Error()}
		e.setCause(convert(u.Unwrap()))
		return e
	}

	return &Error{Code: s, Message: err.Error()}
}

func (s Status) WithCauseAndFormat(cause error, format string, args ...interface{}) *Error {
	e := &Error{Code: s, Message: fmt.Sprintf(format, args...)}
	e.setCause(convert(cause))
	return e
}

// Error is an error with a status code and an optional cause.
type Error struct {
	Code    Status
	Message string
	Cause   *Error
}

func convert(err error) *Error {
	if x := (*Error)(nil); errors.As(err, &x) {
		return x
	}
	var msg string
	if err == nil {
		msg = "(nil)"
	} else {
		msg = err.Error()
	}
	if x := Status(0); errors.As(err, &x) {
		return &Error{Code: x, Message: msg}
	}

	e := &Error{Code: UnknownError, Message: msg}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		if err := u.Unwrap(); err != nil {
			e.setCause(convert(err))
		}
	}
	return e
}

func (e *Error) setCause(f *Error) {
	e.Cause = f
	if f == nil {
		return
	}

	if e.Code.IsKnownError() {
		return
	}

	if e.Message != "" {
		// Copy the code
		e.Code = f.Code
		return
	}

	// Inherit everything
	*e = *f
}

func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Code
}

func (e *Error) Format(f fmt.State, verb rune) {
	if f.Flag('+') {
		_, _ = f.Write([]byte(e.Print()))
	} else {
		_, _ = f.Write([]byte(e.Error()))
	}
}

// Print prints an error message plus its causal chain, one line per error,
// each prefixed with its status.
func (e *Error) Print() string {
	var str []string
	for e != nil {
		// Remove the suffix if the error is compound
		msg := e.Message
		if msg == "" {
			msg = e.Code.String()
		} else if e.Cause != nil {
			msg = strings.TrimSuffix(msg, ": "+e.Cause.Message)
		}

		str = append(str, fmt.Sprintf("[%s] %s", e.Code, msg))
		e = e.Cause
	}
	return strings.Join(str, "\n")
}

func (e *Error) Is(target error) bool {
	switch f := target.(type) {
	case *Error:
		if e.Code == f.Code {
			return true
		}
	case Status:
		if e.Code == f {
			return true
		}
	}
	if e.Cause != nil {
		return e.Cause.Is(target)
	}
	return false
}
