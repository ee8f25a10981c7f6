// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import "strconv"

// Status is an error status code.
type Status uint64

const (
	// OK means no error.
	OK Status = 200

	// BadRequest means the caller supplied invalid input, such as emission
	// parameters that fail validation.
	BadRequest Status = 400

	// InvariantViolated means a computed result broke one of the accounting
	// invariants of the emission model.
	InvariantViolated Status = 422

	// InternalError means something went wrong that is not the caller's
	// fault.
	InternalError Status = 500

	// UnknownError means the cause of the error is not known.
	UnknownError Status = 501
)

var statusNames = map[Status]string{
	OK:                "ok",
	BadRequest:        "bad request",
	InvariantViolated: "invariant violated",
	InternalError:     "internal error",
	UnknownError:      "unknown error",
}

// String returns the name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "status(" + strconv.FormatUint(uint64(s), 10) + ")"
}
