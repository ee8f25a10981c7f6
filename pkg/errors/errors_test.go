// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusIs(t *testing.T) {
	err := BadRequest.WithFormat("max supply must be positive, got %v", -1.0)
	require.True(t, errors.Is(err, BadRequest))
	require.False(t, errors.Is(err, InvariantViolated))
	require.Equal(t, BadRequest, Code(err))
	require.Equal(t, "max supply must be positive, got -1", err.Error())
}

func TestWrapKeepsCauseCode(t *testing.T) {
	cause := InvariantViolated.With("supply decreased")
	err := UnknownError.Wrap(cause)
	require.True(t, errors.Is(err, InvariantViolated))
	require.Equal(t, InvariantViolated, Code(err))
	require.Equal(t, "supply decreased", err.Error())
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, BadRequest.Wrap(nil))
}

func TestWithCauseAndFormat(t *testing.T) {
	cause := fmt.Errorf("field TreasuryPortion failed on lte")
	err := BadRequest.WithCauseAndFormat(cause, "invalid parameters")
	require.True(t, errors.Is(err, BadRequest))
	require.Equal(t, "invalid parameters", err.Error())
	require.Equal(t, "[bad request] invalid parameters\n[unknown error] field TreasuryPortion failed on lte", fmt.Sprintf("%+v", err))
}

func TestWithFormatWrapsCause(t *testing.T) {
	cause := InvariantViolated.With("totals mismatch")
	err := BadRequest.WithFormat("audit: %w", cause)
	require.True(t, errors.Is(err, BadRequest))
	require.True(t, errors.Is(err, InvariantViolated))
	require.Equal(t, "audit: totals mismatch", err.Error())
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "bad request", BadRequest.String())
	require.Equal(t, "status(999)", Status(999).String())
	require.True(t, BadRequest.IsClientError())
	require.True(t, InternalError.IsServerError())
	require.True(t, OK.Success())
}
