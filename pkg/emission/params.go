// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package emission

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gitlab.com/accumulatenetwork/emission/pkg/errors"
)

// Parameters configures a simulation run. The zero value is not valid, use
// [DefaultParameters] as a starting point.
type Parameters struct {
	MaxSupply          float64 `validate:"gt=0"`        // Upper bound on supply
	EmissionDivisor    float64 `validate:"gt=0"`        // Controls the decay rate of the reward
	TreasuryPortion    float64 `validate:"gte=0,lte=1"` // Fraction of each reward routed to the treasury
	InitialSupply      float64 `validate:"gte=0"`       // Supply at block zero, may be >= MaxSupply
	ReportInterval     uint64  `validate:"gt=0"`        // Blocks per reporting batch
	MaxBlocks          uint64  `validate:"gt=0"`        // Hard ceiling on processed blocks
	MinRewardThreshold float64 `validate:"gt=0"`        // Stop once the next reward is below this
	SecondsPerBlock    float64 `validate:"gt=0"`        // Used for time estimates only
}

// CurveParameters configures the emission curve analysis. The initial supply
// is independent of the simulator's.
type CurveParameters struct {
	MaxSupply       float64   `validate:"gt=0"`
	EmissionDivisor float64   `validate:"gt=0"`
	InitialSupply   float64   `validate:"gte=0"`
	Checkpoints     []float64 `validate:"min=1,dive,gt=0,lte=1"`
}

const (
	DefaultMaxSupply       = 21_000_000
	DefaultEmissionDivisor = 26_280_000
	DefaultTreasuryPortion = 0.5
)

// DefaultParameters returns the parameters of the reference economic model.
func DefaultParameters() Parameters {
	return Parameters{
		MaxSupply:          DefaultMaxSupply,
		EmissionDivisor:    DefaultEmissionDivisor,
		TreasuryPortion:    DefaultTreasuryPortion,
		InitialSupply:      6_300_000,   // Genesis allocation
		ReportInterval:     1_000_000,   // Report every 1M blocks
		MaxBlocks:          120_000_000, // Budget of 120M blocks
		MinRewardThreshold: 0.000001,
		SecondsPerBlock:    12,
	}
}

// DefaultCurveParameters returns the parameters of the reference curve
// analysis.
func DefaultCurveParameters() CurveParameters {
	return CurveParameters{
		MaxSupply:       DefaultMaxSupply,
		EmissionDivisor: DefaultEmissionDivisor,
		InitialSupply:   1_400_000,
		Checkpoints:     []float64{0.5, 0.75, 0.90, 0.95, 0.99, 0.999},
	}
}

// Available returns the supply left to emit at the start of the run, or zero
// if the initial supply already meets the maximum.
func (p Parameters) Available() float64 {
	if p.InitialSupply >= p.MaxSupply {
		return 0
	}
	return p.MaxSupply - p.InitialSupply
}

// Validate checks the parameters. An initial supply at or above the maximum is
// valid; such a run terminates immediately.
func (p Parameters) Validate() error {
	return validateStruct("emission parameters", p)
}

// Validate checks the curve parameters.
func (p CurveParameters) Validate() error {
	return validateStruct("curve parameters", p)
}

var validate = validator.New()

func validateStruct(name string, v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.BadRequest.WithCauseAndFormat(err, "invalid %s", name)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields = append(fields, fmt.Sprintf("%s (%v) must satisfy %s", fe.Field(), fe.Value(), rule))
	}
	return errors.BadRequest.WithFormat("invalid %s: %s", name, strings.Join(fields, ", "))
}
