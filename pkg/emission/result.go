// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package emission

import (
	"math"

	"gitlab.com/accumulatenetwork/emission/pkg/errors"
)

// Result is the outcome of a simulation run.
type Result struct {
	Params        Parameters
	Initial       Row   // Preview of the initial state
	Rows          []Row // One row per batch
	StopReason    StopReason
	Blocks        uint64
	FinalSupply   float64
	MinerTotal    float64
	TreasuryTotal float64
}

// Remaining returns the supply left unissued.
func (r *Result) Remaining() float64 {
	return r.Params.MaxSupply - r.FinalSupply
}

// PercentOfMax returns the final supply as a percentage of max supply.
func (r *Result) PercentOfMax() float64 {
	return r.FinalSupply / r.Params.MaxSupply * 100
}

// TotalDistributed returns the sum of miner and treasury rewards.
func (r *Result) TotalDistributed() float64 {
	return r.MinerTotal + r.TreasuryTotal
}

// MinerShare returns the miner's percentage of distributed rewards, or zero
// if nothing was distributed.
func (r *Result) MinerShare() float64 {
	return share(r.MinerTotal, r.TotalDistributed())
}

// TreasuryShare returns the treasury's percentage of distributed rewards, or
// zero if nothing was distributed.
func (r *Result) TreasuryShare() float64 {
	return share(r.TreasuryTotal, r.TotalDistributed())
}

func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// TimeEstimate returns the wall-clock time the processed blocks represent.
func (r *Result) TimeEstimate() TimeEstimate {
	return EstimateTime(r.Blocks, r.Params.SecondsPerBlock)
}

// auditTolerance is the relative tolerance between the reward totals and
// the emitted supply. The two are accumulated separately so they drift apart
// by rounding.
const auditTolerance = 1e-6

// Audit checks the accounting of the result: supply never fell below the
// initial supply, supply overshoots the maximum by at most one block reward,
// and miner plus treasury rewards add up to the emitted supply.
func (r *Result) Audit() error {
	p := r.Params
	if r.FinalSupply < p.InitialSupply {
		return errors.InvariantViolated.WithFormat("final supply %v is below initial supply %v", r.FinalSupply, p.InitialSupply)
	}

	// The largest single reward is the first one. A run that starts above
	// the maximum never grows.
	ceiling := math.Max(p.MaxSupply, p.InitialSupply)
	if over := r.FinalSupply - ceiling; over > r.Initial.Reward.Total {
		return errors.InvariantViolated.WithFormat("final supply %v exceeds max supply %v by more than one block reward (%v)", r.FinalSupply, p.MaxSupply, r.Initial.Reward.Total)
	}

	emitted := r.FinalSupply - p.InitialSupply
	diff := math.Abs(r.TotalDistributed() - emitted)
	if diff > auditTolerance*math.Max(1, emitted) {
		return errors.InvariantViolated.WithFormat("distributed rewards %v do not match emitted supply %v", r.TotalDistributed(), emitted)
	}

	if r.Blocks > p.MaxBlocks {
		return errors.InvariantViolated.WithFormat("processed %d blocks, exceeding the budget of %d", r.Blocks, p.MaxBlocks)
	}
	return nil
}

const (
	secondsPerDay = 24 * 60 * 60
	daysPerYear   = 365.25
)

// TimeEstimate converts a block count to elapsed time. The 99% figures are a
// plain 0.99 scaling of the total, not a point on the curve.
type TimeEstimate struct {
	Seconds   float64
	Days      float64
	Years     float64
	DaysTo99  float64
	YearsTo99 float64
}

// EstimateTime converts a block count to elapsed time at a fixed block time.
func EstimateTime(blocks uint64, secondsPerBlock float64) TimeEstimate {
	var t TimeEstimate
	t.Seconds = float64(blocks) * secondsPerBlock
	t.Days = t.Seconds / secondsPerDay
	t.Years = t.Days / daysPerYear
	t.DaysTo99 = t.Days * 0.99
	t.YearsTo99 = t.Years * 0.99
	return t
}
