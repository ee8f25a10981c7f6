// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package emission

// State is the mutable state of a simulation.
type State struct {
	Block         uint64
	Supply        float64
	MinerTotal    float64
	TreasuryTotal float64
}

// Row is a progress report. Reward is the prospective reward of the next,
// not yet processed, block.
type Row struct {
	Block     uint64
	Supply    float64
	Percent   float64 // Supply as a percentage of max supply
	Reward    Reward
	Remaining float64
}

// Simulator steps the emission schedule. A simulator is single use and is not
// safe for concurrent use.
type Simulator struct {
	params Parameters
	state  State
	rows   []Row
	stop   StopReason
}

// NewSimulator validates the parameters and returns a simulator positioned at
// block zero.
func NewSimulator(params Parameters) (*Simulator, error) {
	err := params.Validate()
	if err != nil {
		return nil, err
	}

	s := new(Simulator)
	s.params = params
	s.state.Supply = params.InitialSupply
	return s, nil
}

// Simulate runs a fresh simulator to completion.
func Simulate(params Parameters) (*Result, error) {
	s, err := NewSimulator(params)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

// Params returns the simulator's parameters.
func (s *Simulator) Params() Parameters { return s.params }

// State returns a copy of the current state.
func (s *Simulator) State() State { return s.state }

// Stopped returns the reason the simulation stopped, or Running.
func (s *Simulator) Stopped() StopReason { return s.stop }

// Row returns a progress report for the current state.
func (s *Simulator) Row() Row {
	p := s.params
	return Row{
		Block:     s.state.Block,
		Supply:    s.state.Supply,
		Percent:   s.state.Supply / p.MaxSupply * 100,
		Reward:    p.RewardAt(s.state.Supply),
		Remaining: p.MaxSupply - s.state.Supply,
	}
}

// Step processes a single block and returns its reward. Step returns false
// and leaves the state untouched if nothing remains to be issued.
func (s *Simulator) Step() (Reward, bool) {
	p := s.params
	if s.state.Supply >= p.MaxSupply {
		return Reward{}, false
	}

	remaining := p.MaxSupply - s.state.Supply
	if remaining <= 0 {
		return Reward{}, false
	}

	r := SplitReward(remaining/p.EmissionDivisor, p.TreasuryPortion)
	s.state.Supply += r.Total
	s.state.TreasuryTotal += r.Treasury
	s.state.MinerTotal += r.Miner
	s.state.Block++
	return r, true
}

// Batch processes up to one reporting interval of blocks and returns the
// progress report for the resulting state. A batch never crosses the block
// budget and ends early if nothing remains to be issued.
func (s *Simulator) Batch() Row {
	n := s.params.ReportInterval
	if s.state.Block >= s.params.MaxBlocks {
		n = 0
	} else if left := s.params.MaxBlocks - s.state.Block; left < n {
		n = left
	}

	for i := uint64(0); i < n; i++ {
		if _, ok := s.Step(); !ok {
			break
		}
	}
	return s.Row()
}

// Run drives the simulation until it stops and returns the result.
//
// The loop stops before a batch if the block budget is spent or supply has
// reached the maximum, and after a batch if supply has reached the maximum or
// the next reward is below the threshold. Running a stopped simulator returns
// the same result again.
func (s *Simulator) Run() *Result {
	p := s.params
	res := new(Result)
	res.Params = p
	res.Initial = p.initialRow()

	if s.stop == Running {
		s.stop = s.run()
	}

	res.Rows = append(res.Rows, s.rows...)
	res.StopReason = s.stop
	res.Blocks = s.state.Block
	res.FinalSupply = s.state.Supply
	res.MinerTotal = s.state.MinerTotal
	res.TreasuryTotal = s.state.TreasuryTotal
	return res
}

func (s *Simulator) run() StopReason {
	p := s.params
	for s.state.Block < p.MaxBlocks && s.state.Supply < p.MaxSupply {
		row := s.Batch()
		s.rows = append(s.rows, row)

		if s.state.Supply >= p.MaxSupply {
			return SupplyReached
		}
		if row.Reward.Total < p.MinRewardThreshold {
			return RewardBelowThreshold
		}
	}

	if s.state.Block >= p.MaxBlocks {
		return BlockLimit
	}
	return NoRemainingSupply
}

// initialRow is the preview row of the initial state. It is display only, no
// block has been processed.
func (p Parameters) initialRow() Row {
	return Row{
		Supply:    p.InitialSupply,
		Percent:   p.InitialSupply / p.MaxSupply * 100,
		Reward:    p.RewardAt(p.InitialSupply),
		Remaining: p.MaxSupply - p.InitialSupply,
	}
}
