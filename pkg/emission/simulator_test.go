// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package emission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fastParams converges in a couple hundred blocks.
func fastParams() Parameters {
	return Parameters{
		MaxSupply:          1000,
		EmissionDivisor:    10,
		TreasuryPortion:    0.3,
		InitialSupply:      0,
		ReportInterval:     10,
		MaxBlocks:          10_000,
		MinRewardThreshold: 1e-6,
		SecondsPerBlock:    12,
	}
}

func TestReferenceFirstReward(t *testing.T) {
	p := DefaultParameters()
	s, err := NewSimulator(p)
	require.NoError(t, err)

	r, ok := s.Step()
	require.True(t, ok)
	require.InDelta(t, 0.559360, r.Total, 1e-6)
	require.InDelta(t, (21_000_000.0-6_300_000.0)/26_280_000.0, r.Total, 1e-15)
	require.Equal(t, r.Treasury, r.Miner)
	require.InDelta(t, r.Total/2, r.Treasury, 1e-15)
	require.Equal(t, uint64(1), s.State().Block)
	require.Equal(t, p.InitialSupply+r.Total, s.State().Supply)
}

func TestStepSplitAndMonotonicSupply(t *testing.T) {
	for _, portion := range []float64{0, 0.3, 0.5, 1} {
		p := fastParams()
		p.TreasuryPortion = portion
		s, err := NewSimulator(p)
		require.NoError(t, err)

		prev := s.State().Supply
		for i := 0; i < 500; i++ {
			r, ok := s.Step()
			if !ok {
				break
			}
			require.InDelta(t, r.Total, r.Treasury+r.Miner, 1e-12)
			require.InDelta(t, r.Total*portion, r.Treasury, 1e-12)

			st := s.State()
			require.GreaterOrEqual(t, st.Supply, prev)
			require.LessOrEqual(t, st.Supply, p.MaxSupply)
			prev = st.Supply
		}
	}
}

func TestEarlyTermination(t *testing.T) {
	res, err := Simulate(fastParams())
	require.NoError(t, err)

	require.Equal(t, RewardBelowThreshold, res.StopReason)
	require.Equal(t, uint64(180), res.Blocks)
	require.Len(t, res.Rows, 18)
	require.Less(t, res.FinalSupply, res.Params.MaxSupply)
	require.Less(t, res.Rows[len(res.Rows)-1].Reward.Total, res.Params.MinRewardThreshold)

	// Every batch but the last is a full interval and is above threshold
	for i, row := range res.Rows {
		require.Equal(t, uint64(i+1)*10, row.Block)
		if i < len(res.Rows)-1 {
			require.GreaterOrEqual(t, row.Reward.Total, res.Params.MinRewardThreshold)
		}
	}
	require.NoError(t, res.Audit())
}

func TestSupplyReached(t *testing.T) {
	p := fastParams()
	p.EmissionDivisor = 1
	p.TreasuryPortion = 0.5

	res, err := Simulate(p)
	require.NoError(t, err)
	require.Equal(t, SupplyReached, res.StopReason)
	require.Equal(t, uint64(1), res.Blocks)
	require.Equal(t, 1000.0, res.FinalSupply)
	require.Equal(t, 500.0, res.MinerTotal)
	require.Equal(t, 500.0, res.TreasuryTotal)
	require.Len(t, res.Rows, 1)
	require.Zero(t, res.Rows[0].Reward.Total)
	require.NoError(t, res.Audit())
}

func TestOvershootIsBoundedByOneReward(t *testing.T) {
	p := fastParams()
	p.EmissionDivisor = 0.5 // Each reward is twice the remaining gap

	res, err := Simulate(p)
	require.NoError(t, err)
	require.Equal(t, SupplyReached, res.StopReason)
	require.Equal(t, uint64(1), res.Blocks)
	require.Equal(t, 2000.0, res.FinalSupply)
	require.LessOrEqual(t, res.FinalSupply-p.MaxSupply, res.Initial.Reward.Total)
	require.NoError(t, res.Audit())
}

func TestBlockLimit(t *testing.T) {
	p := fastParams()
	p.EmissionDivisor = 1000
	p.ReportInterval = 3
	p.MaxBlocks = 10

	res, err := Simulate(p)
	require.NoError(t, err)
	require.Equal(t, BlockLimit, res.StopReason)
	require.Equal(t, uint64(10), res.Blocks)

	var blocks []uint64
	for _, row := range res.Rows {
		blocks = append(blocks, row.Block)
	}
	require.Equal(t, []uint64{3, 6, 9, 10}, blocks)
	require.Less(t, res.FinalSupply, p.MaxSupply)
	require.Positive(t, res.MinerTotal)
	require.Positive(t, res.TreasuryTotal)
	require.NoError(t, res.Audit())
}

func TestDegenerateStart(t *testing.T) {
	for _, initial := range []float64{1000, 1500} {
		p := fastParams()
		p.InitialSupply = initial

		res, err := Simulate(p)
		require.NoError(t, err)
		require.Equal(t, NoRemainingSupply, res.StopReason)
		require.Zero(t, res.Blocks)
		require.Empty(t, res.Rows)
		require.Zero(t, res.Initial.Reward.Total)
		require.Zero(t, res.Initial.Reward.Treasury)
		require.Zero(t, res.Initial.Reward.Miner)
		require.Zero(t, res.MinerTotal)
		require.Zero(t, res.TreasuryTotal)
		require.Zero(t, res.MinerShare())
		require.Zero(t, res.TreasuryShare())
		require.Equal(t, initial, res.FinalSupply)
		require.Zero(t, p.Available())
		require.NoError(t, res.Audit())
	}
}

func TestInitialRowIsPreviewOnly(t *testing.T) {
	res, err := Simulate(fastParams())
	require.NoError(t, err)

	require.Zero(t, res.Initial.Block)
	require.Equal(t, 0.0, res.Initial.Supply)
	require.Equal(t, 100.0, res.Initial.Reward.Total)
	require.Equal(t, 1000.0, res.Initial.Remaining)

	// The preview reward is the first block's reward, counted once
	s, err := NewSimulator(fastParams())
	require.NoError(t, err)
	first, _ := s.Step()
	require.Equal(t, res.Initial.Reward, first)
}

func TestSimulationIsIdempotent(t *testing.T) {
	a, err := Simulate(fastParams())
	require.NoError(t, err)
	b, err := Simulate(fastParams())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRunTwiceReturnsSameResult(t *testing.T) {
	s, err := NewSimulator(fastParams())
	require.NoError(t, err)
	a := s.Run()
	b := s.Run()
	require.Equal(t, a, b)
	require.Equal(t, RewardBelowThreshold, s.Stopped())
}

func TestBatchRespectsBudget(t *testing.T) {
	p := fastParams()
	p.EmissionDivisor = 1000
	p.ReportInterval = 4
	p.MaxBlocks = 6
	s, err := NewSimulator(p)
	require.NoError(t, err)

	require.Equal(t, uint64(4), s.Batch().Block)
	require.Equal(t, uint64(6), s.Batch().Block)
	require.Equal(t, uint64(6), s.Batch().Block)
}

func TestDefaultRun(t *testing.T) {
	if testing.Short() {
		t.Skip("Runs 120M blocks")
	}

	res, err := Simulate(DefaultParameters())
	require.NoError(t, err)
	require.Equal(t, BlockLimit, res.StopReason)
	require.Equal(t, uint64(120_000_000), res.Blocks)
	require.Len(t, res.Rows, 120)
	require.InDelta(t, 20_847_159.844, res.FinalSupply, 1e-2)
	require.InDelta(t, 50, res.MinerShare(), 1e-9)
	require.InDelta(t, 50, res.TreasuryShare(), 1e-9)
	require.NoError(t, res.Audit())
}
