// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package emission

// Reward is a block reward and its split between treasury and miner.
// Treasury + Miner equals Total, up to floating point rounding.
type Reward struct {
	Total    float64
	Treasury float64
	Miner    float64
}

// BlockReward returns the reward for a block mined on top of the given supply.
// The reward is zero once nothing remains to be issued.
func BlockReward(maxSupply, currentSupply, divisor float64) float64 {
	remaining := maxSupply - currentSupply
	if remaining <= 0 {
		return 0
	}
	return remaining / divisor
}

// SplitReward splits a reward between treasury and miner.
func SplitReward(total, treasuryPortion float64) Reward {
	return Reward{
		Total:    total,
		Treasury: total * treasuryPortion,
		Miner:    total * (1 - treasuryPortion),
	}
}

// RewardAt returns the split reward of a block mined on top of the given
// supply.
func (p Parameters) RewardAt(supply float64) Reward {
	return SplitReward(BlockReward(p.MaxSupply, supply, p.EmissionDivisor), p.TreasuryPortion)
}
