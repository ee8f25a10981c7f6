// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package emission

// StopReason records why a simulation stopped.
type StopReason int

const (
	// Running means the simulation has not stopped.
	Running StopReason = iota

	// SupplyReached means supply reached the maximum.
	SupplyReached

	// RewardBelowThreshold means the next block reward fell below the minimum
	// reward threshold.
	RewardBelowThreshold

	// BlockLimit means the block budget was exhausted before convergence.
	BlockLimit

	// NoRemainingSupply means the initial supply was already at or above the
	// maximum, so no block was processed.
	NoRemainingSupply
)

var stopReasonNames = [...]string{
	Running:              "running",
	SupplyReached:        "max supply reached",
	RewardBelowThreshold: "reward below threshold",
	BlockLimit:           "block limit reached",
	NoRemainingSupply:    "no remaining supply",
}

func (r StopReason) String() string {
	if r < 0 || int(r) >= len(stopReasonNames) {
		return "unknown"
	}
	return stopReasonNames[r]
}
