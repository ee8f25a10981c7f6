// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

/*
Package emission models a deterministic block reward emission schedule.

Each block emits a reward proportional to the supply that has not been issued
yet:

	reward = (max_supply - current_supply) / emission_divisor

The reward is split between a treasury and the block producer according to
the treasury portion. Since the reward shrinks with the remaining gap, supply
only converges toward the maximum in the limit.

The [Simulator] steps the schedule block by block, batching blocks into
reporting rows and stopping when supply is exhausted, when the next reward
falls below a threshold, or when the block budget runs out. [AnalyzeCurve]
computes the instantaneous reward at fixed points of emission progress in
closed form.

Neither component prints anything; rendering is left to the caller.
*/
package emission
