// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package emission

// CurvePoint is the instantaneous reward at a point of emission progress.
type CurvePoint struct {
	Fraction     float64 // Fraction of the emittable supply already emitted
	TargetSupply float64
	Remaining    float64
	Reward       float64
}

// AnalyzeCurve computes the reward at each checkpoint, in the order given.
// Checkpoints are not sorted or deduplicated.
func AnalyzeCurve(p CurveParameters) []CurvePoint {
	points := make([]CurvePoint, 0, len(p.Checkpoints))
	for _, f := range p.Checkpoints {
		target := p.InitialSupply + (p.MaxSupply-p.InitialSupply)*f
		points = append(points, CurvePoint{
			Fraction:     f,
			TargetSupply: target,
			Remaining:    p.MaxSupply - target,
			Reward:       BlockReward(p.MaxSupply, target, p.EmissionDivisor),
		})
	}
	return points
}
