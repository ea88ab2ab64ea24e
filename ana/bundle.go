// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

// BundleOfTubes represents a bundle of independent parallel capillary
// tubes, each with its own entry pressure and volume. A tube fills as soon
// as the applied capillary pressure exceeds its entry pressure, regardless
// of all other tubes; drainage of the bundle therefore has a closed-form
// solution useful for verifying network sweeps on disjoint topologies.
type BundleOfTubes struct {
	PcEntry []float64 // entry pressure of each tube
	V       []float64 // volume of each tube
}

// Invade returns the invasion pressure of each tube under the stepwise
// pressure program pcpoints (ascending): the first applied value strictly
// above the tube entry pressure, or 0 when the program never exceeds it.
func (o BundleOfTubes) Invade(pcpoints []float64) (pcinv []float64) {
	pcinv = make([]float64, len(o.PcEntry))
	for i, pe := range o.PcEntry {
		for _, pc := range pcpoints {
			if pe < pc {
				pcinv[i] = pc
				break
			}
		}
	}
	return
}

// Snw returns the non-wetting saturation of the bundle at the applied
// pressure pc, given the invasion pressures of the tubes: the volume
// fraction of tubes invaded strictly below pc.
func (o BundleOfTubes) Snw(pcinv []float64, pc float64) float64 {
	var v, vtot float64
	for i, vi := range o.V {
		vtot += vi
		if pcinv[i] != 0 && pcinv[i] < pc {
			v += vi
		}
	}
	if vtot <= 0 {
		return 0
	}
	return v / vtot
}
