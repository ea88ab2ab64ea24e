// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Curve holds a capillary pressure versus saturation curve
type Curve struct {
	Pc []float64 // applied capillary pressure values, ascending
	Sn []float64 // non-wetting phase saturation
}

// SatCurve computes the volume-weighted drainage curve from the invasion
// record. Only internal pores (tag 0) contribute to the saturations. The
// curve pressures are the distinct values stored in the record; at each of
// them the saturation counts the volume of internal pores invaded strictly
// below that pressure, hence the first point always has zero saturation.
// Pores never invaded (sentinel 0) contribute no volume.
func (o *OP) SatCurve() (c *Curve, err error) {

	// check
	if o.status != Done {
		return nil, chk.Err("invasion record is only available after a completed run")
	}

	// total volume of internal pores
	np := o.Net.Npores()
	var vtot float64
	for p := 0; p < np; p++ {
		if o.Net.PoreTag(p) == 0 {
			vtot += o.Net.PoreVol(p)
		}
	}
	if vtot <= 0 {
		return nil, chk.Err("network has no internal pore volume. saturation curve is undefined")
	}

	// distinct invasion pressures
	vals := make([]float64, np)
	copy(vals, o.PcInvaded)
	sort.Float64s(vals)
	c = new(Curve)
	for i, v := range vals {
		if i == 0 || v != vals[i-1] {
			c.Pc = append(c.Pc, v)
		}
	}

	// saturations
	c.Sn = make([]float64, len(c.Pc))
	for i := 1; i < len(c.Pc); i++ {
		var v float64
		for p := 0; p < np; p++ {
			if o.Net.PoreTag(p) != 0 {
				continue
			}
			if o.PcInvaded[p] != 0 && o.PcInvaded[p] < c.Pc[i] {
				v += o.Net.PoreVol(p)
			}
		}
		c.Sn[i] = v / vtot
	}
	return
}
