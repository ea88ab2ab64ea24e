// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcap

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Washburn implements the Washburn equation for the entry pressure of a
// cylindrical throat:
//  pc = -4 σ cos(θ) / d
// where θ is the contact angle measured through the wetting phase; θ > 90
// yields positive entry pressures for the invading non-wetting phase.
type Washburn struct {
	Sigma float64 // surface tension
	Theta float64 // contact angle [degrees]

	// derived
	cost float64 // cos(Theta)
}

// add model to factory
func init() {
	allocators["washburn"] = func() Model { return new(Washburn) }
}

// Init initialises model
func (o *Washburn) Init(prms fun.Prms) (err error) {

	// default values
	o.Sigma = 0.0728
	o.Theta = 110.0

	// parse parameters
	for _, p := range prms {
		switch p.N {
		case "sigma":
			o.Sigma = p.V
		case "theta":
			o.Theta = p.V
		default:
			return chk.Err("washburn: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.Sigma <= 0 {
		return chk.Err("washburn: sigma must be positive. sigma=%g is invalid", o.Sigma)
	}
	if o.Theta <= 90 || o.Theta >= 180 {
		return chk.Err("washburn: theta must be within (90, 180) degrees. theta=%g is invalid", o.Theta)
	}

	// derived
	o.cost = math.Cos(o.Theta * math.Pi / 180.0)
	return
}

// GetPrms gets (an example) of parameters
func (o Washburn) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "sigma", V: 0.0728},
		&fun.Prm{N: "theta", V: 110},
	}
}

// PcEntry returns the entry pressure of a throat with diameter d
func (o Washburn) PcEntry(d float64) float64 {
	return -4.0 * o.Sigma * o.cost / d
}
