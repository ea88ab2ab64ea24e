// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcap

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Purcell implements the toroidal throat model for entry pressure after
// Purcell and Mason & Morrow. The meniscus advances over a solid torus of
// radius Rfib around the throat; the entry pressure is the maximum pressure
// reached during the passage:
//  α  = θ - 180 + asin( sin(θ) / (1 + Rfib/r) )
//  pc = (-2 σ / r) cos(θ-α) / (1 + (Rfib/r)(1 - cos(α)))
// with r the throat radius and θ the contact angle measured through the
// wetting phase.
type Purcell struct {
	Sigma float64 // surface tension
	Theta float64 // contact angle [degrees]
	Rfib  float64 // radius of the solid torus (fibre)
}

// add model to factory
func init() {
	allocators["purcell"] = func() Model { return new(Purcell) }
}

// Init initialises model
func (o *Purcell) Init(prms fun.Prms) (err error) {

	// default values
	o.Sigma = 0.0728
	o.Theta = 110.0
	o.Rfib = 1e-5

	// parse parameters
	for _, p := range prms {
		switch p.N {
		case "sigma":
			o.Sigma = p.V
		case "theta":
			o.Theta = p.V
		case "rfib":
			o.Rfib = p.V
		default:
			return chk.Err("purcell: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.Sigma <= 0 {
		return chk.Err("purcell: sigma must be positive. sigma=%g is invalid", o.Sigma)
	}
	if o.Theta <= 90 || o.Theta >= 180 {
		return chk.Err("purcell: theta must be within (90, 180) degrees. theta=%g is invalid", o.Theta)
	}
	if o.Rfib <= 0 {
		return chk.Err("purcell: rfib must be positive. rfib=%g is invalid", o.Rfib)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Purcell) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "sigma", V: 0.0728},
		&fun.Prm{N: "theta", V: 110},
		&fun.Prm{N: "rfib", V: 1e-5},
	}
}

// PcEntry returns the entry pressure of a throat with diameter d
func (o Purcell) PcEntry(d float64) float64 {
	r := d / 2.0
	θ := o.Theta * math.Pi / 180.0
	α := θ - math.Pi + math.Asin(math.Sin(θ)/(1.0+o.Rfib/r))
	den := 1.0 + (o.Rfib/r)*(1.0-math.Cos(α))
	return -2.0 * o.Sigma * math.Cos(θ-α) / (r * den)
}
