// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gen implements pore network generators
package gen

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dgupta599/OpenPNM/inp"
	"github.com/dgupta599/OpenPNM/mcap"
)

// boundary tags of cubic lattice networks
const (
	Left   = 1 // x == 0 face
	Right  = 2 // x == (nx-1)*l face
	Front  = 3 // y == 0 face
	Back   = 4 // y == (ny-1)*l face
	Bottom = 5 // z == 0 face
	Top    = 6 // z == (nz-1)*l face
)

// Cubic generates a regular lattice network with nx*ny*nz pores, spacing l
// and 6-neighbour connectivity. Pores on the lattice boundary are tagged
// Left to Top (edge and corner pores take the first matching tag) and carry
// no volume; internal pores are tagged 0 and their volumes follow spheres
// with diameters drawn within [0.5, 0.9]l. Throat diameters are drawn
// within [0.2, 0.6]l and their entry pressures follow the mcap model. All
// draws use a local random source, so equal seeds reproduce equal networks.
func Cubic(nx, ny, nz int, l float64, seed int, mdl mcap.Model) (net *inp.Network, err error) {

	// check
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("lattice dimensions must be positive. nx=%d, ny=%d, nz=%d is invalid", nx, ny, nz)
	}
	if nx*ny*nz < 2 {
		return nil, chk.Err("lattice must have at least two pores")
	}
	if l <= 0 {
		return nil, chk.Err("lattice spacing must be positive. l=%g is invalid", l)
	}
	if mdl == nil {
		return nil, chk.Err("an entry pressure model is required")
	}

	// pores
	rnd := rand.New(rand.NewSource(int64(seed)))
	idx := func(ix, iy, iz int) int { return ix + iy*nx + iz*nx*ny }
	pores := make([]*inp.Pore, nx*ny*nz)
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				i := idx(ix, iy, iz)
				tag := 0
				switch {
				case nx > 1 && ix == 0:
					tag = Left
				case nx > 1 && ix == nx-1:
					tag = Right
				case ny > 1 && iy == 0:
					tag = Front
				case ny > 1 && iy == ny-1:
					tag = Back
				case nz > 1 && iz == 0:
					tag = Bottom
				case nz > 1 && iz == nz-1:
					tag = Top
				}
				var vol float64
				if tag == 0 {
					dp := l * (0.5 + 0.4*rnd.Float64())
					vol = math.Pi * dp * dp * dp / 6.0
				}
				c := []float64{float64(ix) * l, float64(iy) * l, float64(iz) * l}
				pores[i] = &inp.Pore{Id: i, Num: i, Tag: tag, C: c, V: vol}
			}
		}
	}

	// throats
	var throats []*inp.Throat
	add := func(a, b int) {
		dt := l * (0.2 + 0.4*rnd.Float64())
		throats = append(throats, &inp.Throat{Id: len(throats), Con: []int{a, b}, D: dt, PcEntry: mdl.PcEntry(dt)})
	}
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				i := idx(ix, iy, iz)
				if ix+1 < nx {
					add(i, idx(ix+1, iy, iz))
				}
				if iy+1 < ny {
					add(i, idx(ix, iy+1, iz))
				}
				if iz+1 < nz {
					add(i, idx(ix, iy, iz+1))
				}
			}
		}
	}

	// network
	return inp.NewNetwork(io.Sf("cubic %dx%dx%d lattice", nx, ny, nz), pores, throats)
}
