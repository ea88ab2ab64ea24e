// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perc implements quasi-static percolation algorithms over pore networks
package perc

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// run status
const (
	Idle = iota
	Stepping
	Done
)

// invasion modes
const (
	flood = iota
	faces
	sites
)

// OP implements the quasi-static ordinary percolation (drainage) algorithm.
//
// A sequence of increasing capillary pressures is applied to the network.
// At each pressure a throat is penetrable iff its entry pressure is strictly
// below the applied value; clusters of pores joined by penetrable throats
// are labeled; clusters containing a source pore become invaded; each pore
// records the first (lowest) pressure at which it was invaded. Displacement
// is quasi-static and the defending phase is never trapped.
type OP struct {

	// input
	Net      Network // pore network accessor
	Npts     int     // number of applied pressure points
	InvFaces []int   // boundary tags of faces acting as the invasion source
	InvSites []int   // external numbers of pores acting as the invasion source
	Verbose  bool    // print applied pressures during the sweep

	// derived
	PcPoints []float64 // applied pressure schedule, ascending
	mode     int       // invasion mode: flood, faces or sites
	invsrc   []bool    // pore belongs to the invasion source (faces and sites modes)

	// results
	PcInvaded []float64 // first invasion pressure of each pore; 0 means never invaded

	// workspace
	status  int     // current run status
	open    []bool  // penetrability flags of throats
	adj     [][]int // pore adjacency restricted to open throats
	labels  []int   // cluster labels, 1 to nc
	reached []bool  // cluster contains a source pore
	inv     []bool  // pore is invaded at the current pressure
}

// New returns a ready-to-run ordinary percolation driver. The invasion source
// is given either by invFaces (boundary tags) or by invSites (external pore
// numbers); with both empty, every endpoint of a penetrable throat is invaded
// (flooding). Configuration and network data are fully checked here, before
// any sweep; thus Run cannot fail.
func New(net Network, npts int, invFaces, invSites []int) (o *OP, err error) {

	// check configuration
	if npts < 1 {
		return nil, cfgerr("number of pressure points must be positive. npts=%d is invalid", npts)
	}
	nt := net.Nthroats()
	if nt < 1 {
		return nil, cfgerr("network without throats cannot provide a pressure schedule")
	}
	if len(invFaces) > 0 && len(invSites) > 0 {
		return nil, cfgerr("invasion faces and invasion sites cannot be combined. choose one source kind")
	}

	// check network data
	np := net.Npores()
	for t := 0; t < nt; t++ {
		p0, p1 := net.ThroatPores(t)
		if p0 < 0 || p0 >= np || p1 < 0 || p1 >= np {
			return nil, dataerr("throat %d connects unknown pores: con=[%d, %d] with np=%d", t, p0, p1, np)
		}
		if net.ThroatPcEntry(t) < 0 {
			return nil, dataerr("throat %d has negative entry pressure. pcentry=%g is invalid", t, net.ThroatPcEntry(t))
		}
	}
	for p := 0; p < np; p++ {
		if net.PoreVol(p) < 0 {
			return nil, dataerr("pore %d has negative volume. v=%g is invalid", p, net.PoreVol(p))
		}
	}

	// new driver
	o = &OP{Net: net, Npts: npts, InvFaces: invFaces, InvSites: invSites}

	// pressure schedule
	pcmin := net.ThroatPcEntry(0)
	pcmax := pcmin
	for t := 1; t < nt; t++ {
		pcmin = utl.Min(pcmin, net.ThroatPcEntry(t))
		pcmax = utl.Max(pcmax, net.ThroatPcEntry(t))
	}
	if pcmax > pcmin {
		o.PcPoints = utl.LinSpace(pcmin, pcmax, npts)
	} else {
		o.PcPoints = []float64{pcmin} // uniform entry pressures collapse the schedule
	}

	// invasion source
	o.mode = flood
	switch {
	case len(invFaces) > 0:
		o.mode = faces
		o.invsrc = make([]bool, np)
		for p := 0; p < np; p++ {
			tag := net.PoreTag(p)
			for _, ftag := range invFaces {
				if tag == ftag {
					o.invsrc[p] = true
				}
			}
		}
	case len(invSites) > 0:
		o.mode = sites
		o.invsrc = make([]bool, np)
		for _, num := range invSites {
			p := net.PoreIndex(num)
			if p < 0 {
				return nil, cfgerr("invasion site %d does not exist in the network", num)
			}
			o.invsrc[p] = true
		}
	}

	// results and workspace
	o.PcInvaded = make([]float64, np)
	o.open = make([]bool, nt)
	o.adj = make([][]int, np)
	o.labels = make([]int, np)
	o.reached = make([]bool, np+1)
	o.inv = make([]bool, np)
	return
}

// Run performs the full pressure sweep. The invasion record is reset first,
// so calling Run again repeats the whole analysis from scratch.
func (o *OP) Run() {

	// fresh record
	la.VecFill(o.PcInvaded, 0)
	o.status = Stepping

	// single pass over the ascending schedule; the record is write-once so
	// each pore keeps the first pressure at which it was invaded
	for _, pc := range o.PcPoints {
		if o.Verbose {
			io.Pf("applying pc = %g\n", pc)
		}
		o.step(pc)
		for p, isinv := range o.inv {
			if isinv && o.PcInvaded[p] == 0 {
				o.PcInvaded[p] = pc
			}
		}
		// TODO: record throat invasion pressures too; needs a per-throat
		//       record with the same write-once rule
	}
	o.status = Done
}

// Status returns the current run status: Idle, Stepping or Done
func (o *OP) Status() int { return o.status }

// step computes the pores invaded at the applied pressure pc. Penetrability
// flags, adjacency and labels are rebuilt from scratch; a throat whose entry
// pressure equals pc stays closed.
func (o *OP) step(pc float64) {

	// penetrability flags
	nt := o.Net.Nthroats()
	for t := 0; t < nt; t++ {
		o.open[t] = o.Net.ThroatPcEntry(t) < pc
	}

	// flooding: invaded pores are exactly the endpoints of open throats
	np := o.Net.Npores()
	for p := 0; p < np; p++ {
		o.inv[p] = false
	}
	if o.mode == flood {
		for t := 0; t < nt; t++ {
			if o.open[t] {
				p0, p1 := o.Net.ThroatPores(t)
				o.inv[p0] = true
				o.inv[p1] = true
			}
		}
		return
	}

	// clusters restricted to open throats
	o.joinOpen()
	nc := components(o.adj, o.labels)

	// a cluster is invaded iff it contains a source pore; an isolated source
	// pore forms a singleton cluster and thus invades itself
	for c := 0; c <= nc; c++ {
		o.reached[c] = false
	}
	for p := 0; p < np; p++ {
		if o.invsrc[p] {
			o.reached[o.labels[p]] = true
		}
	}
	for p := 0; p < np; p++ {
		o.inv[p] = o.reached[o.labels[p]]
	}
}
