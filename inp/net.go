// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const Ztol = 1e-7

// Pore holds pore data
type Pore struct {
	Id  int       // id; must be sequential
	Num int       // external number; must be unique
	Tag int       // boundary type tag; 0 means internal, 1..6 means boundary face
	C   []float64 // coordinates of pore centre (size==2 or 3)
	V   float64   // volume of pore body
}

// Throat holds throat data
type Throat struct {
	Id      int     // id; must be sequential
	Con     []int   // ids of the two connected pores
	D       float64 // throat diameter
	PcEntry float64 // capillary entry pressure
}

// Network holds a pore network
type Network struct {

	// input
	Desc    string    // description
	Pores   []*Pore   // pores
	Throats []*Throat // throats

	// derived
	FnamePath    string  // complete filename path
	Ndim         int     // space dimension
	Xmin, Xmax   float64 // min and max x-coordinate
	Ymin, Ymax   float64 // min and max y-coordinate
	Zmin, Zmax   float64 // min and max z-coordinate
	PcMin, PcMax float64 // min and max throat entry pressure

	// derived: maps
	Num2idx   map[int]int     // external pore number => index in Pores
	Tag2pores map[int][]*Pore // boundary tag => set of pores
}

// NewNetwork returns a network made of pores and throats, with derived data computed.
// Throats may be empty; structural consistency of ids, connections and numbering
// is checked here, whereas percolation preconditions are checked by the algorithm.
func NewNetwork(desc string, pores []*Pore, throats []*Throat) (o *Network, err error) {
	o = &Network{Desc: desc, Pores: pores, Throats: throats}
	err = o.derive()
	if err != nil {
		return nil, err
	}
	return
}

// ReadNet reads a pore network from a .net JSON file
func ReadNet(dir, fn string) (o *Network, err error) {

	// new network
	o = new(Network)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read network file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal network file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.derive()
	if err != nil {
		return nil, chk.Err("network file %q is invalid:\n%v", o.FnamePath, err)
	}
	return
}

// derive computes derived data and checks structural consistency
func (o *Network) derive() (err error) {

	// check
	if len(o.Pores) < 1 {
		return chk.Err("at least one pore is required")
	}

	// pore related derived data
	o.Ndim = 2
	o.Num2idx = make(map[int]int)
	o.Tag2pores = make(map[int][]*Pore)
	for i, p := range o.Pores {

		// check id and number
		if p.Id != i {
			return chk.Err("pore ids must be sequential. pore %d must have id=%d", p.Id, i)
		}
		if _, ok := o.Num2idx[p.Num]; ok {
			return chk.Err("pore numbers must be unique. num=%d is repeated", p.Num)
		}
		o.Num2idx[p.Num] = i

		// ndim
		nd := len(p.C)
		if nd < 2 || nd > 3 {
			return chk.Err("pore %d must have 2 or 3 coordinates. nd=%d is invalid", p.Id, nd)
		}
		if nd == 3 {
			if math.Abs(p.C[2]) > Ztol {
				o.Ndim = 3
			}
		}

		// tags
		if p.Tag != 0 {
			pores := o.Tag2pores[p.Tag]
			o.Tag2pores[p.Tag] = append(pores, p)
		}

		// limits
		if i == 0 {
			o.Xmin = p.C[0]
			o.Xmax = p.C[0]
			o.Ymin = p.C[1]
			o.Ymax = p.C[1]
			if nd > 2 {
				o.Zmin = p.C[2]
				o.Zmax = p.C[2]
			}
		}
		o.Xmin = utl.Min(o.Xmin, p.C[0])
		o.Xmax = utl.Max(o.Xmax, p.C[0])
		o.Ymin = utl.Min(o.Ymin, p.C[1])
		o.Ymax = utl.Max(o.Ymax, p.C[1])
		if nd > 2 {
			o.Zmin = utl.Min(o.Zmin, p.C[2])
			o.Zmax = utl.Max(o.Zmax, p.C[2])
		}
	}

	// throat related derived data
	for i, t := range o.Throats {
		if t.Id != i {
			return chk.Err("throat ids must be sequential. throat %d must have id=%d", t.Id, i)
		}
		if len(t.Con) != 2 {
			return chk.Err("throat %d must connect exactly two pores. ncon=%d is invalid", t.Id, len(t.Con))
		}
		if i == 0 {
			o.PcMin = t.PcEntry
			o.PcMax = t.PcEntry
		}
		o.PcMin = utl.Min(o.PcMin, t.PcEntry)
		o.PcMax = utl.Max(o.PcMax, t.PcEntry)
	}
	return
}

// Npores returns the number of pores
func (o *Network) Npores() int { return len(o.Pores) }

// Nthroats returns the number of throats
func (o *Network) Nthroats() int { return len(o.Throats) }

// ThroatPores returns the ids of the two pores connected by throat t
func (o *Network) ThroatPores(t int) (p0, p1 int) {
	return o.Throats[t].Con[0], o.Throats[t].Con[1]
}

// ThroatPcEntry returns the capillary entry pressure of throat t
func (o *Network) ThroatPcEntry(t int) float64 { return o.Throats[t].PcEntry }

// PoreVol returns the body volume of pore p
func (o *Network) PoreVol(p int) float64 { return o.Pores[p].V }

// PoreTag returns the boundary type tag of pore p
func (o *Network) PoreTag(p int) int { return o.Pores[p].Tag }

// PoreIndex returns the index of the pore with external number num.
// It returns -1 if num is unknown.
func (o *Network) PoreIndex(num int) int {
	if i, ok := o.Num2idx[num]; ok {
		return i
	}
	return -1
}

// String returns a JSON representation of *Pore
func (o *Pore) String() string {
	l := io.Sf("{\"id\":%4d, \"num\":%4d, \"tag\":%2d, \"c\":[", o.Id, o.Num, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += io.Sf("], \"v\":%23.15e }", o.V)
	return l
}

// String returns a JSON representation of *Throat
func (o *Throat) String() string {
	return io.Sf("{\"id\":%4d, \"con\":[%d, %d], \"d\":%23.15e, \"pcentry\":%23.15e }", o.Id, o.Con[0], o.Con[1], o.D, o.PcEntry)
}

// String returns a JSON representation of Network
func (o Network) String() string {
	l := io.Sf("{\n  \"desc\" : %q,\n  \"pores\" : [\n", o.Desc)
	for i, p := range o.Pores {
		if i > 0 {
			l += ",\n"
		}
		l += "    " + p.String()
	}
	l += "\n  ],\n  \"throats\" : [\n"
	for i, t := range o.Throats {
		if i > 0 {
			l += ",\n"
		}
		l += "    " + t.String()
	}
	l += "\n  ]\n}"
	return l
}

// WriteNet writes a network to a .net JSON file in dirout
func (o Network) WriteNet(dirout, fn string) {
	var buf bytes.Buffer
	io.Ff(&buf, "%v\n", o.String())
	io.WriteFileVD(dirout, fn, &buf)
}
