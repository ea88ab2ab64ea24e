// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"flag"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/dgupta599/OpenPNM/mcap"
)

func main() {

	// input data
	dmin := 1e-5
	dmax := 1e-4
	npts := 101

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		dmin = io.Atof(flag.Arg(0))
	}
	if len(flag.Args()) > 1 {
		dmax = io.Atof(flag.Arg(1))
	}
	if len(flag.Args()) > 2 {
		npts = io.Atoi(flag.Arg(2))
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  dmin = %30v // min throat diameter\n", dmin)
	io.Pf("  dmax = %30v // max throat diameter\n", dmax)
	io.Pf("  npts = %30v // number of points\n", npts)
	io.Pf("\n")

	// models
	D := utl.LinSpace(dmin, dmax, npts)
	for _, mdlname := range []string{"washburn", "purcell"} {

		// get and initialise model
		mdl := mcap.GetModel("plotentry", "water-air", mdlname, false)
		if mdl == nil {
			io.PfRed("cannot allocate model %q\n", mdlname)
			return
		}
		err := mdl.Init(mdl.GetPrms())
		if err != nil {
			io.PfRed("cannot initialise model %q:\n%v\n", mdlname, err)
			return
		}

		// entry pressure sweep
		Pc := make([]float64, npts)
		for i, d := range D {
			Pc[i] = mdl.PcEntry(d)
		}
		plt.Plot(D, Pc, io.Sf("label='%s', clip_on=0", mdlname))
	}

	// show figure
	plt.Cross()
	plt.Gll("$d$", "$p_c^{entry}$", "")
	plt.Show()
}
