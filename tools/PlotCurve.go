// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"flag"

	"github.com/cpmech/gosl/io"

	"github.com/dgupta599/OpenPNM/out"
)

func main() {

	// input data
	simfn := "data/drain01.sim"

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		simfn = flag.Arg(0)
	}

	// check extension
	if io.FnExt(simfn) == "" {
		simfn += ".sim"
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  simfn = %30s // simulation filename\n", simfn)
	io.Pf("\n")

	// run simulation
	out.Start(simfn, false)

	// drainage curve
	c, err := out.Op.SatCurve()
	if err != nil {
		io.PfRed("cannot compute drainage curve:\n%v\n", err)
		return
	}

	// save table
	err = out.SaveCurve(out.Sim.DirOut, out.Sim.Key, c, true)
	if err != nil {
		io.PfRed("cannot save curve:\n%v\n", err)
		return
	}

	// show figure
	out.PlotCurve(c, "", out.Sim.Key)
	out.PlotEnd(true)
}
