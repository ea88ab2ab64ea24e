// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/dgupta599/OpenPNM/inp"
	"github.com/dgupta599/OpenPNM/out"
	"github.com/dgupta599/OpenPNM/perc"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nOpenPNM -- Pore Network Modelling\n\n")
		io.Pf("Copyright 2016 The OpenPNM Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"word to add to results", "alias", alias,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// read simulation and network data
	sim, err := inp.ReadSim(fnamepath, alias, erasePrev)
	if err != nil {
		chk.Panic("ReadSim failed:\n%v", err)
	}

	// allocate percolation driver
	op, err := perc.New(sim.Net, sim.OP.Npts, sim.OP.InvFaces, sim.OP.InvSites)
	if err != nil {
		chk.Panic("cannot allocate percolation driver:\n%v", err)
	}
	op.Verbose = verbose

	// run drainage sweep
	op.Run()

	// drainage curve
	curve, err := op.SatCurve()
	if err != nil {
		chk.Panic("cannot compute drainage curve:\n%v", err)
	}

	// save results
	err = out.SaveRecord(sim.DirOut, sim.Key, sim.EncType, op, verbose)
	if err != nil {
		chk.Panic("cannot save invasion record:\n%v", err)
	}
	err = out.SaveCurve(sim.DirOut, sim.Key, curve, verbose)
	if err != nil {
		chk.Panic("cannot save drainage curve:\n%v", err)
	}
}
