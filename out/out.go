// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling for analyses and plotting
package out

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dgupta599/OpenPNM/inp"
	"github.com/dgupta599/OpenPNM/perc"
)

// Global variables
var (

	// data set by Start
	Sim *inp.Simulation // simulation data read from the .sim file
	Net *inp.Network    // [from Sim] pore network
	Op  *perc.OP        // ordinary percolation driver, already run
)

// Start runs the drainage analysis given a simulation input file. It reads
// the simulation and network data, builds the ordinary percolation driver
// and performs the pressure sweep. Results become available through the
// global variables and the Save and Plot functions.
func Start(simfnpath string, erasePrev bool) {

	// read input
	var err error
	Sim, err = inp.ReadSim(simfnpath, "", erasePrev)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	Net = Sim.Net

	// allocate driver and sweep
	Op, err = perc.New(Net, Sim.OP.Npts, Sim.OP.InvFaces, Sim.OP.InvSites)
	if err != nil {
		chk.Panic("cannot allocate percolation driver:\n%v", err)
	}
	Op.Run()
}
