// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.net) JSON files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Netfile string `json:"netfile"` // network file path, relative to the .sim directory
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/opnm
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
}

// OPData holds ordinary percolation data
type OPData struct {
	Npts     int   `json:"npts"`     // number of applied pressure points
	InvFaces []int `json:"invfaces"` // boundary tags of faces acting as the invasion source
	InvSites []int `json:"invsites"` // external numbers of pores acting as the invasion source
}

// SetDefault sets default values
func (o *OPData) SetDefault() {
	o.Npts = 25
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data   `json:"data"` // stores global simulation data
	OP   OPData `json:"op"`   // stores ordinary percolation data

	// derived
	Dir     string   // directory of the .sim file
	DirOut  string   // directory to save results
	Key     string   // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string   // encoder type
	Net     *Network // pore network read from Data.Netfile
}

// ReadSim reads all simulation data from a .sim JSON file, including the network
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.OP.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	o.Dir = os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/opnm/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// read network
	if o.Data.Netfile == "" {
		return nil, chk.Err("ReadSim: netfile must be specified in %q", simfilepath)
	}
	o.Net, err = ReadNet(o.Dir, o.Data.Netfile)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read network file:\n%v", err)
	}
	return
}
