// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dgupta599/OpenPNM/perc"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_fileio01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio01. save and read record")

	// run simulation
	Start("data/drain01.sim", true)
	chk.IntAssert(Op.Status(), perc.Done)
	io.Pforan("pcpoints  = %v\n", Op.PcPoints)
	io.Pforan("pcinvaded = %v\n", Op.PcInvaded)
	chk.Vector(tst, "pcinvaded", 1e-15, Op.PcInvaded, []float64{1, 2, 3, 4, 5, 0})

	// save and re-read with both encoders
	for _, enctype := range []string{"gob", "json"} {

		// write file
		err := SaveRecord(Sim.DirOut, Sim.Key, enctype, Op, chk.Verbose)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}

		// read file
		pcpoints, pcinvaded, err := ReadRecord(Sim.DirOut, Sim.Key, enctype)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}

		// check
		io.Pfpink("%s: pcpoints  = %v\n", enctype, pcpoints)
		io.Pfpink("%s: pcinvaded = %v\n", enctype, pcinvaded)
		chk.Vector(tst, io.Sf("%s: pcpoints", enctype), 1e-17, pcpoints, Op.PcPoints)
		chk.Vector(tst, io.Sf("%s: pcinvaded", enctype), 1e-17, pcinvaded, Op.PcInvaded)
	}

	// missing file
	_, _, err := ReadRecord(Sim.DirOut, "nonexistent", "gob")
	if err == nil {
		tst.Errorf("error expected for missing record file\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// corrupt file
	var junk bytes.Buffer
	io.Ff(&junk, "this is not an invasion record\n")
	io.WriteFileVD(Sim.DirOut, "corrupt_rec.gob", &junk)
	_, _, err = ReadRecord(Sim.DirOut, "corrupt", "gob")
	if err == nil {
		tst.Errorf("error expected for corrupt record file\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)
}

func Test_fileio02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio02. save curve table")

	// run simulation
	Start("data/drain01.sim", true)

	// curve
	c, err := Op.SatCurve()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("pc = %v\n", c.Pc)
	io.Pforan("sn = %v\n", c.Sn)
	chk.Vector(tst, "pc", 1e-17, c.Pc, []float64{0, 1, 2, 3, 4, 5})
	chk.Vector(tst, "sn", 1e-17, c.Sn, []float64{0, 0, 0, 0.25, 0.5, 0.75})

	// write table
	err = SaveCurve(Sim.DirOut, Sim.Key, c, chk.Verbose)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// read table
	_, res, err := io.ReadTable(io.Sf("%s/%s_curve.dat", Sim.DirOut, Sim.Key))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Vector(tst, "table: pc", 1e-15, res["pc"], c.Pc)
	chk.Vector(tst, "table: sn", 1e-15, res["sn"], c.Sn)
}
