// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_net01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("net01. read network file")

	net, err := ReadNet("data", "net01.net")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", net)

	// sizes and dimension
	chk.IntAssert(net.Npores(), 4)
	chk.IntAssert(net.Nthroats(), 3)
	chk.IntAssert(net.Ndim, 2)

	// limits
	chk.Scalar(tst, "xmin", 1e-17, net.Xmin, 0)
	chk.Scalar(tst, "xmax", 1e-17, net.Xmax, 3)
	chk.Scalar(tst, "ymin", 1e-17, net.Ymin, 0)
	chk.Scalar(tst, "ymax", 1e-17, net.Ymax, 0)
	chk.Scalar(tst, "pcmin", 1e-17, net.PcMin, 1)
	chk.Scalar(tst, "pcmax", 1e-17, net.PcMax, 4)

	// maps
	chk.IntAssert(net.PoreIndex(102), 2)
	chk.IntAssert(net.PoreIndex(999), -1)
	chk.IntAssert(len(net.Tag2pores[1]), 1)
	chk.IntAssert(len(net.Tag2pores[2]), 1)
	chk.IntAssert(net.Tag2pores[2][0].Id, 3)

	// accessors
	p0, p1 := net.ThroatPores(1)
	chk.IntAssert(p0, 1)
	chk.IntAssert(p1, 2)
	chk.Scalar(tst, "pcentry2", 1e-17, net.ThroatPcEntry(2), 4)
	chk.Scalar(tst, "vol1", 1e-17, net.PoreVol(1), 1)
	chk.IntAssert(net.PoreTag(0), 1)
	chk.IntAssert(net.PoreTag(1), 0)
}

func Test_net02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("net02. structural checks")

	// missing file
	_, err := ReadNet("data", "nonexistent.net")
	if err == nil {
		tst.Errorf("test failed: error expected for missing file\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// non sequential pore ids
	_, err = NewNetwork("bad", []*Pore{
		{Id: 0, Num: 0, C: []float64{0, 0}},
		{Id: 2, Num: 1, C: []float64{1, 0}},
	}, nil)
	if err == nil {
		tst.Errorf("test failed: error expected for non sequential ids\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// repeated pore numbers
	_, err = NewNetwork("bad", []*Pore{
		{Id: 0, Num: 7, C: []float64{0, 0}},
		{Id: 1, Num: 7, C: []float64{1, 0}},
	}, nil)
	if err == nil {
		tst.Errorf("test failed: error expected for repeated numbers\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// wrong number of coordinates
	_, err = NewNetwork("bad", []*Pore{
		{Id: 0, Num: 0, C: []float64{0}},
	}, nil)
	if err == nil {
		tst.Errorf("test failed: error expected for wrong ncoords\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// first pore without coordinates
	_, err = NewNetwork("bad", []*Pore{
		{Id: 0, Num: 0},
		{Id: 1, Num: 1, C: []float64{1, 0}},
	}, nil)
	if err == nil {
		tst.Errorf("test failed: error expected for missing coordinates\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// too many coordinates on a later pore
	_, err = NewNetwork("bad", []*Pore{
		{Id: 0, Num: 0, C: []float64{0, 0}},
		{Id: 1, Num: 1, C: []float64{1, 0, 0, 0}},
	}, nil)
	if err == nil {
		tst.Errorf("test failed: error expected for too many coordinates\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// wrong number of connections
	_, err = NewNetwork("bad", []*Pore{
		{Id: 0, Num: 0, C: []float64{0, 0}},
		{Id: 1, Num: 1, C: []float64{1, 0}},
	}, []*Throat{
		{Id: 0, Con: []int{0, 1, 1}, D: 1},
	})
	if err == nil {
		tst.Errorf("test failed: error expected for wrong ncon\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)

	// no pores
	_, err = NewNetwork("bad", nil, nil)
	if err == nil {
		tst.Errorf("test failed: error expected for empty network\n")
		return
	}
	io.Pforan("OK. err = %v\n", err)
}

func Test_net03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("net03. write and re-read network")

	// read
	net, err := ReadNet("data", "net01.net")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// write
	net.WriteNet("/tmp/opnm", "net01cp.net")

	// re-read
	cp, err := ReadNet("/tmp/opnm", "net01cp.net")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// compare
	chk.IntAssert(cp.Npores(), net.Npores())
	chk.IntAssert(cp.Nthroats(), net.Nthroats())
	for i, p := range net.Pores {
		chk.IntAssert(cp.Pores[i].Id, p.Id)
		chk.IntAssert(cp.Pores[i].Num, p.Num)
		chk.IntAssert(cp.Pores[i].Tag, p.Tag)
		chk.Vector(tst, io.Sf("pore%d: c", i), 1e-17, cp.Pores[i].C, p.C)
		chk.Scalar(tst, io.Sf("pore%d: v", i), 1e-17, cp.Pores[i].V, p.V)
	}
	for i, t := range net.Throats {
		chk.IntAssert(cp.Throats[i].Con[0], t.Con[0])
		chk.IntAssert(cp.Throats[i].Con[1], t.Con[1])
		chk.Scalar(tst, io.Sf("throat%d: d", i), 1e-17, cp.Throats[i].D, t.D)
		chk.Scalar(tst, io.Sf("throat%d: pcentry", i), 1e-17, cp.Throats[i].PcEntry, t.PcEntry)
	}
}
