// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/dgupta599/OpenPNM/inp"
	"github.com/dgupta599/OpenPNM/out"
)

// global variables
var (
	ndim      int           // space dimension
	pores     []*inp.Pore   // all pores
	throats   []*inp.Throat // all throats
	pcinvaded []float64     // invasion record; empty if no record is given
	dirout    string        // directory for output
	fnkey     string        // filename key
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	var netfn string
	netfn, fnkey = io.ArgToFilename(0, "data/net01", ".net", true)
	recdir := io.ArgToString(1, "")
	reckey := io.ArgToString(2, fnkey)
	enctype := io.ArgToString(3, "gob")
	io.Pf("\n%s\n", io.ArgsTable(
		"network filename", "netfn", netfn,
		"directory with saved record", "recdir", recdir,
		"record filename key", "reckey", reckey,
		"encoder type", "enctype", enctype,
	))

	// read network
	net, err := inp.ReadNet("", netfn)
	if err != nil {
		io.PfRed("cannot read network:\n%v\n", err)
		return
	}
	ndim = net.Ndim
	pores = net.Pores
	throats = net.Throats
	dirout = "/tmp/opnm"

	// read invasion record
	if recdir != "" {
		_, pcinvaded, err = out.ReadRecord(recdir, reckey, enctype)
		if err != nil {
			io.PfRed("cannot read record:\n%v\n", err)
			return
		}
		if len(pcinvaded) != len(pores) {
			io.PfRed("record size %d does not match number of pores %d\n", len(pcinvaded), len(pores))
			return
		}
	}

	// buffers
	geo := new(bytes.Buffer)
	vtu := new(bytes.Buffer)

	// generate topology
	topology(geo)

	// points data
	pdata_write(vtu)

	// cells data
	cdata_write(vtu)

	// write vtu file
	vtu_write(geo, vtu)
}

// headers and footers ///////////////////////////////////////////////////////////////////////////////

func vtu_write(geo, dat *bytes.Buffer) {
	if geo == nil || dat == nil {
		return
	}
	np := len(pores)
	nt := len(throats)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", np, nt)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fnkey+".vtu", &hdr, geo, dat, &foo)
}

// topology ////////////////////////////////////////////////////////////////////////////////////////

func topology(buf *bytes.Buffer) {
	if buf == nil {
		return
	}

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	var z float64
	for _, p := range pores {
		if ndim == 3 {
			z = p.C[2]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", p.C[0], p.C[1], z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, t := range throats {
		io.Ff(buf, "%d %d ", t.Con[0], t.Con[1])
	}

	// offsets of lines
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for range throats {
		offset += 2
		io.Ff(buf, "%d ", offset)
	}

	// types: VTK_LINE == 3
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for range throats {
		io.Ff(buf, "3 ")
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// points data /////////////////////////////////////////////////////////////////////////////////////

func pdata_write(buf *bytes.Buffer) {

	// open
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"pid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, p := range pores {
		io.Ff(buf, "%d ", p.Id)
	}

	// tags
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, p := range pores {
		io.Ff(buf, "%d ", p.Tag)
	}

	// volumes
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"volume\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, p := range pores {
		io.Ff(buf, "%23.15e ", p.V)
	}

	// invasion pressures
	if len(pcinvaded) > 0 {
		io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"pcinvaded\" NumberOfComponents=\"1\" format=\"ascii\">\n")
		for _, pc := range pcinvaded {
			io.Ff(buf, "%23.15e ", pc)
		}
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")
}

func cdata_write(buf *bytes.Buffer) {

	// open
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"tid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, t := range throats {
		io.Ff(buf, "%d ", t.Id)
	}

	// diameters
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"diameter\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, t := range throats {
		io.Ff(buf, "%23.15e ", t.D)
	}

	// entry pressures
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"pcentry\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, t := range throats {
		io.Ff(buf, "%23.15e ", t.PcEntry)
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}
