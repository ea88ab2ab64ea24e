// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dgupta599/OpenPNM/perc"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveRecord saves the pressure schedule and the invasion record of op
func SaveRecord(dirout, fnkey, enctype string, op *perc.OP, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode schedule and record
	err = enc.Encode(op.PcPoints)
	if err != nil {
		return chk.Err("cannot encode pressure schedule\n%v", err)
	}
	err = enc.Encode(op.PcInvaded)
	if err != nil {
		return chk.Err("cannot encode invasion record\n%v", err)
	}

	// save file
	fn := out_rec_path(dirout, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// ReadRecord reads a pressure schedule and invasion record pair saved by SaveRecord
func ReadRecord(dir, fnkey, enctype string) (pcpoints, pcinvaded []float64, err error) {

	// open file
	fn := out_rec_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if cerr := fil.Close(); err == nil {
			err = cerr
		}
	}()

	// get decoder
	dec := GetDecoder(fil, enctype)

	// decode schedule and record
	err = dec.Decode(&pcpoints)
	if err != nil {
		return nil, nil, chk.Err("cannot decode pressure schedule\n%v", err)
	}
	err = dec.Decode(&pcinvaded)
	if err != nil {
		return nil, nil, chk.Err("cannot decode invasion record\n%v", err)
	}
	return
}

// SaveCurve saves a drainage curve as a two-column table
func SaveCurve(dirout, fnkey string, c *perc.Curve, verbose bool) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "%23s %23s\n", "pc", "sn")
	for i := range c.Pc {
		io.Ff(&buf, "%23.15e %23.15e\n", c.Pc[i], c.Sn[i])
	}
	fn := out_cur_path(dirout, fnkey)
	return save_file(fn, &buf, verbose)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_rec_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_rec.%s", fnkey, enctype))
}

func out_cur_path(dir, fnkey string) string {
	return path.Join(dir, io.Sf("%s_curve.dat", fnkey))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if cerr := fil.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
