// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dgupta599/OpenPNM/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testnet builds a network with pores along a line. External pore numbers
// are 100 + id so that site lists exercise the numbering translation.
func testnet(tags []int, vols []float64, con [][]int, pcentry []float64) *inp.Network {
	pores := make([]*inp.Pore, len(tags))
	for i := range tags {
		pores[i] = &inp.Pore{Id: i, Num: 100 + i, Tag: tags[i], C: []float64{float64(i), 0}, V: vols[i]}
	}
	throats := make([]*inp.Throat, len(con))
	for j := range con {
		throats[j] = &inp.Throat{Id: j, Con: con[j], D: 1, PcEntry: pcentry[j]}
	}
	net, err := inp.NewNetwork("testnet", pores, throats)
	if err != nil {
		chk.Panic("cannot build test network:\n%v", err)
	}
	return net
}
