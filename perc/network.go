// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

// Network defines the read-only access to a pore network required by the
// percolation algorithms. The algorithms never modify the network.
// *inp.Network implements this interface.
type Network interface {
	Npores() int                    // Npores returns the number of pores
	Nthroats() int                  // Nthroats returns the number of throats
	ThroatPores(t int) (p0, p1 int) // ThroatPores returns the ids of the two pores connected by throat t
	ThroatPcEntry(t int) float64    // ThroatPcEntry returns the capillary entry pressure of throat t
	PoreVol(p int) float64          // PoreVol returns the body volume of pore p
	PoreTag(p int) int              // PoreTag returns the boundary type tag of pore p; 0 means internal
	PoreIndex(num int) int          // PoreIndex returns the index of the pore with external number num; -1 if unknown
}
