// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

import "github.com/cpmech/gosl/io"

// ConfigError indicates an invalid run configuration such as mixed invasion
// source kinds or a non-positive number of pressure points. It is raised
// before the pressure sweep begins.
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string { return string(e) }

// DataError indicates inconsistent network data such as out-of-range throat
// endpoints or negative entry pressures. It is raised before the pressure
// sweep begins.
type DataError string

// Error implements the error interface
func (e DataError) Error() string { return string(e) }

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func cfgerr(msg string, prm ...interface{}) ConfigError {
	return ConfigError(io.Sf(msg, prm...))
}

func dataerr(msg string, prm ...interface{}) DataError {
	return DataError(io.Sf(msg, prm...))
}
