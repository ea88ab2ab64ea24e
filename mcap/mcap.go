// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mcap implements capillary entry pressure models for throats
package mcap

import (
	"log"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for capillary entry pressure models
type Model interface {
	Init(prms fun.Prms) error  // Init initialises the model with given parameters
	GetPrms() fun.Prms         // GetPrms gets (an example) of parameters
	PcEntry(d float64) float64 // PcEntry returns the entry pressure of a throat with diameter d
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// _models holds pre-allocated models
var _models = map[string]Model{}

// GetModel returns (existent or new) model
//  simfnk  -- unique simulation filename key
//  matname -- name of material/fluid pair
//  mdlname -- model name
//  getnew  -- force a new allocation; i.e. do not use any model found in database
//  Note: returns nil on errors
func GetModel(simfnk, matname, mdlname string, getnew bool) Model {

	// get new model, regardless of database
	if getnew {
		allocator, ok := allocators[mdlname]
		if !ok {
			return nil
		}
		return allocator()
	}

	// search database
	getkey := simfnk + "_" + matname + "_" + mdlname
	if model, ok := _models[getkey]; ok {
		return model
	}

	// if not found, get new
	allocator, ok := allocators[mdlname]
	if !ok {
		return nil
	}
	model := allocator()
	_models[getkey] = model
	return model
}

// LogModels prints to log information on existent and allocated Models
func LogModels() {
	l := "mcap: available:"
	for name := range allocators {
		l += " " + name
	}
	log.Println(l)
	l = "mcap: allocated:"
	for key := range _models {
		l += " " + io.Sf("%q", key)
	}
	log.Println(l)
}
