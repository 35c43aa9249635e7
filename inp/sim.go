// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/geomech/goconvect/fld"
	"github.com/geomech/goconvect/pts"
)

// Data holds global data for simulations
type Data struct {
	Desc string  `json:"desc"` // description of simulation
	Ox   float64 `json:"ox"`   // domain origin x
	Oy   float64 `json:"oy"`   // domain origin y
	Lx   float64 `json:"lx"`   // domain extent x
	Ly   float64 `json:"ly"`   // domain extent y
	Nx   int     `json:"nx"`   // number of cells x
	Ny   int     `json:"ny"`   // number of cells y
}

// TimeData holds the iteration budget of the time-stepping driver
type TimeData struct {
	Nit int `json:"nit"` // number of time iterations
}

// SetDefaults sets default time data
func (o *TimeData) SetDefaults() {
	o.Nit = 5
}

// SolverData holds the convergence configuration of one sub-solver; the
// momentum and thermal solvers carry independent instances
type SolverData struct {
	NmaxIt int     `json:"nmaxit"` // max number of pseudo-transient iterations
	Nout   int     `json:"nout"`   // check interval
	Tol    float64 `json:"tol"`    // relative error tolerance
}

// SetDefaults sets default solver data
func (o *SolverData) SetDefaults() {
	o.NmaxIt = 50000
	o.Nout = 500
	o.Tol = 1e-4
}

// RheoData holds the material parameters of the rheology bundle
type RheoData struct {
	Model string   `json:"model"` // name of viscosity model; e.g. "arrhenius"
	Visc  fun.Prms `json:"visc"`  // viscosity law parameters
	Buoy  fun.Prms `json:"buoy"`  // buoyancy and diffusivity parameters
}

// CircData holds the deterministic circular perturbation
type CircData struct {
	Active bool    `json:"active"`
	DTperc float64 `json:"dtperc"` // perturbation amplitude [%]
	Xc     float64 `json:"xc"`     // centre x
	Yc     float64 `json:"yc"`     // centre y
	R      float64 `json:"r"`      // radius
}

// RandData holds the stochastic rectangular perturbation
type RandData struct {
	Active bool       `json:"active"`
	DTperc float64    `json:"dtperc"` // perturbation amplitude [%]
	Xbox   [2]float64 `json:"xbox"`   // ordered x bounds
	Ybox   [2]float64 `json:"ybox"`   // y bounds, compared through |y|
	Seed   int64      `json:"seed"`   // random source seed; 0 means clock
}

// IniData holds the initial-condition parameters
type IniData struct {
	Tm       float64  `json:"tm"`   // mantle temperature
	Tp       float64  `json:"tp"`   // potential (adiabat surface) temperature
	Tmin     float64  `json:"tmin"` // surface temperature
	Tmax     float64  `json:"tmax"` // bottom temperature
	Circular CircData `json:"circular"`
	Random   RandData `json:"random"`
}

// Simulation holds all simulation input data
type Simulation struct {
	Data       Data           `json:"data"`
	Time       TimeData       `json:"time"`
	Momentum   SolverData     `json:"momentum"`
	Thermal    SolverData     `json:"thermal"`
	PtCoeffs   pts.Coeffs     `json:"ptcoeffs"`
	Rheology   RheoData       `json:"rheology"`
	Initial    IniData        `json:"initial"`
	ThermalBcs fld.ThermalBCs `json:"thermalbcs"`
	FlowBcs    fld.FlowBCs    `json:"flowbcs"`
}

// ReadSim reads a simulation input file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// new sim with defaults
	o = new(Simulation)
	o.Time.SetDefaults()
	o.Momentum.SetDefaults()
	o.Thermal.SetDefaults()
	o.PtCoeffs.SetDefaults()

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}

	// check
	if o.Rheology.Model == "" {
		return nil, chk.Err("simulation file %q misses the rheology model name", simfilepath)
	}
	if o.Time.Nit < 1 {
		return nil, chk.Err("simulation file %q: iteration budget must be at least 1. nit=%d", simfilepath, o.Time.Nit)
	}
	return
}
