// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheology

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Rheology bundles the material parameters used every iteration to recompute
// buoyancy and viscosity from the current (T, P, depth). Created once at
// simulation setup; immutable thereafter.
type Rheology struct {
	Visc  Model     // viscosity law
	Buoy  *Buoyancy // buoyancy closure
	Kappa float64   // thermal diffusivity
}

// NewRheology allocates and initialises a rheology bundle
//  Input:
//   model -- name of viscosity model in database; e.g. "arrhenius"
//   vprms -- viscosity law parameters
//   bprms -- buoyancy parameters, including "kappa"
func NewRheology(model string, vprms, bprms fun.Prms) (o *Rheology, err error) {
	o = new(Rheology)
	o.Visc, err = New(model)
	if err != nil {
		return nil, err
	}
	err = o.Visc.Init(vprms)
	if err != nil {
		return nil, err
	}
	o.Buoy = new(Buoyancy)
	err = o.Buoy.Init(bprms)
	if err != nil {
		return nil, err
	}
	prm := bprms.Find("kappa")
	if prm == nil {
		return nil, chk.Err("rheology: parameter 'kappa' (thermal diffusivity) is missing")
	}
	o.Kappa = prm.V
	return
}

// ComputeViscosity fills eta (cell centres) from cell-centre temperature,
// pressure and depth; depth is |yc|
func (o *Rheology) ComputeViscosity(eta, P, Tc [][]float64, yc []float64) {
	for i := 0; i < len(eta); i++ {
		for j := 0; j < len(eta[i]); j++ {
			eta[i][j] = o.Visc.Viscosity(P[i][j], Tc[i][j], math.Abs(yc[j]))
		}
	}
}
