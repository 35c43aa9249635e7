// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheology

import (
	"github.com/cpmech/gosl/fun"
)

// Buoyancy implements the Boussinesq buoyancy closure
//
//   rho*g = rho0 * (1 - alpha*(T - Tref)) * g
//
type Buoyancy struct {
	Rho0  float64 // reference density
	Alpha float64 // thermal expansivity
	Tref  float64 // reference temperature
	G     float64 // gravity acceleration (magnitude)
}

// Init initialises this structure
func (o *Buoyancy) Init(prms fun.Prms) (err error) {
	prms.Connect(&o.Rho0, "rho0", "rho0 Buoyancy")
	prms.Connect(&o.Alpha, "alpha", "alpha Buoyancy")
	prms.Connect(&o.Tref, "Tref", "Tref Buoyancy")
	prms.Connect(&o.G, "g", "g Buoyancy")
	return
}

// RhoG computes the buoyancy term at one point
func (o *Buoyancy) RhoG(T float64) float64 {
	return o.Rho0 * (1.0 - o.Alpha*(T-o.Tref)) * o.G
}

// Compute fills rhog (cell centres) from the cell-centre temperatures
func (o *Buoyancy) Compute(rhog, Tc [][]float64) {
	for i := 0; i < len(rhog); i++ {
		for j := 0; j < len(rhog[i]); j++ {
			rhog[i][j] = o.RhoG(Tc[i][j])
		}
	}
}
