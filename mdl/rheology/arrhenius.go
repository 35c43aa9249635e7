// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheology

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// depth bands of the viscosity correction. a depth exactly at a boundary
// belongs to the shallower band
const (
	DepthUpperMantle = 660e3  // [m] upper/lower mantle transition
	DepthLowerMantle = 2740e3 // [m] bottom of the stiff lower mantle
)

// Arrhenius implements a temperature- and pressure-dependent viscosity law
//
//   eta = eta0 * exp( (Ea + p*Va)/(R*T) - Ea/(R*T0) ) * corr(depth)
//
// with piecewise-constant depth correction and hard clamping into
// [EtaMin, EtaMax]. Overflow of the exponential saturates silently into the
// clamp bound; this keeps the momentum solve well-conditioned.
type Arrhenius struct {
	Eta0   float64 // reference viscosity
	Ea     float64 // activation energy
	Va     float64 // activation volume
	T0     float64 // reference temperature
	R      float64 // gas constant
	EtaMin float64 // lower clamp bound
	EtaMax float64 // upper clamp bound
}

// add model to factory
func init() {
	allocators["arrhenius"] = func() Model { return new(Arrhenius) }
}

// Init initialises this structure
func (o *Arrhenius) Init(prms fun.Prms) (err error) {
	o.R = 8.3145
	prms.Connect(&o.Eta0, "eta0", "eta0 Arrhenius model")
	prms.Connect(&o.Ea, "Ea", "Ea Arrhenius model")
	prms.Connect(&o.Va, "Va", "Va Arrhenius model")
	prms.Connect(&o.T0, "T0", "T0 Arrhenius model")
	prms.Connect(&o.EtaMin, "etamin", "etamin Arrhenius model")
	prms.Connect(&o.EtaMax, "etamax", "etamax Arrhenius model")
	return
}

// Viscosity computes the clamped effective viscosity
func (o *Arrhenius) Viscosity(p, T, depth float64) float64 {
	eta := o.Eta0 * math.Exp((o.Ea+p*o.Va)/(o.R*T)-o.Ea/(o.R*o.T0)) * corr(depth)
	if eta < o.EtaMin {
		return o.EtaMin
	}
	if eta > o.EtaMax { // also catches +Inf from an overflowed exponential
		return o.EtaMax
	}
	return eta
}

// StrainRate computes the strain-rate invariant corresponding to tauII
func (o *Arrhenius) StrainRate(tauII, p, T, depth float64) float64 {
	return tauII / (2.0 * o.Viscosity(p, T, depth))
}

// Stress computes the stress invariant corresponding to epsII
func (o *Arrhenius) Stress(epsII, p, T, depth float64) float64 {
	return 2.0 * o.Viscosity(p, T, depth) * epsII
}

// corr returns the depth-banded viscosity correction factor. the bands are
// mutually exclusive and evaluated in fixed order
func corr(depth float64) float64 {
	switch {
	case depth <= DepthUpperMantle:
		return 1.0
	case depth <= DepthLowerMantle:
		return 10.0
	default:
		return 0.1
	}
}
