// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ini implements initial-condition generators for the convection model
package ini

import (
	"math"
)

// fixed reference age of the half-space-cooling profile
const (
	secPerYear = 365.25 * 24.0 * 3600.0 // [s] using a Julian year
	refAge     = 100e6 * secPerYear     // [s] 100 Myr
	mantleBase = 2890e3                 // [m] depth of the adiabat anchor
)

// HalfSpaceCooling computes the initial temperature at one node of depth |z|:
// the smaller of a linear adiabat and the half-space cooling solution
//
//   Ti  = Tp + (Tm - Tp)/2890km * |z|
//   Ths = Tmin + (Tm - Tmin) * erf(|z| / (2*sqrt(kappa*age)))
//
// It is a pure per-node function of depth and holds identically for interior
// and boundary nodes.
func HalfSpaceCooling(z, kappa, Tm, Tp, Tmin float64) float64 {
	d := math.Abs(z)
	Ti := Tp + (Tm-Tp)/mantleBase*d
	Ths := Tmin + (Tm-Tmin)*math.Erf(d/(2.0*math.Sqrt(kappa*refAge)))
	return math.Min(Ti, Ths)
}

// SetHalfSpace fills the node temperatures T from the half-space-cooling
// profile; yn holds the node y-coordinates (depth = |yn|)
func SetHalfSpace(T [][]float64, yn []float64, kappa, Tm, Tp, Tmin float64) {
	for i := 0; i < len(T); i++ {
		for j := 0; j < len(T[i]); j++ {
			T[i][j] = HalfSpaceCooling(yn[j], kappa, Tm, Tp, Tmin)
		}
	}
}

// PinBoundary forces the bottom row of nodes to Tmax and the surface row to
// Tmin, unconditionally overriding any perturbation there
func PinBoundary(T [][]float64, Tmax, Tmin float64) {
	for i := 0; i < len(T); i++ {
		T[i][0] = Tmax
		T[i][len(T[i])-1] = Tmin
	}
}
