// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rheology implements material models for mantle-convection problems
package rheology

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines viscosity laws. The three operations share one scalar
// viscosity; i.e. Stress(StrainRate(tau)) == tau within the clamp range.
type Model interface {
	Init(prms fun.Prms) error                           // Init initialises this structure
	Viscosity(p, T, depth float64) float64              // effective viscosity
	StrainRate(tauII, p, T, depth float64) float64      // second invariant of strain rate from stress
	Stress(epsII, p, T, depth float64) float64          // second invariant of stress from strain rate
}

// New returns a new viscosity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'rheology' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
