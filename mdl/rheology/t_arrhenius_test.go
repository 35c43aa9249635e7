// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheology

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func prmsArrhenius() fun.Prms {
	return fun.Prms{
		&fun.P{N: "eta0", V: 1e21},
		&fun.P{N: "Ea", V: 200e3},
		&fun.P{N: "Va", V: 2.6e-6},
		&fun.P{N: "T0", V: 1600.0},
		&fun.P{N: "etamin", V: 1e18},
		&fun.P{N: "etamax", V: 1e24},
	}
}

func Test_arrhenius01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrhenius01. clamped viscosity")

	mdl, err := New("arrhenius")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(prmsArrhenius())
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	m := mdl.(*Arrhenius)
	chk.Scalar(tst, "eta0", 1e-15, m.Eta0, 1e21)
	chk.Scalar(tst, "R", 1e-15, m.R, 8.3145)

	// reference state gives the reference viscosity
	chk.Scalar(tst, "eta(0,T0,0)", 1e6, m.Viscosity(0, 1600.0, 0), 1e21)

	// always inside the clamp bounds, including extreme states
	for _, s := range []struct{ p, T, depth float64 }{
		{0, 1600, 0},
		{1e11, 273, 0},        // cold and deep: exponential overflows
		{0, 1e5, 0},           // very hot: underflows
		{5e10, 1900, 1500e3},
		{1e12, 300, 2800e3},
	} {
		eta := m.Viscosity(s.p, s.T, s.depth)
		if eta < m.EtaMin || eta > m.EtaMax {
			tst.Errorf("eta=%g out of [%g,%g] at p=%g T=%g depth=%g\n", eta, m.EtaMin, m.EtaMax, s.p, s.T, s.depth)
			return
		}
		if math.IsInf(eta, 0) {
			tst.Errorf("eta is infinite at p=%g T=%g depth=%g\n", s.p, s.T, s.depth)
			return
		}
	}

	// cold shallow mantle must saturate into the upper clamp bound
	chk.Scalar(tst, "overflow clamps", 1e-15, m.Viscosity(1e11, 273.0, 0), m.EtaMax)
}

func Test_arrhenius02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrhenius02. stress/strain-rate consistency")

	mdl, err := New("arrhenius")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(prmsArrhenius())
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// mid-range state: viscosity away from the clamp bounds
	p, T, depth := 1e9, 1700.0, 300e3
	for _, tau := range []float64{1e5, 1e6, 1e7} {
		eps := mdl.StrainRate(tau, p, T, depth)
		chk.Scalar(tst, "stress(strainrate(tau))", 1e-10*tau, mdl.Stress(eps, p, T, depth), tau)
	}
}

func Test_arrhenius03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrhenius03. depth banding")

	mdl, _ := New("arrhenius")
	err := mdl.Init(prmsArrhenius())
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	m := mdl.(*Arrhenius)

	p, T := 0.0, 1600.0
	eta0 := m.Viscosity(p, T, 0)
	chk.Scalar(tst, "corr(0)", 1e-15, eta0, 1e21)
	chk.Scalar(tst, "corr(660km)", 1e-15, m.Viscosity(p, T, 660000), eta0)
	chk.Scalar(tst, "corr(660km+1m)", 1e-15, m.Viscosity(p, T, 660001), 10*eta0)
	chk.Scalar(tst, "corr(2740km)", 1e-15, m.Viscosity(p, T, 2740000), 10*eta0)
	chk.Scalar(tst, "corr(2740km+1m)", 1e-15, m.Viscosity(p, T, 2740001), 0.1*eta0)
}

func Test_buoy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("buoy01. Boussinesq closure")

	b := new(Buoyancy)
	err := b.Init(fun.Prms{
		&fun.P{N: "rho0", V: 3300.0},
		&fun.P{N: "alpha", V: 3e-5},
		&fun.P{N: "Tref", V: 273.0},
		&fun.P{N: "g", V: 9.81},
	})
	if err != nil {
		tst.Errorf("cannot initialise buoyancy: %v\n", err)
		return
	}

	// at the reference temperature: rho0*g
	chk.Scalar(tst, "rhog(Tref)", 1e-12, b.RhoG(273.0), 3300.0*9.81)

	// hotter is lighter
	if b.RhoG(1600.0) >= b.RhoG(273.0) {
		tst.Errorf("buoyancy must decrease with temperature\n")
		return
	}

	rhog := [][]float64{{0, 0}, {0, 0}}
	Tc := [][]float64{{273, 1600}, {1000, 2000}}
	b.Compute(rhog, Tc)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			chk.Scalar(tst, "rhog[i][j]", 1e-12, rhog[i][j], b.RhoG(Tc[i][j]))
		}
	}
}
