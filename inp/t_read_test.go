// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. reference configuration")

	sim, err := ReadSim("data/convect.sim")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}

	chk.IntAssert(sim.Data.Nx, 256)
	chk.IntAssert(sim.Data.Ny, 32)
	chk.Scalar(tst, "lx", 1e-15, sim.Data.Lx, 8*sim.Data.Ly)
	chk.Scalar(tst, "ly", 1e-15, sim.Data.Ly, 2890e3)
	chk.IntAssert(sim.Time.Nit, 5)
	chk.StrAssert(sim.Rheology.Model, "arrhenius")

	// independent solver configurations
	chk.IntAssert(sim.Momentum.NmaxIt, 100000)
	chk.IntAssert(sim.Thermal.NmaxIt, 20000)
	if sim.Momentum.Tol == sim.Thermal.Tol {
		tst.Errorf("momentum and thermal tolerances should be independent\n")
		return
	}

	// viscosity parameters
	p := sim.Rheology.Visc.Find("eta0")
	if p == nil {
		tst.Errorf("cannot find parameter eta0\n")
		return
	}
	chk.Scalar(tst, "eta0", 1e-15, p.V, 1e21)

	// perturbation
	if !sim.Initial.Circular.Active {
		tst.Errorf("circular perturbation should be active\n")
		return
	}
	chk.Scalar(tst, "xc", 1e-15, sim.Initial.Circular.Xc, 0.5*sim.Data.Lx)
	chk.Scalar(tst, "yc", 1e-15, sim.Initial.Circular.Yc, -0.75*sim.Data.Ly)
	chk.Scalar(tst, "r", 1e-15, sim.Initial.Circular.R, 150e3)

	// boundary conditions
	if !sim.ThermalBcs.NoFluxLeft || !sim.ThermalBcs.NoFluxRight {
		tst.Errorf("sides should be no-flux\n")
		return
	}
	if sim.ThermalBcs.NoFluxTop || sim.ThermalBcs.NoFluxBottom {
		tst.Errorf("top/bottom must keep their pinned values\n")
		return
	}
	if !sim.FlowBcs.FreeSlipLeft || !sim.FlowBcs.FreeSlipTop {
		tst.Errorf("flow sides should be free-slip\n")
		return
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. defaults and failures")

	sim, err := ReadSim("data/convect-small.sim")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	chk.IntAssert(sim.Time.Nit, 2)
	chk.Scalar(tst, "vdmp", 1e-15, sim.PtCoeffs.Vdmp, 4.0)
	if !sim.Initial.Random.Active {
		tst.Errorf("random perturbation should be active\n")
		return
	}
	chk.IntAssert(int(sim.Initial.Random.Seed), 1234)

	_, err = ReadSim("data/__nonexistent__.sim")
	if err == nil {
		tst.Errorf("ReadSim should have failed for a missing file\n")
		return
	}
}
