// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/geomech/goconvect/dst"
	"github.com/geomech/goconvect/fld"
	"github.com/geomech/goconvect/inp"
)

// testSim builds a small configuration without reading a file
func testSim(nx, ny, nit int, alpha float64) (s *inp.Simulation) {
	s = new(inp.Simulation)
	s.Time.SetDefaults()
	s.Momentum.SetDefaults()
	s.Thermal.SetDefaults()
	s.PtCoeffs.SetDefaults()
	s.Data = inp.Data{Desc: "test", Ox: 0, Oy: -2890e3, Lx: 5780e3, Ly: 2890e3, Nx: nx, Ny: ny}
	s.Time.Nit = nit
	s.Momentum.NmaxIt = 2000
	s.Momentum.Nout = 100
	s.Momentum.Tol = 1e-4
	s.Thermal.NmaxIt = 2000
	s.Thermal.Nout = 50
	s.Thermal.Tol = 1e-8
	s.Rheology.Model = "arrhenius"
	s.Rheology.Visc = fun.Prms{
		&fun.P{N: "eta0", V: 1e21},
		&fun.P{N: "Ea", V: 200e3},
		&fun.P{N: "Va", V: 2.6e-6},
		&fun.P{N: "T0", V: 1600.0},
		&fun.P{N: "etamin", V: 1e18},
		&fun.P{N: "etamax", V: 1e24},
	}
	s.Rheology.Buoy = fun.Prms{
		&fun.P{N: "rho0", V: 3300.0},
		&fun.P{N: "alpha", V: alpha},
		&fun.P{N: "Tref", V: 1600.0},
		&fun.P{N: "g", V: 9.81},
		&fun.P{N: "kappa", V: 1e-6},
	}
	s.Initial.Tm = 1900
	s.Initial.Tp = 1600
	s.Initial.Tmin = 300
	s.Initial.Tmax = 1900
	s.ThermalBcs.NoFluxLeft = true
	s.ThermalBcs.NoFluxRight = true
	s.FlowBcs = fld.FlowBCs{FreeSlipLeft: true, FreeSlipRight: true, FreeSlipBottom: true, FreeSlipTop: true}
	return
}

func Test_driver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver01. construction and initial state")

	topo := dst.NewTopology(16, 8)
	d, err := New(testSim(16, 8, 3, 3e-5), topo, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if d.Stage != Initializing {
		tst.Errorf("driver must start in the Initializing stage\n")
		return
	}
	chk.IntAssert(d.It, 0)
	chk.Scalar(tst, "t0", 1e-15, d.T, 0)

	// diffusive limit fixed at setup
	h := d.Grid.MinSpacing()
	chk.Scalar(tst, "dtdiff", 1e-6, d.DtDiff, 0.5*h*h/d.Rheo.Kappa/2.01)

	// pinned boundary rows
	for i := 0; i <= d.Grid.Nx; i++ {
		chk.Scalar(tst, "bottom pinned", 1e-15, d.Thermal.T[i][0], 1900.0)
		chk.Scalar(tst, "surface pinned", 1e-15, d.Thermal.T[i][d.Grid.Ny], 300.0)
	}

	// initial pressure grows with depth
	for i := 0; i < d.Grid.Nx; i++ {
		for j := 1; j < d.Grid.Ny; j++ {
			if d.Stokes.P[i][j] >= d.Stokes.P[i][j-1] || d.Stokes.P[i][j] < 0 {
				tst.Errorf("lithostatic pressure must be non-negative and grow with depth\n")
				return
			}
		}
	}

	// invalid domain is fatal at construction
	bad := testSim(0, 8, 1, 3e-5)
	_, err = New(bad, topo, false)
	if err == nil {
		tst.Errorf("New should have failed for nx=0\n")
		return
	}
}

func Test_driver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver02. dt selection is idempotent")

	topo := dst.NewTopology(16, 8)
	d, err := New(testSim(16, 8, 1, 3e-5), topo, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	dt1 := d.SelectTimeStep()
	dt2 := d.SelectTimeStep()
	chk.Scalar(tst, "dt idempotent", 0, dt1, dt2)
	if dt1 <= 0 {
		tst.Errorf("dt must be positive. dt=%g\n", dt1)
		return
	}

	// zero velocity: the diffusive limit rules
	chk.Scalar(tst, "dt = dtdiff", 0, dt1, d.DtDiff)
}

func Test_driver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver03. neutral buoyancy keeps the fluid at rest")

	// alpha=0: uniform rho*g balanced exactly by the lithostatic pressure
	topo := dst.NewTopology(16, 8)
	d, err := New(testSim(16, 8, 2, 0), topo, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	diag, err := d.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if d.Stage != Done {
		tst.Errorf("driver must end in the Done stage\n")
		return
	}
	chk.IntAssert(d.It, 2)
	chk.Scalar(tst, "t advanced", 1e-6, d.T, 2*d.DtDiff)

	if !diag.Converged {
		tst.Errorf("momentum must converge immediately at equilibrium. err=%g\n", diag.FinalError())
		return
	}
	vx, vy := d.Stokes.MaxAbsVelocities()
	chk.Scalar(tst, "vx rest", 1e-20, vx, 0)
	chk.Scalar(tst, "vy rest", 1e-20, vy, 0)

	// boundary rows remain pinned after the full sequence
	for i := 0; i <= d.Grid.Nx; i++ {
		chk.Scalar(tst, "bottom pinned", 1e-15, d.Thermal.T[i][0], 1900.0)
		chk.Scalar(tst, "surface pinned", 1e-15, d.Thermal.T[i][d.Grid.Ny], 300.0)
	}
}

func Test_driver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver04. diagnostics belong to the most recent momentum solve")

	topo := dst.NewTopology(16, 8)
	s := testSim(16, 8, 2, 3e-5)
	s.Initial.Circular = inp.CircData{Active: true, DTperc: 10, Xc: 0.5 * s.Data.Lx, Yc: -0.75 * s.Data.Ly, R: 450e3}
	d, err := New(s, topo, false)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	diag, err := d.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if diag == nil || len(diag.ErrHistory) == 0 {
		tst.Errorf("driver must surface the last momentum diagnostics\n")
		return
	}
	if diag != d.Diag {
		tst.Errorf("returned diagnostics must be the retained most-recent ones\n")
		return
	}
	if math.IsNaN(diag.FinalError()) {
		tst.Errorf("final error must be finite\n")
		return
	}
	if d.T <= 0 {
		tst.Errorf("clock must advance. t=%g\n", d.T)
		return
	}
}
