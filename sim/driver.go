// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the time-stepping driver of the convection model
package sim

import (
	"math"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/geomech/goconvect/adv"
	"github.com/geomech/goconvect/dst"
	"github.com/geomech/goconvect/fld"
	"github.com/geomech/goconvect/grd"
	"github.com/geomech/goconvect/ini"
	"github.com/geomech/goconvect/inp"
	"github.com/geomech/goconvect/mdl/rheology"
	"github.com/geomech/goconvect/pts"
)

// State identifies the stage the driver is currently executing
type State int

// driver states
const (
	Initializing State = iota
	MomentumSolve
	TimeStepSelect
	ThermalSolve
	Advect
	Synchronized
	Done
)

// Driver owns the coupled simulation state and sequences one fixed stage
// order per iteration: momentum solve, time-step selection, thermal solve,
// advection, halo synchronisation, clock advance. All sub-solver calls are
// synchronous; fields are mutated only by the stage that owns them.
type Driver struct {

	// input
	Sim  *inp.Simulation // simulation data
	Topo *dst.Topology   // distributed-grid context

	// read-only after construction
	Grid *grd.Grid          // grid geometry
	Rheo *rheology.Rheology // material parameters
	Tbcs fld.ThermalBCs     // thermal boundary conditions
	Fbcs fld.FlowBCs        // flow boundary conditions

	// owned mutable state
	Thermal *fld.ThermalField // temperature fields
	Stokes  *fld.StokesField  // velocity, pressure, stress, viscosity
	Weno    *adv.State        // advection workspace
	Rhog    [][]float64       // buoyancy at cell centres

	// clock
	T  float64 // elapsed physical time
	It int     // iteration counter

	// derived
	DtDiff  float64          // diffusive time-step limit, fixed at setup
	Stage   State            // current stage
	Diag    *pts.Diagnostics // diagnostics of the most recent momentum solve
	ShowMsg bool             // show messages
}

// New builds a driver from the simulation input: grid, fields, rheology,
// boundary conditions and the initial temperature/pressure state at t=0.
// Construction failures (invalid domain, unknown model) are fatal.
func New(s *inp.Simulation, topo *dst.Topology, verbose bool) (o *Driver, err error) {

	o = new(Driver)
	o.Sim = s
	o.Topo = topo
	o.Stage = Initializing
	o.ShowMsg = verbose && topo.Proc == 0

	// grid
	o.Grid, err = grd.NewGrid(
		[2]float64{s.Data.Ox, s.Data.Oy},
		[2]float64{s.Data.Lx, s.Data.Ly},
		[2]int{s.Data.Nx, s.Data.Ny})
	if err != nil {
		return nil, err
	}

	// rheology
	o.Rheo, err = rheology.NewRheology(s.Rheology.Model, s.Rheology.Visc, s.Rheology.Buoy)
	if err != nil {
		return nil, err
	}

	// fields
	nx, ny := o.Grid.Nx, o.Grid.Ny
	o.Thermal = fld.NewThermal(nx, ny)
	o.Stokes = fld.NewStokes(nx, ny)
	o.Weno = adv.NewState(nx, ny)
	o.Rhog = la.MatAlloc(nx, ny)
	o.Tbcs = s.ThermalBcs
	o.Fbcs = s.FlowBcs

	// initial temperature: half-space cooling plus perturbations
	ci := s.Initial
	ini.SetHalfSpace(o.Thermal.T, o.Grid.Yn, o.Rheo.Kappa, ci.Tm, ci.Tp, ci.Tmin)
	if ci.Circular.Active {
		ini.ApplyCircular(o.Thermal.T, ci.Circular.DTperc, ci.Circular.Xc, ci.Circular.Yc,
			ci.Circular.R, o.Grid.Xn, o.Grid.Yn)
	}
	if ci.Random.Active {
		seed := ci.Random.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		ini.ApplyRandom(o.Thermal.T, ci.Random.DTperc, ci.Random.Xbox, ci.Random.Ybox,
			o.Grid.Xn, o.Grid.Yn, ini.NewRand(seed))
	}
	ini.PinBoundary(o.Thermal.T, ci.Tmax, ci.Tmin)
	o.Thermal.Centers()

	// initial buoyancy and hydrostatic pressure
	o.Rheo.Buoy.Compute(o.Rhog, o.Thermal.Tc)
	ini.LithostaticPressure(o.Stokes.P, o.Rhog, o.Grid.Yc)

	// diffusive time-step limit, fixed for the whole run
	h := o.Grid.MinSpacing()
	o.DtDiff = 0.5 * h * h / o.Rheo.Kappa / 2.01

	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> %s: %d x %d cells, dtdiff = %g\n", s.Data.Desc, nx, ny, o.DtDiff)
	}
	return
}

// Run executes the configured number of iterations and returns the momentum
// solver's diagnostics of the final iteration. Sub-solver non-convergence is
// surfaced through the diagnostics and never stops the loop.
func (o *Driver) Run() (diag *pts.Diagnostics, err error) {

	s := o.Sim
	nx := o.Grid.Nx
	for o.It < s.Time.Nit {

		// coupling arguments; the momentum balance is quasi-static
		args := &pts.Args{Tc: o.Thermal.Tc, P: o.Stokes.P, Dt: math.Inf(1)}

		// momentum solve with fresh buoyancy and viscosity
		o.Stage = MomentumSolve
		o.Rheo.Buoy.Compute(o.Rhog, o.Thermal.Tc)
		o.Rheo.ComputeViscosity(o.Stokes.Eta, o.Stokes.P, o.Thermal.Tc, o.Grid.Yc)
		etamin, etamax := viscosityBounds(o.Rheo)
		o.Diag = pts.Momentum(o.Stokes, &s.PtCoeffs, o.Grid, o.Fbcs, o.Rhog, args,
			o.Topo, s.Momentum.NmaxIt, s.Momentum.Nout, etamin, etamax, s.Momentum.Tol)
		o.Topo.HaloExchange(o.Stokes.Vx, o.Stokes.Vy)

		// stable time step
		o.Stage = TimeStepSelect
		dt := o.SelectTimeStep()

		// thermal solve
		o.Stage = ThermalSolve
		pts.Thermal(o.Thermal, o.Tbcs, o.Rheo, dt, o.Grid,
			s.Thermal.NmaxIt, s.Thermal.Nout, s.Thermal.Tol, false)

		// advect the interior temperature slice with node velocities
		o.Stage = Advect
		vxn, vyn := adv.NodeVelocities(o.Stokes)
		adv.Advect(o.Thermal.T[1:nx], vxn[1:nx], vyn[1:nx], o.Weno, o.Grid.Dx, o.Grid.Dy, dt)
		ini.PinBoundary(o.Thermal.T, s.Initial.Tmax, s.Initial.Tmin)
		o.Thermal.Centers()

		// synchronise the temperature halos before the next stage reads them
		o.Stage = Synchronized
		o.Topo.HaloExchange(o.Thermal.T)

		// advance clock
		o.It++
		o.T += dt
		if o.ShowMsg {
			io.Pf("> it=%d t=%g dt=%g err=%g\n", o.It, o.T, dt, o.Diag.FinalError())
		}
	}
	o.Stage = Done
	return o.Diag, nil
}

// SelectTimeStep returns the stable time step: the smaller of the fixed
// diffusive limit and the advective limit of the current velocity field.
// Idempotent for an unchanged state.
func (o *Driver) SelectTimeStep() (dt float64) {
	dt = o.DtDiff
	vx, vy := o.Stokes.MaxAbsVelocities()
	if vx > 0 {
		dt = math.Min(dt, 0.5*o.Grid.Dx/vx/2.01)
	}
	if vy > 0 {
		dt = math.Min(dt, 0.5*o.Grid.Dy/vy/2.01)
	}
	return o.Topo.MinAll(dt)
}

// viscosityBounds extracts the clamp bounds of the viscosity law
func viscosityBounds(rheo *rheology.Rheology) (etamin, etamax float64) {
	if m, ok := rheo.Visc.(*rheology.Arrhenius); ok {
		return m.EtaMin, m.EtaMax
	}
	return 0, math.Inf(1)
}
