// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pts

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/geomech/goconvect/fld"
	"github.com/geomech/goconvect/grd"
	"github.com/geomech/goconvect/mdl/rheology"
)

// Thermal advances the node temperatures over one implicit diffusion step
//
//   (T - Told)/dt = kappa * laplace(T)
//
// by pseudo-transient relaxation. Sides flagged no-flux mirror their first
// interior row; the remaining sides keep their pinned Dirichlet values.
// Non-convergence within maxit is not an error; the caller proceeds with the
// relaxed state.
func Thermal(th *fld.ThermalField, bcs fld.ThermalBCs, rheo *rheology.Rheology,
	dt float64, g *grd.Grid, maxit, nout int, tol float64, verbose bool) (diag *Diagnostics) {

	nx, ny := g.Nx, g.Ny
	dx2, dy2 := g.Dx*g.Dx, g.Dy*g.Dy
	kappa := rheo.Kappa

	// previous state
	told := la.MatAlloc(nx+1, ny+1)
	for i := 0; i <= nx; i++ {
		copy(told[i], th.T[i])
	}

	// pseudo-time step combining the diffusive limit with the reaction term
	dtau := g.MinSpacing() * g.MinSpacing() / kappa / 4.1
	dtau = 1.0 / (1.0/dtau + 1.0/dt)

	// temperature scale for the relative error
	tmin, tmax := th.MinMax()
	tscale := math.Max(math.Abs(tmax-tmin), 1e-30)

	diag = new(Diagnostics)
	for iter := 1; iter <= maxit; iter++ {

		// relax interior nodes
		errmax := 0.0
		for i := 1; i < nx; i++ {
			for j := 1; j < ny; j++ {
				lap := (th.T[i-1][j]-2.0*th.T[i][j]+th.T[i+1][j])/dx2 +
					(th.T[i][j-1]-2.0*th.T[i][j]+th.T[i][j+1])/dy2
				res := kappa*lap - (th.T[i][j]-told[i][j])/dt
				th.T[i][j] += dtau * res
				errmax = math.Max(errmax, math.Abs(res)*dt/tscale)
			}
		}
		applyThermalBCs(th, bcs, nx, ny)

		diag.Iterations = iter
		if iter%nout == 0 || iter == maxit {
			diag.ErrHistory = append(diag.ErrHistory, errmax)
			if verbose {
				io.Pf("  thermal: iter=%d err=%g\n", iter, errmax)
			}
			if errmax < tol {
				diag.Converged = true
				return
			}
		}
	}
	return
}

// applyThermalBCs mirrors the first interior row into no-flux sides
func applyThermalBCs(th *fld.ThermalField, bcs fld.ThermalBCs, nx, ny int) {
	for j := 0; j <= ny; j++ {
		if bcs.NoFluxLeft {
			th.T[0][j] = th.T[1][j]
		}
		if bcs.NoFluxRight {
			th.T[nx][j] = th.T[nx-1][j]
		}
	}
	for i := 0; i <= nx; i++ {
		if bcs.NoFluxBottom {
			th.T[i][0] = th.T[i][1]
		}
		if bcs.NoFluxTop {
			th.T[i][ny] = th.T[i][ny-1]
		}
	}
}
