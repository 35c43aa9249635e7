// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pts

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/geomech/goconvect/dst"
	"github.com/geomech/goconvect/fld"
	"github.com/geomech/goconvect/grd"
)

// Momentum relaxes the quasi-static Stokes balance
//
//   div(tau) - grad(P) + rho*g = 0,   div(V) = 0
//
// by damped pseudo-transient iterations on the staggered grid. Boundary-normal
// velocities are pinned to zero on free-slip sides and the tangential shear
// stress vanishes on the boundary vertices. Non-convergence within maxit is
// reported through the diagnostics only.
//  Input:
//   st      -- Stokes field (V, P, stress and viscosity mutated in place)
//   coeffs  -- pseudo-transient coefficients
//   g       -- grid geometry
//   bcs     -- flow boundary conditions
//   rhog    -- buoyancy term at cell centres (positive, acting along -y)
//   args    -- coupling bundle; Dt is +Inf for the quasi-static balance
//   topo    -- distributed topology for global residual reduction
//   maxit   -- iteration budget
//   nout    -- check interval
//   etamin, etamax -- viscosity clamp bounds for the vertex averages
//   tol     -- relative error tolerance
func Momentum(st *fld.StokesField, coeffs *Coeffs, g *grd.Grid, bcs fld.FlowBCs,
	rhog [][]float64, args *Args, topo *dst.Topology, maxit, nout int,
	etamin, etamax, tol float64) (diag *Diagnostics) {

	nx, ny := g.Nx, g.Ny
	dx, dy := g.Dx, g.Dy

	// work arrays
	divV := la.MatAlloc(nx, ny)
	etav := la.MatAlloc(nx+1, ny+1) // viscosity at vertices
	dVx := la.MatAlloc(nx+1, ny)    // damped pseudo-velocity rates
	dVy := la.MatAlloc(nx, ny+1)
	rx := la.MatAlloc(nx+1, ny)
	ry := la.MatAlloc(nx, ny+1)

	// vertex viscosity: clamped average of the adjacent cell centres
	for i := 0; i <= nx; i++ {
		for j := 0; j <= ny; j++ {
			i0, i1 := imax(i-1, 0), imin(i, nx-1)
			j0, j1 := imax(j-1, 0), imin(j, ny-1)
			e := 0.25 * (st.Eta[i0][j0] + st.Eta[i1][j0] + st.Eta[i0][j1] + st.Eta[i1][j1])
			etav[i][j] = clamp(e, etamin, etamax)
		}
	}

	// pseudo-time steps
	minDxy2 := g.MinSpacing() * g.MinSpacing()
	maxNxy := float64(imax(nx, ny))
	dampX := 1.0 - coeffs.Vdmp/float64(nx)
	dampY := 1.0 - coeffs.Vdmp/float64(ny)

	// scale of the driving force, for the relative error
	rhogmax := 0.0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			rhogmax = math.Max(rhogmax, math.Abs(rhog[i][j]))
		}
	}
	if rhogmax == 0 {
		rhogmax = 1
	}

	diag = new(Diagnostics)
	for iter := 1; iter <= maxit; iter++ {

		// divergence and pressure update
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				divV[i][j] = (st.Vx[i+1][j]-st.Vx[i][j])/dx + (st.Vy[i][j+1]-st.Vy[i][j])/dy
				dtP := coeffs.Ptsc * 4.1 * st.Eta[i][j] / maxNxy
				st.P[i][j] -= dtP * divV[i][j]
			}
		}

		// deviatoric stresses
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				exx := (st.Vx[i+1][j] - st.Vx[i][j]) / dx
				eyy := (st.Vy[i][j+1] - st.Vy[i][j]) / dy
				st.Txx[i][j] = 2.0 * st.Eta[i][j] * (exx - divV[i][j]/3.0)
				st.Tyy[i][j] = 2.0 * st.Eta[i][j] * (eyy - divV[i][j]/3.0)
			}
		}
		for i := 0; i <= nx; i++ {
			for j := 0; j <= ny; j++ {
				if i == 0 || i == nx || j == 0 || j == ny {
					st.Txy[i][j] = 0 // free slip: zero tangential stress on the boundary
					continue
				}
				exy := 0.5 * ((st.Vx[i][j]-st.Vx[i][j-1])/dy + (st.Vy[i][j]-st.Vy[i-1][j])/dx)
				st.Txy[i][j] = 2.0 * etav[i][j] * exy
			}
		}

		// residuals and damped velocity updates
		for i := 1; i < nx; i++ {
			for j := 0; j < ny; j++ {
				rx[i][j] = (st.Txx[i][j]-st.Txx[i-1][j])/dx +
					(st.Txy[i][j+1]-st.Txy[i][j])/dy -
					(st.P[i][j]-st.P[i-1][j])/dx
				etaloc := 0.5 * (st.Eta[i-1][j] + st.Eta[i][j])
				dtV := coeffs.Vsc * minDxy2 / etaloc / 4.1
				dVx[i][j] = dampX*dVx[i][j] + rx[i][j]
				st.Vx[i][j] += dtV * dVx[i][j]
			}
		}
		for i := 0; i < nx; i++ {
			for j := 1; j < ny; j++ {
				ry[i][j] = (st.Tyy[i][j]-st.Tyy[i][j-1])/dy +
					(st.Txy[i+1][j]-st.Txy[i][j])/dx -
					(st.P[i][j]-st.P[i][j-1])/dy -
					0.5*(rhog[i][j-1]+rhog[i][j])
				etaloc := 0.5 * (st.Eta[i][j-1] + st.Eta[i][j])
				dtV := coeffs.Vsc * minDxy2 / etaloc / 4.1
				dVy[i][j] = dampY*dVy[i][j] + ry[i][j]
				st.Vy[i][j] += dtV * dVy[i][j]
			}
		}

		// boundary-normal velocities stay pinned
		applyFlowBCs(st, bcs, nx, ny)

		// convergence check
		diag.Iterations = iter
		if iter%nout == 0 || iter == maxit {
			errV := math.Max(meanAbsIn(rx, 1, nx, 0, ny), meanAbsIn(ry, 0, nx, 1, ny)) / rhogmax
			vx, vy := st.MaxAbsVelocities()
			vchar := math.Max(vx, vy)
			errP := 0.0
			if vchar > 0 {
				errP = meanAbsIn(divV, 0, nx, 0, ny) * g.MinSpacing() / vchar
			}
			err := topo.MaxAll(math.Max(errV, errP))
			diag.ErrHistory = append(diag.ErrHistory, err)
			if err < tol {
				diag.Converged = true
				return
			}
		}
	}
	return
}

// applyFlowBCs pins the boundary-normal velocities of free-slip sides
func applyFlowBCs(st *fld.StokesField, bcs fld.FlowBCs, nx, ny int) {
	for j := 0; j < ny; j++ {
		if bcs.FreeSlipLeft {
			st.Vx[0][j] = 0
		}
		if bcs.FreeSlipRight {
			st.Vx[nx][j] = 0
		}
	}
	for i := 0; i < nx; i++ {
		if bcs.FreeSlipBottom {
			st.Vy[i][0] = 0
		}
		if bcs.FreeSlipTop {
			st.Vy[i][ny] = 0
		}
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////

// meanAbsIn averages |a| over i in [ilo,ihi) and j in [jlo,jhi)
func meanAbsIn(a [][]float64, ilo, ihi, jlo, jhi int) float64 {
	sum, n := 0.0, 0
	for i := ilo; i < ihi; i++ {
		for j := jlo; j < jhi; j++ {
			sum += math.Abs(a[i][j])
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
