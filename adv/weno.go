// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package adv implements fifth-order WENO advection of a scalar field along a
// node velocity field
package adv

import (
	"github.com/cpmech/gosl/la"
)

// weno weights and regularisation
const (
	wenoEps = 1e-6
	gamma1  = 0.1
	gamma2  = 0.6
	gamma3  = 0.3
)

// State is the advection workspace, allocated once for the simulation
// lifetime and sized to the full node grid; mutated only by Advect
type State struct {
	qold [][]float64 // field copy at the beginning of the step
	rate [][]float64 // advective rate of change
}

// NewState allocates the workspace for an nx x ny cell grid
func NewState(nx, ny int) (o *State) {
	o = new(State)
	o.qold = la.MatAlloc(nx+1, ny+1)
	o.rate = la.MatAlloc(nx+1, ny+1)
	return
}

// Advect transports q (mutated in place) along the node velocities (vxn, vyn)
// over one step dt, using upwinded fifth-order WENO derivatives and a forward
// Euler update. dt must already satisfy the advective stability limit. Only
// the nodes of q are touched; the caller owns the slice placement.
func Advect(q, vxn, vyn [][]float64, s *State, dx, dy, dt float64) {
	m := len(q)
	n := len(q[0])
	for i := 0; i < m; i++ {
		copy(s.qold[i][:n], q[i])
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			vx, vy := vxn[i][j], vyn[i][j]
			var ddx, ddy float64
			if vx >= 0 {
				ddx = derivX(s.qold, i, j, m, dx, -1)
			} else {
				ddx = derivX(s.qold, i, j, m, dx, +1)
			}
			if vy >= 0 {
				ddy = derivY(s.qold, i, j, n, dy, -1)
			} else {
				ddy = derivY(s.qold, i, j, n, dy, +1)
			}
			s.rate[i][j] = -(vx*ddx + vy*ddy)
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			q[i][j] += dt * s.rate[i][j]
		}
	}
}

// derivX computes the upwinded d(q)/dx at (i,j); bias -1 uses the left-biased
// stencil, +1 the right-biased one. Indices clamp at the slice edges, which
// degrades the reconstruction to lower order there.
func derivX(q [][]float64, i, j, m int, dx float64, bias int) float64 {
	at := func(k int) float64 {
		if k < 0 {
			k = 0
		}
		if k > m-1 {
			k = m - 1
		}
		return q[k][j]
	}
	var v1, v2, v3, v4, v5 float64
	if bias < 0 {
		v1 = (at(i-2) - at(i-3)) / dx
		v2 = (at(i-1) - at(i-2)) / dx
		v3 = (at(i) - at(i-1)) / dx
		v4 = (at(i+1) - at(i)) / dx
		v5 = (at(i+2) - at(i+1)) / dx
	} else {
		v1 = (at(i+3) - at(i+2)) / dx
		v2 = (at(i+2) - at(i+1)) / dx
		v3 = (at(i+1) - at(i)) / dx
		v4 = (at(i) - at(i-1)) / dx
		v5 = (at(i-1) - at(i-2)) / dx
	}
	return weno5(v1, v2, v3, v4, v5)
}

// derivY computes the upwinded d(q)/dy at (i,j)
func derivY(q [][]float64, i, j, n int, dy float64, bias int) float64 {
	at := func(k int) float64 {
		if k < 0 {
			k = 0
		}
		if k > n-1 {
			k = n - 1
		}
		return q[i][k]
	}
	var v1, v2, v3, v4, v5 float64
	if bias < 0 {
		v1 = (at(j-2) - at(j-3)) / dy
		v2 = (at(j-1) - at(j-2)) / dy
		v3 = (at(j) - at(j-1)) / dy
		v4 = (at(j+1) - at(j)) / dy
		v5 = (at(j+2) - at(j+1)) / dy
	} else {
		v1 = (at(j+3) - at(j+2)) / dy
		v2 = (at(j+2) - at(j+1)) / dy
		v3 = (at(j+1) - at(j)) / dy
		v4 = (at(j) - at(j-1)) / dy
		v5 = (at(j-1) - at(j-2)) / dy
	}
	return weno5(v1, v2, v3, v4, v5)
}

// weno5 combines the three candidate stencils of first differences with
// smoothness-weighted coefficients
func weno5(v1, v2, v3, v4, v5 float64) float64 {
	s1 := 13.0/12.0*sq(v1-2.0*v2+v3) + 0.25*sq(v1-4.0*v2+3.0*v3)
	s2 := 13.0/12.0*sq(v2-2.0*v3+v4) + 0.25*sq(v2-v4)
	s3 := 13.0/12.0*sq(v3-2.0*v4+v5) + 0.25*sq(3.0*v3-4.0*v4+v5)
	a1 := gamma1 / sq(wenoEps+s1)
	a2 := gamma2 / sq(wenoEps+s2)
	a3 := gamma3 / sq(wenoEps+s3)
	w := a1 + a2 + a3
	return (a1*(2.0*v1-7.0*v2+11.0*v3) +
		a2*(-v2+5.0*v3+2.0*v4) +
		a3*(2.0*v3+5.0*v4-v5)) / (6.0 * w)
}

func sq(x float64) float64 { return x * x }
