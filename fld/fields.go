// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fld implements the thermal and Stokes field state on a staggered grid
package fld

import (
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/floats"
)

// ThermalField owns the temperature at nodes and its projection onto cell
// centres. Tc must be refreshed (Centers) after any mutation of T before the
// rheology model reads it.
type ThermalField struct {
	T  [][]float64 // temperature at nodes; (nx+1) x (ny+1)
	Tc [][]float64 // temperature at cell centres; nx x ny
}

// NewThermal allocates a thermal field for an nx x ny cell grid
func NewThermal(nx, ny int) (o *ThermalField) {
	o = new(ThermalField)
	o.T = la.MatAlloc(nx+1, ny+1)
	o.Tc = la.MatAlloc(nx, ny)
	return
}

// Centers projects the node temperatures onto the cell centres
func (o *ThermalField) Centers() {
	for i := 0; i < len(o.Tc); i++ {
		for j := 0; j < len(o.Tc[i]); j++ {
			o.Tc[i][j] = 0.25 * (o.T[i][j] + o.T[i+1][j] + o.T[i][j+1] + o.T[i+1][j+1])
		}
	}
}

// MinMax returns the extrema of the node temperatures
func (o *ThermalField) MinMax() (tmin, tmax float64) {
	tmin, tmax = o.T[0][0], o.T[0][0]
	for i := 0; i < len(o.T); i++ {
		tmin = min2(tmin, floats.Min(o.T[i]))
		tmax = max2(tmax, floats.Max(o.T[i]))
	}
	return
}

// StokesField owns pressure, velocity, deviatoric stress and effective
// viscosity. Mutated by the hydrostatic pressure initialiser and by the
// momentum solver only.
type StokesField struct {
	P   [][]float64 // pressure at cell centres; nx x ny
	Vx  [][]float64 // x-velocity at vertical cell faces; (nx+1) x ny
	Vy  [][]float64 // y-velocity at horizontal cell faces; nx x (ny+1)
	Txx [][]float64 // deviatoric normal stress; nx x ny
	Tyy [][]float64 // deviatoric normal stress; nx x ny
	Txy [][]float64 // deviatoric shear stress at nodes; (nx+1) x (ny+1)
	Eta [][]float64 // effective viscosity at cell centres; nx x ny
}

// NewStokes allocates a Stokes field for an nx x ny cell grid
func NewStokes(nx, ny int) (o *StokesField) {
	o = new(StokesField)
	o.P = la.MatAlloc(nx, ny)
	o.Vx = la.MatAlloc(nx+1, ny)
	o.Vy = la.MatAlloc(nx, ny+1)
	o.Txx = la.MatAlloc(nx, ny)
	o.Tyy = la.MatAlloc(nx, ny)
	o.Txy = la.MatAlloc(nx+1, ny+1)
	o.Eta = la.MatAlloc(nx, ny)
	return
}

// MaxAbsVelocities returns max|Vx| and max|Vy|
func (o *StokesField) MaxAbsVelocities() (vx, vy float64) {
	for i := 0; i < len(o.Vx); i++ {
		for j := 0; j < len(o.Vx[i]); j++ {
			vx = max2(vx, abs(o.Vx[i][j]))
		}
	}
	for i := 0; i < len(o.Vy); i++ {
		for j := 0; j < len(o.Vy[i]); j++ {
			vy = max2(vy, abs(o.Vy[i][j]))
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
