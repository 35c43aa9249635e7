// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grd implements the 2D staggered-grid geometry
package grd

import (
	"github.com/cpmech/gosl/chk"
)

// Grid holds the geometry of a uniform 2D staggered grid. It is immutable
// after construction: cell-centre coordinates live at origin + (i+1/2)*spacing
// and node (vertex) coordinates at origin + i*spacing.
type Grid struct {

	// input
	Ox, Oy float64 // origin
	Lx, Ly float64 // physical extents
	Nx, Ny int     // number of cells along each axis

	// derived
	Dx, Dy float64   // uniform cell spacing
	Xc, Yc []float64 // cell-centre coordinates; len = Nx, Ny
	Xn, Yn []float64 // node (vertex) coordinates; len = Nx+1, Ny+1
}

// NewGrid builds a grid from origin, extents and cell counts
//  Input:
//   origin  -- lower-left corner {x0, y0}
//   extents -- physical size {lx, ly}; must be positive
//   counts  -- number of cells {nx, ny}; must be positive
func NewGrid(origin, extents [2]float64, counts [2]int) (o *Grid, err error) {

	// check
	if extents[0] <= 0 || extents[1] <= 0 {
		return nil, chk.Err("invalid domain: extents must be positive. lx=%g ly=%g", extents[0], extents[1])
	}
	if counts[0] <= 0 || counts[1] <= 0 {
		return nil, chk.Err("invalid domain: cell counts must be positive. nx=%d ny=%d", counts[0], counts[1])
	}

	// basic data
	o = new(Grid)
	o.Ox, o.Oy = origin[0], origin[1]
	o.Lx, o.Ly = extents[0], extents[1]
	o.Nx, o.Ny = counts[0], counts[1]
	o.Dx = o.Lx / float64(o.Nx)
	o.Dy = o.Ly / float64(o.Ny)

	// coordinates
	o.Xc = centres(o.Ox, o.Dx, o.Nx)
	o.Yc = centres(o.Oy, o.Dy, o.Ny)
	o.Xn = nodes(o.Ox, o.Dx, o.Nx)
	o.Yn = nodes(o.Oy, o.Dy, o.Ny)
	return
}

// MinSpacing returns the smaller of the two cell spacings
func (o *Grid) MinSpacing() float64 {
	if o.Dx < o.Dy {
		return o.Dx
	}
	return o.Dy
}

// centres computes n cell-centre coordinates starting at x0
func centres(x0, dx float64, n int) (c []float64) {
	c = make([]float64, n)
	for i := 0; i < n; i++ {
		c[i] = x0 + (float64(i)+0.5)*dx
	}
	return
}

// nodes computes n+1 vertex coordinates starting at x0
func nodes(x0, dx float64, n int) (v []float64) {
	v = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		v[i] = x0 + float64(i)*dx
	}
	return
}
