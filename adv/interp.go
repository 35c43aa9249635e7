// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adv

import (
	"github.com/cpmech/gosl/la"

	"github.com/geomech/goconvect/fld"
)

// NodeVelocities averages the staggered velocity components onto the node
// (vertex) grid used by the advection scheme. Edge values clamp onto the
// nearest face.
func NodeVelocities(st *fld.StokesField) (vxn, vyn [][]float64) {
	nxp := len(st.Vx)     // nx+1
	nyc := len(st.Vx[0])  // ny
	nxc := len(st.Vy)     // nx
	nyp := len(st.Vy[0])  // ny+1

	vxn = la.MatAlloc(nxp, nyp)
	vyn = la.MatAlloc(nxp, nyp)
	for i := 0; i < nxp; i++ {
		for j := 0; j < nyp; j++ {
			j0, j1 := j-1, j
			if j0 < 0 {
				j0 = 0
			}
			if j1 > nyc-1 {
				j1 = nyc - 1
			}
			vxn[i][j] = 0.5 * (st.Vx[i][j0] + st.Vx[i][j1])

			i0, i1 := i-1, i
			if i0 < 0 {
				i0 = 0
			}
			if i1 > nxc-1 {
				i1 = nxc - 1
			}
			vyn[i][j] = 0.5 * (st.Vy[i0][j] + st.Vy[i1][j])
		}
	}
	return
}
