// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ini

import (
	"math"
)

// LithostaticPressure fills P (cell centres) with the hydrostatic pressure
// rhog*|y| from the initial buoyancy field; computed once before the time loop
func LithostaticPressure(P, rhog [][]float64, yc []float64) {
	for i := 0; i < len(P); i++ {
		for j := 0; j < len(P[i]); j++ {
			P[i][j] = rhog[i][j] * math.Abs(yc[j])
		}
	}
}
