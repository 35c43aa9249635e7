// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pts implements pseudo-transient relaxation solvers for the
// quasi-static momentum (Stokes) balance and the transient heat diffusion
package pts

// Args bundles the coupling arguments shared by the solvers: the cell-centre
// temperatures, the pressure and the physical time step. The momentum solve is
// quasi-static and receives Dt = +Inf as its elastic relaxation time.
type Args struct {
	Tc [][]float64 // temperature at cell centres
	P  [][]float64 // pressure at cell centres
	Dt float64     // physical time step
}

// Coeffs holds the pseudo-transient iteration parameters
type Coeffs struct {
	Vdmp float64 `json:"vdmp"` // velocity damping; pseudo-step memory is (1 - Vdmp/n)
	Vsc  float64 `json:"vsc"`  // velocity pseudo-step scaling
	Ptsc float64 `json:"ptsc"` // pressure pseudo-step scaling
}

// SetDefaults sets default coefficients
func (o *Coeffs) SetDefaults() {
	o.Vdmp = 4.0
	o.Vsc = 2.0
	o.Ptsc = 8.0
}

// Diagnostics holds the convergence history of one solver call. Exhausting the
// iteration budget is surfaced here, never as an error.
type Diagnostics struct {
	ErrHistory []float64 // relative error at every check interval
	Iterations int       // iterations actually performed
	Converged  bool      // tolerance met within the budget
}

// FinalError returns the last recorded relative error
func (o *Diagnostics) FinalError() float64 {
	if len(o.ErrHistory) == 0 {
		return -1
	}
	return o.ErrHistory[len(o.ErrHistory)-1]
}
