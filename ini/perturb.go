// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ini

import (
	"math"
	"math/rand"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// NewRand returns the default random source of the stochastic perturbation.
// Tests inject their own seeded *rand.Rand instead.
func NewRand(seed int64) *rand.Rand {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	return rng
}

// ApplyCircular multiplies the temperature inside a circular anomaly centred
// at (xc, yc) with radius r by (dTperc/100 + 1). The selection loop runs over
// nodes excluding the two outermost rows along the x-axis and writes one node
// further along x; this one-node offset is a fixed contract of the scheme
// (vertex vs. centre alignment), not an artefact to be corrected.
func ApplyCircular(T [][]float64, dTperc, xc, yc, r float64, xn, yn []float64) {
	fac := dTperc/100.0 + 1.0
	for i := 0; i < len(xn)-2; i++ {
		for j := 0; j < len(yn); j++ {
			dx := xn[i] - xc
			dy := yn[j] - yc
			if dx*dx+dy*dy <= r*r {
				T[i+1][j] *= fac
			}
		}
	}
}

// ApplyRandom multiplies the temperature of every node inside the axis-aligned
// box by (dT/100 + 1) with dT drawn independently per node from a uniform
// distribution over [-dTperc/2, dTperc/2]. xbox holds ordered x-bounds; ybox
// is compared through absolute values. The random source is injected so runs
// can be made deterministic.
func ApplyRandom(T [][]float64, dTperc float64, xbox, ybox [2]float64, xn, yn []float64, rng *rand.Rand) {
	for i := 0; i < len(xn); i++ {
		if xn[i] < xbox[0] || xn[i] > xbox[1] {
			continue
		}
		for j := 0; j < len(yn); j++ {
			d := math.Abs(yn[j])
			if d < math.Abs(ybox[0]) || d > math.Abs(ybox[1]) {
				continue
			}
			dT := (rng.Float64() - 0.5) * dTperc
			T[i][j] *= dT/100.0 + 1.0
		}
	}
}
