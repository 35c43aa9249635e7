// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dst

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_topo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo01. single-process topology")

	topo := NewTopology(32, 16)
	defer topo.Finalize()

	chk.IntAssert(topo.Nproc, 1)
	chk.IntAssert(topo.Proc, 0)
	chk.IntAssert(topo.Left, -1)
	chk.IntAssert(topo.Right, -1)
	if topo.Distr {
		tst.Errorf("a single process must not be distributed\n")
		return
	}

	// reductions are the identity
	chk.Scalar(tst, "maxall", 1e-15, topo.MaxAll(3.5), 3.5)
	chk.Scalar(tst, "minall", 1e-15, topo.MinAll(-2.5), -2.5)

	// halo exchange is a no-op and leaves the fields untouched
	f := la.MatAlloc(6, 4)
	for i := 0; i < 6; i++ {
		for j := 0; j < 4; j++ {
			f[i][j] = float64(10*i + j)
		}
	}
	fc := la.MatAlloc(6, 4)
	for i := 0; i < 6; i++ {
		copy(fc[i], f[i])
	}
	topo.HaloExchange(f)
	chk.Matrix(tst, "field unchanged", 1e-15, f, fc)
}
