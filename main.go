// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/geomech/goconvect/dst"
	"github.com/geomech/goconvect/inp"
	"github.com/geomech/goconvect/sim"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "convect", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGoconvect -- 2D mantle convection on a staggered grid\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// simulation input
	s, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input:\n%v", err)
	}

	// distributed-grid context
	topo := dst.NewTopology(s.Data.Nx, s.Data.Ny)
	defer topo.Finalize()

	// build and run the driver
	driver, err := sim.New(s, topo, verbose)
	if err != nil {
		chk.Panic("cannot initialise driver:\n%v", err)
	}
	diag, err := driver.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// final message: the caller's pass/fail criterion is the last relative
	// error of the momentum solve
	tolerance := 5e-4
	if mpi.Rank() == 0 && verbose {
		if diag.FinalError() < tolerance {
			io.PfGreen("> Success: it=%d t=%g err=%g\n", driver.It, driver.T, diag.FinalError())
		} else {
			io.PfRed("> Under-converged: it=%d t=%g err=%g\n", driver.It, driver.T, diag.FinalError())
		}
	}
}
