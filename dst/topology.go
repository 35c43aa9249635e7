// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dst implements the distributed-grid topology and the halo-exchange
// synchronisation boundary
package dst

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// Topology is the runtime context of one distributed-grid partition: rank,
// neighbourhood and the synchronisation entry points. The decomposition is
// one-dimensional along x with a one-node ghost overlap. With MPI off, or a
// single process, every operation degrades to a local no-op.
type Topology struct {
	Nx, Ny int  // cell counts of the local partition
	Proc   int  // processor id
	Nproc  int  // number of processors
	Left   int  // left neighbour rank; -1 at the domain edge
	Right  int  // right neighbour rank; -1 at the domain edge
	Distr  bool // distributed run
}

// NewTopology initialises the process-group context; call once at process
// start (after mpi.Start) and pair with Finalize at process end
func NewTopology(nx, ny int) (o *Topology) {
	o = new(Topology)
	o.Nx, o.Ny = nx, ny
	o.Nproc = 1
	o.Left, o.Right = -1, -1
	if mpi.IsOn() {
		o.Proc = mpi.Rank()
		o.Nproc = mpi.Size()
		o.Distr = o.Nproc > 1
		if o.Proc > 0 {
			o.Left = o.Proc - 1
		}
		if o.Proc < o.Nproc-1 {
			o.Right = o.Proc + 1
		}
	}
	return
}

// Finalize releases the process-group context
func (o *Topology) Finalize() {
}

// HaloExchange synchronises the ghost columns of the given fields with the
// left and right neighbours. It blocks until both sides are consistent; any
// transport failure is fatal and aborts the run without retry. Fields are
// indexed [i][j] with i along the decomposed axis.
func (o *Topology) HaloExchange(fields ...[][]float64) {
	if !o.Distr {
		return
	}
	for _, f := range fields {
		n := len(f)
		if n < 4 {
			chk.Panic("halo exchange failed: field with %d rows cannot carry a ghost overlap", n)
		}
		// even ranks send first to keep the pairwise exchange deadlock-free
		if o.Proc%2 == 0 {
			o.sendRecv(f, n)
		} else {
			o.recvSend(f, n)
		}
	}
}

// MaxAll reduces x to its global maximum over all partitions
func (o *Topology) MaxAll(x float64) float64 {
	if !o.Distr {
		return x
	}
	buf, wsp := []float64{x}, []float64{0}
	mpi.AllReduceMax(buf, wsp)
	return buf[0]
}

// MinAll reduces x to its global minimum over all partitions
func (o *Topology) MinAll(x float64) float64 {
	if !o.Distr {
		return x
	}
	buf, wsp := []float64{x}, []float64{0}
	mpi.AllReduceMin(buf, wsp)
	return buf[0]
}

// sendRecv talks to both neighbours, sending first
func (o *Topology) sendRecv(f [][]float64, n int) {
	if o.Right >= 0 {
		mpi.DblSend(f[n-2], o.Right)
		mpi.DblRecv(f[n-1], o.Right)
	}
	if o.Left >= 0 {
		mpi.DblSend(f[1], o.Left)
		mpi.DblRecv(f[0], o.Left)
	}
}

// recvSend talks to both neighbours, receiving first
func (o *Topology) recvSend(f [][]float64, n int) {
	if o.Left >= 0 {
		mpi.DblRecv(f[0], o.Left)
		mpi.DblSend(f[1], o.Left)
	}
	if o.Right >= 0 {
		mpi.DblRecv(f[n-1], o.Right)
		mpi.DblSend(f[n-2], o.Right)
	}
}
