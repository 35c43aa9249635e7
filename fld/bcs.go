// Copyright 2016 The Goconvect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

// ThermalBCs holds the per-side no-flux flags of the energy equation.
// A side without no-flux keeps its Dirichlet (pinned) values.
type ThermalBCs struct {
	NoFluxLeft   bool `json:"nofluxleft"`
	NoFluxRight  bool `json:"nofluxright"`
	NoFluxBottom bool `json:"nofluxbottom"`
	NoFluxTop    bool `json:"nofluxtop"`
}

// FlowBCs holds the per-side free-slip flags of the momentum equation
type FlowBCs struct {
	FreeSlipLeft   bool `json:"freeslipleft"`
	FreeSlipRight  bool `json:"freeslipright"`
	FreeSlipBottom bool `json:"freeslipbottom"`
	FreeSlipTop    bool `json:"freesliptop"`
}
