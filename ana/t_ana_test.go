// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_ctdstretch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ctdstretch01. constrained stretch solution")

	var sol CtdStretch
	sol.Init(dbf.Params{&dbf.P{N: "a1", V: 0.5}})

	// reference state
	c11, c22, c33 := sol.Deformation(1.0)
	chk.Float64(tst, "c11(1)", 1e-17, c11, 1.0)
	chk.Float64(tst, "c22(1)", 1e-17, c22, 1.0)
	chk.Float64(tst, "c33(1)", 1e-17, c33, 1.0)
	s11, s22 := sol.Stress(1.0)
	chk.Float64(tst, "s11(1)", 1e-17, s11, 0.0)
	chk.Float64(tst, "s22(1)", 1e-17, s22, 0.0)
	e11, e33 := sol.Strain(1.0)
	chk.Float64(tst, "e11(1)", 1e-17, e11, 0.0)
	chk.Float64(tst, "e33(1)", 1e-17, e33, 0.0)

	// stretched state: incompressible, tensile, thinner
	for _, λ := range []float64{1.05, 1.2, 1.7} {
		c11, c22, c33 = sol.Deformation(λ)
		chk.Float64(tst, io.Sf("det C (λ=%g)", λ), 1e-15, c11*c22*c33, 1.0)
		s11, s22 = sol.Stress(λ)
		if s11 <= 0 || s22 <= 0 {
			tst.Errorf("stretch λ=%g must produce tensile stresses (got %g, %g)\n", λ, s11, s22)
			return
		}
		if s22 >= s11 {
			tst.Errorf("lateral stress must stay below the axial one (λ=%g)\n", λ)
			return
		}
		e11, e33 = sol.Strain(λ)
		chk.Float64(tst, io.Sf("e11 (λ=%g)", λ), 1e-15, e11, (c11-1.0)/2.0)
		chk.Float64(tst, io.Sf("e33 (λ=%g)", λ), 1e-15, e33, (c33-1.0)/2.0)
	}
}
