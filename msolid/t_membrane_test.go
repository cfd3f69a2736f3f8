// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/akshaydolas09/gomembrane/ana"

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

// c33closure computes the out-of-plane stretch from the in-plane components
func c33closure(c11, c12, c22 float64) float64 {
	return 1.0 / (c11*c22 - c12*c12)
}

func Test_membrane01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("membrane01. undeformed state is stress free")

	mdl, err := New("mr-membrane")
	if err != nil {
		tst.Errorf("cannot allocate model:\n%v", err)
		return
	}

	for _, prms := range []dbf.Params{
		mdl.GetPrms(), // default parameter set
		{&dbf.P{N: "a1", V: 1.2}, &dbf.P{N: "a2", V: 0.3}},
		{&dbf.P{N: "a1", V: 80.0}, &dbf.P{N: "a2", V: 20.0}},
	} {
		err = mdl.Init(prms)
		if err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}

		// identity in-plane block and unit thickness stretch
		mtxC := [][][]float64{{{1, 0, 1}, {1, 0, 1}}}
		c33 := [][]float64{{1, 1}}
		sig := [][][]float64{{make([]float64, 3), make([]float64, 3)}}
		mdl.Stress(sig, mtxC, c33)
		io.Pforan("sig = %v\n", sig)
		chk.Array(tst, "S @ ip0", 1e-15, sig[0][0], []float64{0, 0, 0})
		chk.Array(tst, "S @ ip1", 1e-15, sig[0][1], []float64{0, 0, 0})
	}
}

func Test_membrane02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("membrane02. plane-stress closure and uniaxial stretch")

	var mdl MooneyRivlin
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "a1", V: 0.5},
		&dbf.P{N: "a2", V: 0.0},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// constrained stretch λ along x (neo-Hookean-reduced: a2 = 0)
	var sol ana.CtdStretch
	sol.Init(dbf.Params{&dbf.P{N: "a1", V: 0.5}})
	λ := 1.1
	c11, c22, C33 := sol.Deformation(λ)
	chk.Float64(tst, "c33 closure", 1e-15, c33closure(c11, 0, c22), C33)
	mtxC := [][][]float64{{{c11, 0, c22}}}
	c33 := [][]float64{{C33}}
	sig := [][][]float64{{make([]float64, 3)}}
	mdl.Stress(sig, mtxC, c33)
	io.Pforan("sig = %v\n", sig[0][0])
	sol.CheckStress(tst, λ, 1e-15, sig[0][0], chk.Verbose)
	if sig[0][0][0] < 0 || sig[0][0][1] < 0 {
		tst.Errorf("tension must produce non-negative in-plane stresses\n")
		return
	}

	// closure: S33 must vanish for arbitrary states once c33 comes from the
	// incompressibility relation
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "a1", V: 1.7},
		&dbf.P{N: "a2", V: 0.45},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	states := [][]float64{ // C11, C12, C22
		{1.21, 0.00, 1.00},
		{1.15, 0.08, 0.95},
		{0.90, -0.12, 1.30},
		{1.02, 0.30, 1.44},
	}
	for _, c := range states {
		mtxC := [][][]float64{{c}}
		c33 := [][]float64{{c33closure(c[0], c[1], c[2])}}
		s33 := [][]float64{{0}}
		mdl.NormalStress(s33, mtxC, c33)
		chk.Float64(tst, io.Sf("S33 @ C=%v", c), 1e-14, s33[0][0], 0)
	}
}

func Test_membrane03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("membrane03. tangent: symmetry and FD consistency")

	var mdl MooneyRivlin
	mdl.SetCoefs([]float64{0.8, 1.5}, []float64{0.2, 0.05}) // per-element coefficients

	states := [][]float64{ // C11, C12, C22 (one per element)
		{1.21, 0.05, 0.98},
		{0.95, -0.10, 1.30},
	}
	nele := len(states)
	mtxC := make([][][]float64, nele)
	c33 := make([][]float64, nele)
	D := make([][][][]float64, nele)
	for i, c := range states {
		mtxC[i] = [][]float64{c}
		c33[i] = []float64{c33closure(c[0], c[1], c[2])}
		D[i] = [][][]float64{{make([]float64, 3), make([]float64, 3), make([]float64, 3)}}
	}
	mdl.Tangent(D, mtxC, c33)

	for iele := 0; iele < nele; iele++ {

		// symmetry (mirroring policy)
		d := D[iele][0]
		io.Pforan("D%d = %v\n", iele, d)
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				chk.Float64(tst, io.Sf("D%d%d==D%d%d", i, j, j, i), 1e-17, d[i][j], d[j][i])
			}
		}

		// FD consistency: stress as function of the in-plane components, with
		// c33 following the closure. in the (E11, E22, 2*E12) strain pairing:
		//   D[i][0] = 2*dSi/dC11   D[i][1] = 2*dSi/dC22   D[i][2] = dSi/dC12
		c0 := states[iele]
		sigAt := func(c11, c12, c22 float64, i int) float64 {
			mc := [][][]float64{{{c11, c12, c22}}}
			cc := [][]float64{{c33closure(c11, c12, c22)}}
			sg := [][][]float64{{make([]float64, 3)}}
			one := MooneyRivlin{A1: []float64{mdl.A1[iele]}, A2: []float64{mdl.A2[iele]}}
			one.Stress(sg, mc, cc)
			return sg[0][0][i]
		}
		for i := 0; i < 3; i++ {
			chk.DerivScaSca(tst, io.Sf("D[%d][0]/2", i), 1e-6, d[i][0]/2.0, c0[0], 1e-3, chk.Verbose, func(t float64) float64 {
				return sigAt(t, c0[1], c0[2], i)
			})
			chk.DerivScaSca(tst, io.Sf("D[%d][1]/2", i), 1e-6, d[i][1]/2.0, c0[2], 1e-3, chk.Verbose, func(t float64) float64 {
				return sigAt(c0[0], c0[1], t, i)
			})
			chk.DerivScaSca(tst, io.Sf("D[%d][2]  ", i), 1e-6, d[i][2], c0[1], 1e-3, chk.Verbose, func(t float64) float64 {
				return sigAt(c0[0], t, c0[2], i)
			})
		}
	}
}
