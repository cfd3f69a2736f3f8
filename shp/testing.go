// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {

		// compute function @ vertex natural coordinates
		shape.Func(shape.S, shape.DSdR, shape.NatCoords[0][n], shape.NatCoords[1][n], false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures against numerical values
func CheckDSdR(tst *testing.T, shape *Shape, r, s float64, tol float64, verbose bool) {

	// auxiliary
	S_tmp := make([]float64, shape.Nverts)
	dSdR_tmp := make([][]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, s, true)

	// numerical
	at := []float64{r, s}
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			msg := io.Sf("%s: dS%ddR%d @ (%5.2f,%5.2f)", shape.Type, n, i, r, s)
			chk.DerivScaSca(tst, msg, tol, shape.DSdR[n][i], at[i], 1e-1, verbose, func(t float64) float64 {
				rt, st := r, s
				if i == 0 {
					rt = t
				} else {
					st = t
				}
				shape.Func(S_tmp, dSdR_tmp, rt, st, false)
				return S_tmp[n]
			})
		}
	}
}
