// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bla

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_bla01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bla01. batched matrix products")

	a := [][][]float64{
		{
			{1, 2},
			{3, 4},
			{5, 6},
		},
		{
			{-1, 0},
			{2, 1},
			{0, 3},
		},
	}
	b := [][][]float64{
		{
			{1, 0, 1},
			{0, 1, 1},
			{1, 1, 0},
		},
		{
			{2, 0, 0},
			{0, 2, 0},
			{0, 0, 2},
		},
	}

	// c[k] = tr(a[k]) * b[k]
	c := [][][]float64{
		{make([]float64, 3), make([]float64, 3)},
		{make([]float64, 3), make([]float64, 3)},
	}
	MatTrMul(c, a, b)
	chk.Deep2(tst, "c0 = tr(a0)*b0", 1e-15, c[0], [][]float64{
		{6, 8, 4},
		{8, 10, 6},
	})
	chk.Deep2(tst, "c1 = tr(a1)*b1", 1e-15, c[1], [][]float64{
		{-2, 4, 0},
		{0, 2, 6},
	})

	// d[k] = b[k] * a[k]
	d := [][][]float64{
		{make([]float64, 2), make([]float64, 2), make([]float64, 2)},
		{make([]float64, 2), make([]float64, 2), make([]float64, 2)},
	}
	MatMul(d, b, a)
	chk.Deep2(tst, "d0 = b0*a0", 1e-15, d[0], [][]float64{
		{6, 8},
		{8, 10},
		{4, 6},
	})
	chk.Deep2(tst, "d1 = b1*a1", 1e-15, d[1], [][]float64{
		{-2, 0},
		{4, 2},
		{0, 6},
	})

	// e[k] = a[k] * tr(a[k])
	e := [][][]float64{
		{make([]float64, 3), make([]float64, 3), make([]float64, 3)},
		{make([]float64, 3), make([]float64, 3), make([]float64, 3)},
	}
	MatMulTr(e, a, a)
	chk.Deep2(tst, "e0 = a0*tr(a0)", 1e-15, e[0], [][]float64{
		{5, 11, 17},
		{11, 25, 39},
		{17, 39, 61},
	})
}

func Test_bla02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bla02. accumulating products and rotations")

	// v += coef * tr(a)*u
	a := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	u := []float64{1, -1}
	v := []float64{10, 10, 10}
	MatTrVecMulAdd(v, 2.0, a, u)
	chk.Array(tst, "v", 1e-15, v, []float64{4, 4, 4})

	// c += coef * tr(a)*b*a
	b := [][]float64{
		{2, 0},
		{0, 2},
	}
	c := [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	MatTrMulAdd3(c, 0.5, a, b)
	chk.Deep2(tst, "c = tr(a)*b*a", 1e-15, c, [][]float64{
		{17, 22, 27},
		{22, 29, 36},
		{27, 36, 45},
	})

	// rotation of vector and 3x3 block by permutation matrix
	R := [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}
	w := make([]float64, 3)
	RotVec(w, R, []float64{1, 2, 3})
	chk.Array(tst, "w = R*v", 1e-15, w, []float64{2, 3, 1})

	A := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	B := [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	RotMat(B, R, A)
	chk.Deep2(tst, "B = R*A*tr(R)", 1e-15, B, [][]float64{
		{5, 6, 4},
		{8, 9, 7},
		{2, 3, 1},
	})
}
