// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bla implements batched (sequence) linear algebra operations over
// stacks of small dense matrices and vectors. Each operation applies the same
// small-matrix product to every item along the leading batch axis.
package bla

// MatMul computes c[k] = a[k]*b[k] for each item k in the batch
//  c -- [nbatch][m][n]
//  a -- [nbatch][m][p]
//  b -- [nbatch][p][n]
func MatMul(c, a, b [][][]float64) {
	for k := 0; k < len(c); k++ {
		for i := 0; i < len(c[k]); i++ {
			for j := 0; j < len(c[k][i]); j++ {
				c[k][i][j] = 0
				for l := 0; l < len(b[k]); l++ {
					c[k][i][j] += a[k][i][l] * b[k][l][j]
				}
			}
		}
	}
}

// MatTrMul computes c[k] = transpose(a[k])*b[k] for each item k in the batch
//  c -- [nbatch][m][n]
//  a -- [nbatch][p][m]
//  b -- [nbatch][p][n]
func MatTrMul(c, a, b [][][]float64) {
	for k := 0; k < len(c); k++ {
		for i := 0; i < len(c[k]); i++ {
			for j := 0; j < len(c[k][i]); j++ {
				c[k][i][j] = 0
				for l := 0; l < len(a[k]); l++ {
					c[k][i][j] += a[k][l][i] * b[k][l][j]
				}
			}
		}
	}
}

// MatMulTr computes c[k] = a[k]*transpose(b[k]) for each item k in the batch
//  c -- [nbatch][m][n]
//  a -- [nbatch][m][p]
//  b -- [nbatch][n][p]
func MatMulTr(c, a, b [][][]float64) {
	for k := 0; k < len(c); k++ {
		for i := 0; i < len(c[k]); i++ {
			for j := 0; j < len(c[k][i]); j++ {
				c[k][i][j] = 0
				for l := 0; l < len(a[k][i]); l++ {
					c[k][i][j] += a[k][i][l] * b[k][j][l]
				}
			}
		}
	}
}

// single-item helpers shared by the integrator ////////////////////////////////////////////////////

// MatTrVecMulAdd computes v += coef * transpose(a)*u for one small matrix
//  v -- [n]
//  a -- [m][n]
//  u -- [m]
func MatTrVecMulAdd(v []float64, coef float64, a [][]float64, u []float64) {
	for i := 0; i < len(v); i++ {
		for l := 0; l < len(u); l++ {
			v[i] += coef * a[l][i] * u[l]
		}
	}
}

// MatTrMulAdd3 computes c += coef * transpose(a)*b*a (congruence product)
//  c -- [n][n]
//  a -- [m][n]
//  b -- [m][m]
func MatTrMulAdd3(c [][]float64, coef float64, a, b [][]float64) {
	m := len(a)
	n := len(c)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for l := 0; l < m; l++ {
				for p := 0; p < m; p++ {
					c[i][j] += coef * a[l][i] * b[l][p] * a[p][j]
				}
			}
		}
	}
}

// RotVec computes w = R*v for a single 3-vector
func RotVec(w []float64, R [][]float64, v []float64) {
	for i := 0; i < 3; i++ {
		w[i] = R[i][0]*v[0] + R[i][1]*v[1] + R[i][2]*v[2]
	}
}

// RotMat computes B = R*A*transpose(R) for a single 3x3 block
//  note: B must not alias A
func RotMat(B, R, A [][]float64) {
	var aux [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			aux[i][j] = 0
			for l := 0; l < 3; l++ {
				aux[i][j] += R[i][l] * A[l][j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B[i][j] = 0
			for l := 0; l < 3; l++ {
				B[i][j] += aux[i][l] * R[j][l]
			}
		}
	}
}
