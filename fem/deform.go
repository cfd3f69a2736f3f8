// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/akshaydolas09/gomembrane/bla"

	"github.com/cpmech/gosl/utl"
)

// LocalDisps transforms global nodal displacements into local frame components.
// Row m of elULoc[iele] is tr(T[iele]) * elU[iele][m], i.e. the batched product
// elULoc[iele] = elU[iele] * T[iele].
func LocalDisps(elULoc, elU, T [][][]float64) {
	bla.MatMul(elULoc, elU, T)
}

// DescribeDeformation computes the in-plane right Cauchy-Green components, the
// out-of-plane stretch and the Green-strain variation operator from local
// nodal displacements.
//
// The deformation gradient w.r.t. the in-plane material coordinates is the
// 2x3 matrix F = eye(2,3) + du with du = bfg*elULoc; then C = F*tr(F) and the
// through-thickness component follows in closed form from incompressibility:
//   c33 = 1/(C11*C22 - C12²)
//
//  elULoc -- [nele][nverts][3] local nodal displacements
//  geo    -- reference mapping (provides bfg)
//  mtxC   -- [nele][nip][3] output, packed (C11, C12, C22)
//  c33    -- [nele][nip] output
//  mtxB   -- [nele][nip][3][3*nverts] output; columns ordered component-major
//            (all ux, then uy, then uz)
func DescribeDeformation(mtxC [][][]float64, c33 [][]float64, mtxB [][][][]float64, elULoc [][][]float64, geo *Geometry) {
	nep := geo.Nverts
	nip := len(geo.Ips)
	F := utl.Deep3alloc(nip, 2, 3) // deformation gradients @ all ips of one element
	C := utl.Deep3alloc(nip, 2, 2) // in-plane Cauchy-Green blocks @ all ips
	for iele := 0; iele < geo.Nele; iele++ {

		// F = eye(2,3) + du @ each integration point
		for ip := 0; ip < nip; ip++ {
			bfg := geo.Bfg[iele][ip]
			for a := 0; a < 2; a++ {
				for i := 0; i < 3; i++ {
					F[ip][a][i] = 0
					if a == i {
						F[ip][a][i] = 1
					}
					for m := 0; m < nep; m++ {
						F[ip][a][i] += bfg[a][m] * elULoc[iele][m][i]
					}
				}
			}
		}

		// C = F*tr(F) (in-plane block) for the whole ip stack
		bla.MatMulTr(C, F, F)

		// packed components, closed-form c33 and Green-strain variation operator
		for ip := 0; ip < nip; ip++ {
			c11, c12, c22 := C[ip][0][0], C[ip][0][1], C[ip][1][1]
			mtxC[iele][ip][0] = c11
			mtxC[iele][ip][1] = c12
			mtxC[iele][ip][2] = c22
			c33[iele][ip] = 1.0 / (c11*c22 - c12*c12)

			bfg := geo.Bfg[iele][ip]
			b := mtxB[iele][ip]
			for i := 0; i < 3; i++ {
				for m := 0; m < nep; m++ {
					b[0][i*nep+m] = bfg[0][m] * F[ip][0][i]
					b[1][i*nep+m] = bfg[1][m] * F[ip][1][i]
					b[2][i*nep+m] = bfg[1][m]*F[ip][0][i] + bfg[0][m]*F[ip][1][i]
				}
			}
		}
	}
}
