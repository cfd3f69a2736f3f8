// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// TangentStressMatrix computes the initial-stress (geometric) contribution to
// the tangent stiffness: outer products of shape function gradients weighted
// by the current stress, replicated on the three displacement-component
// diagonal blocks.
//  sig -- [nele][nip][3] packed stress (S11, S22, S12)
//  kts -- [nele][nip][3*nverts][3*nverts] output (zeroed here)
func TangentStressMatrix(kts [][][][]float64, sig [][][]float64, geo *Geometry) {
	nep := geo.Nverts
	for iele := 0; iele < geo.Nele; iele++ {
		for ip := 0; ip < len(geo.Ips); ip++ {
			bfg := geo.Bfg[iele][ip]
			s := sig[iele][ip]
			k := kts[iele][ip]
			for i := 0; i < 3*nep; i++ {
				for j := 0; j < 3*nep; j++ {
					k[i][j] = 0
				}
			}
			for m := 0; m < nep; m++ {
				for n := 0; n < nep; n++ {
					aux := s[0]*bfg[0][m]*bfg[0][n] + s[2]*(bfg[0][m]*bfg[1][n]+bfg[1][m]*bfg[0][n]) + s[1]*bfg[1][m]*bfg[1][n]
					k[m][n] = aux
					k[nep+m][nep+n] = aux
					k[2*nep+m][2*nep+n] = aux
				}
			}
		}
	}
}
