// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// quadrilaterals
//
//    3---------2        3----6----2
//    |    s    |        |    s    |
//    |    |    |        7    |    5
//    |    +--r |        |    +--r |
//    |         |        |         |
//    0---------1        0----4----1

func init() {

	register(&Shape{
		Type:   "qua4",
		Gndim:  2,
		Nverts: 4,
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
		Func: func(S []float64, dSdR [][]float64, r, s float64, derivs bool) {
			S[0] = (1.0 - r) * (1.0 - s) / 4.0
			S[1] = (1.0 + r) * (1.0 - s) / 4.0
			S[2] = (1.0 + r) * (1.0 + s) / 4.0
			S[3] = (1.0 - r) * (1.0 + s) / 4.0
			if !derivs {
				return
			}
			dSdR[0][0], dSdR[0][1] = -(1.0-s)/4.0, -(1.0-r)/4.0
			dSdR[1][0], dSdR[1][1] = (1.0-s)/4.0, -(1.0+r)/4.0
			dSdR[2][0], dSdR[2][1] = (1.0+s)/4.0, (1.0+r)/4.0
			dSdR[3][0], dSdR[3][1] = -(1.0+s)/4.0, (1.0-r)/4.0
		},
	})

	register(&Shape{
		Type:   "qua8",
		Gndim:  2,
		Nverts: 8,
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1},
			{-1, -1, 1, 1, -1, 0, 1, 0},
		},
		Func: func(S []float64, dSdR [][]float64, r, s float64, derivs bool) {
			S[0] = (1.0 - r) * (1.0 - s) * (-r - s - 1.0) / 4.0
			S[1] = (1.0 + r) * (1.0 - s) * (r - s - 1.0) / 4.0
			S[2] = (1.0 + r) * (1.0 + s) * (r + s - 1.0) / 4.0
			S[3] = (1.0 - r) * (1.0 + s) * (-r + s - 1.0) / 4.0
			S[4] = (1.0 - r*r) * (1.0 - s) / 2.0
			S[5] = (1.0 + r) * (1.0 - s*s) / 2.0
			S[6] = (1.0 - r*r) * (1.0 + s) / 2.0
			S[7] = (1.0 - r) * (1.0 - s*s) / 2.0
			if !derivs {
				return
			}
			dSdR[0][0] = (1.0 - s) * (2.0*r + s) / 4.0
			dSdR[0][1] = (1.0 - r) * (r + 2.0*s) / 4.0
			dSdR[1][0] = (1.0 - s) * (2.0*r - s) / 4.0
			dSdR[1][1] = (1.0 + r) * (2.0*s - r) / 4.0
			dSdR[2][0] = (1.0 + s) * (2.0*r + s) / 4.0
			dSdR[2][1] = (1.0 + r) * (r + 2.0*s) / 4.0
			dSdR[3][0] = (1.0 + s) * (2.0*r - s) / 4.0
			dSdR[3][1] = (1.0 - r) * (2.0*s - r) / 4.0
			dSdR[4][0] = -r * (1.0 - s)
			dSdR[4][1] = -(1.0 - r*r) / 2.0
			dSdR[5][0] = (1.0 - s*s) / 2.0
			dSdR[5][1] = -s * (1.0 + r)
			dSdR[6][0] = -r * (1.0 + s)
			dSdR[6][1] = (1.0 - r*r) / 2.0
			dSdR[7][0] = -(1.0 - s*s) / 2.0
			dSdR[7][1] = -s * (1.0 - r)
		},
	})
}
