// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/akshaydolas09/gomembrane/bla"
)

// GreenStrainSym3D packs the 3D Green strain tensor at one integration point:
// E = (C - I)/2 with the through-thickness component from c33 and zero
// placeholders for the transverse shear the membrane model cannot provide.
//  out -- [6] packed (11, 22, 33, 12, 13, 23)
func GreenStrainSym3D(out []float64, c []float64, c33 float64) {
	out[0] = 0.5 * (c[0] - 1.0)
	out[1] = 0.5 * (c[2] - 1.0)
	out[2] = 0.5 * (c33 - 1.0)
	out[3] = 0.5 * c[1]
	out[4] = 0.0
	out[5] = 0.0
}

// StressSym3D packs the membrane stress at one integration point into a 3D
// symmetric tensor; normal and transverse-shear components outside the
// membrane plane are zero placeholders.
//  out -- [6] packed (11, 22, 33, 12, 13, 23)
func StressSym3D(out []float64, s []float64) {
	out[0] = s[0]
	out[1] = s[1]
	out[2] = 0.0
	out[3] = s[2]
	out[4] = 0.0
	out[5] = 0.0
}

// rotSym3D rotates a packed symmetric 3D tensor to the global frame:
// unpacked, A_glob = T*A*tr(T)
func rotSym3D(p []float64, T [][]float64) {
	A := [][]float64{
		{p[0], p[3], p[4]},
		{p[3], p[1], p[5]},
		{p[4], p[5], p[2]},
	}
	B := [][]float64{make([]float64, 3), make([]float64, 3), make([]float64, 3)}
	bla.RotMat(B, T, A)
	p[0], p[1], p[2] = B[0][0], B[1][1], B[2][2]
	p[3], p[4], p[5] = B[0][1], B[0][2], B[1][2]
}

// OutputChunk integrates, normalises and rotates the post-processed field of
// the elements in chunk c into rows [c.Lo,c.Hi) of out. Same sharing contract
// as ResidualChunk.
func (o *Term) OutputChunk(mode Mode, out [][]float64, c Chunk) (err error) {
	var val [6]float64
	for iele := c.Lo; iele < c.Hi; iele++ {

		// integrate field over integration points
		res := out[iele]
		for i := 0; i < 6; i++ {
			res[i] = 0
		}
		for ip, p := range o.Geo.Ips {
			if mode == OutStrain {
				GreenStrainSym3D(val[:], o.mtxC[iele][ip], o.c33[iele][ip])
			} else {
				StressSym3D(val[:], o.sig[iele][ip])
			}
			coef := o.Geo.Det[iele][ip] * p.W
			for i := 0; i < 6; i++ {
				res[i] += coef * val[i]
			}
		}

		// normalise by reference area and rotate to global frame
		for i := 0; i < 6; i++ {
			res[i] /= o.Geo.Vol[iele]
		}
		rotSym3D(res, o.T[iele])
	}
	return
}
