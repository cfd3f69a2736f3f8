// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MooneyRivlin implements the incompressible Mooney-Rivlin law for membranes
// under the plane-stress assumption. The out-of-plane stretch C33 is eliminated
// in closed form (no iteration): incompressibility gives
//   C33 = 1 / (C11*C22 - C12²)
// and the normal stress condition S33 = 0 then determines the pressure
//   p = C33 * (2*a1 + 2*a2*(C11 + C22))
// which appears in both the stress and the tangent, making the two consistent
// derivatives of one strain-energy potential.
//
// Reference: Baoguo Wu, Xingwen Du and Huifeng Tan: A three-dimensional FE
// nonlinear analysis of membranes, Computers & Structures 59 (1996),
// no. 4, 601-605.
type MooneyRivlin struct {

	// coefficients: per-element when len == nele; uniform when len == 1.
	// only the first component of each parameter set participates in the
	// closed-form relations
	A1 []float64
	A2 []float64
}

// add model to factory
func init() {
	allocators["mr-membrane"] = func() Model { return new(MooneyRivlin) }
}

// Init initialises model with uniform coefficients
func (o *MooneyRivlin) Init(prms dbf.Params) (err error) {
	o.A1 = []float64{0}
	o.A2 = []float64{0}
	for _, p := range prms {
		switch p.N {
		case "a1":
			o.A1[0] = p.V
		case "a2":
			o.A2[0] = p.V
		default:
			return chk.Err("mr-membrane: parameter named %q is invalid", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o MooneyRivlin) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "a1", V: 0.5},
		&dbf.P{N: "a2", V: 0.0},
	}
}

// SetCoefs sets per-element coefficient arrays (len(a1) must be 1 or nele)
func (o *MooneyRivlin) SetCoefs(a1, a2 []float64) {
	o.A1 = a1
	o.A2 = a2
}

// coefs returns the doubled coefficients a12 = 2*a1 and a22 = 2*a2 of element iele
func (o MooneyRivlin) coefs(iele int) (a12, a22 float64) {
	i1, i2 := 0, 0
	if len(o.A1) > 1 {
		i1 = iele
	}
	if len(o.A2) > 1 {
		i2 = iele
	}
	return 2.0 * o.A1[i1], 2.0 * o.A2[i2]
}

// Stress computes the packed stress (S11, S22, S12) for the whole batch
func (o MooneyRivlin) Stress(sig [][][]float64, mtxC [][][]float64, c33 [][]float64) {
	for iele := 0; iele < len(sig); iele++ {
		a12, a22 := o.coefs(iele)
		for ip := 0; ip < len(sig[iele]); ip++ {
			c11, c12, c22 := mtxC[iele][ip][0], mtxC[iele][ip][1], mtxC[iele][ip][2]
			C33 := c33[iele][ip]
			pressure := C33 * (a12 + a22*(c11+c22))
			sig[iele][ip][0] = -pressure*c22*C33 + a12 + a22*(c22+C33)
			sig[iele][ip][1] = -pressure*c11*C33 + a12 + a22*(c11+C33)
			sig[iele][ip][2] = +pressure*c12*C33 - a22*c12
		}
	}
}

// Tangent computes the packed symmetric tangent moduli for the whole batch.
// The lower triangle is computed and the upper triangle is mirrored from it:
// the independently derived upper-triangle expressions found in the literature
// disagree with the lower-triangle ones and must not be used.
func (o MooneyRivlin) Tangent(D [][][][]float64, mtxC [][][]float64, c33 [][]float64) {
	for iele := 0; iele < len(D); iele++ {
		a12, a22 := o.coefs(iele)
		for ip := 0; ip < len(D[iele]); ip++ {
			c11, c12, c22 := mtxC[iele][ip][0], mtxC[iele][ip][1], mtxC[iele][ip][2]
			C33 := c33[iele][ip]
			pressure := C33 * (a12 + a22*(c11+c22))

			dp11 := a22*C33 - pressure*c22*C33
			dp22 := a22*C33 - pressure*c11*C33
			dp12 := 2.0 * pressure * c12 * C33

			d := D[iele][ip]

			// D_11, D_22, D_33
			d[0][0] = -2.0 * ((a22-pressure*c22)*c22*C33*C33 + C33*c22*dp11)
			d[1][1] = -2.0 * ((a22-pressure*c11)*c11*C33*C33 + C33*c11*dp22)
			d[2][2] = -a22 + pressure*(C33+2.0*c12*c12*C33*C33) + c12*C33*dp12

			// D_21, D_31, D_32
			d[1][0] = 2.0 * ((a22 - pressure*C33 - (a22-pressure*c11)*c22*C33*C33) - C33*c11*dp11)
			d[2][0] = 2.0 * (-pressure*c12*c22*C33*C33 + c12*C33*dp11)
			d[2][1] = 2.0 * (-pressure*c12*c11*C33*C33 + c12*C33*dp22)

			// mirror lower triangle
			d[0][1] = d[1][0]
			d[0][2] = d[2][0]
			d[1][2] = d[2][1]
		}
	}
}

// NormalStress computes the out-of-plane stress component S33 for the whole
// batch. With c33 from the incompressibility closure, S33 vanishes identically;
// this is exposed for verification of the plane-stress constraint.
func (o MooneyRivlin) NormalStress(s33 [][]float64, mtxC [][][]float64, c33 [][]float64) {
	for iele := 0; iele < len(s33); iele++ {
		a12, a22 := o.coefs(iele)
		for ip := 0; ip < len(s33[iele]); ip++ {
			c11, c22 := mtxC[iele][ip][0], mtxC[iele][ip][2]
			C33 := c33[iele][ip]
			pressure := C33 * (a12 + a22*(c11+c22))
			s33[iele][ip] = a12 + a22*(c11+c22) - pressure/C33
		}
	}
}
