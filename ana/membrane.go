// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// CtdStretch implements the analytical response of an incompressible
// neo-Hookean membrane (Mooney-Rivlin with a2 = 0) under plane stress and a
// constrained uniform stretch λ along the first in-plane axis: the lateral
// in-plane stretch is held at 1 and only the thickness is free to change.
//
//        ↑ y (held)
//        ---------
//        |       |
//        |       | ---> λ x
//        ---------
type CtdStretch struct {

	// input
	a1 float64 // first Mooney-Rivlin coefficient
	h0 float64 // reference thickness
}

// Init initialises this structure
func (o *CtdStretch) Init(prms dbf.Params) {

	// default values
	o.a1 = 0.5
	o.h0 = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a1":
			o.a1 = p.V
		case "h0":
			o.h0 = p.V
		}
	}
}

// Deformation returns the deformation state for stretch λ
func (o CtdStretch) Deformation(λ float64) (c11, c22, c33 float64) {
	return λ * λ, 1.0, 1.0 / (λ * λ)
}

// Stress computes the in-plane second Piola-Kirchhoff stresses for stretch λ
func (o CtdStretch) Stress(λ float64) (s11, s22 float64) {
	a12 := 2.0 * o.a1
	s11 = a12 * (1.0 - math.Pow(λ, -4))
	s22 = a12 * (1.0 - math.Pow(λ, -2))
	return
}

// Strain computes the nonzero Green strain components for stretch λ
func (o CtdStretch) Strain(λ float64) (e11, e33 float64) {
	return (λ*λ - 1.0) / 2.0, (1.0/(λ*λ) - 1.0) / 2.0
}

// CheckStress compares a packed stress (S11, S22, S12) against the solution
func (o CtdStretch) CheckStress(tst *testing.T, λ, tol float64, sig []float64, verbose bool) {
	s11, s22 := o.Stress(λ)
	chk.AnaNum(tst, "S11", tol, sig[0], s11, verbose)
	chk.AnaNum(tst, "S22", tol, sig[1], s22, verbose)
	chk.AnaNum(tst, "S12", tol, sig[2], 0, verbose)
}
