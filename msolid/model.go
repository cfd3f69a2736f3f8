// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models for membrane (plane-stress)
// finite elements. All evaluations are batched: quantities carry a leading
// element axis and an integration point axis.
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for membrane material models
//
// Packed storage conventions (per element, per integration point):
//  mtxC -- [nele][nip][3] in-plane right Cauchy-Green components (C11, C12, C22)
//  c33  -- [nele][nip] out-of-plane stretch component
//  sig  -- [nele][nip][3] second Piola-Kirchhoff stress (S11, S22, S12)
//  D    -- [nele][nip][3][3] material tangent moduli (symmetric)
type Model interface {

	// Init initialises the model with material parameters
	Init(prms dbf.Params) error

	// GetPrms gets (an example) of parameters
	GetPrms() dbf.Params

	// Stress computes the packed stress for the whole batch
	Stress(sig [][][]float64, mtxC [][][]float64, c33 [][]float64)

	// Tangent computes the packed tangent moduli for the whole batch
	Tangent(D [][][][]float64, mtxC [][][]float64, c33 [][]float64)
}

// allocators holds all available model allocators
var allocators = make(map[string]func() Model)

// New allocates a new model by name
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find model named %q", name)
	}
	return allocator(), nil
}
