// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions and integration point rules for the
// flat reference cells (facets) used by membrane elements. Coordinates are the
// 2D local (in-plane) coordinates of an element; thus Gndim == 2 always.
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// MINDET is the minimum determinant allowed for the dxdR Jacobian
const MINDET = 1.0e-14

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r, s float64, derivs bool)

// Shape holds geometry data of a flat reference cell
type Shape struct {

	// geometry
	Type      string      // name; e.g. "tri3"
	Func      ShpFunc     // shape/derivs callback function
	Gndim     int         // geometry dimension == 2
	Nverts    int         // number of vertices; e.g. "qua8" => 8
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR *la.Matrix  // [gndim][gndim] derivatives of local coordinates w.r.t natural coordinates
	DRdx *la.Matrix  // [gndim][gndim] DRdx == inverse(DxdR)
}

// CalcAtIp calculates S, DSdR, DxdR, DRdx, G and J at integration point ip
//  Input:
//   x[2][nverts] -- matrix of local (in-plane) coordinates of element vertices
//   ip           -- integration point
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip.R, ip.S, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			dxdr := 0.0
			for n := 0; n < o.Nverts; n++ {
				dxdr += x[i][n] * o.DSdR[n][j]
			}
			o.DxdR.Set(i, j, dxdr)
		}
	}

	// dRdx := inv(dxdR)
	det := o.DxdR.Get(0, 0)*o.DxdR.Get(1, 1) - o.DxdR.Get(0, 1)*o.DxdR.Get(1, 0)
	if det < MINDET {
		return chk.Err("shp: cannot invert dxdR for cell %q: det = %g is too small", o.Type, det)
	}
	o.J = la.MatInvSmall(o.DRdx, o.DxdR, MINDET)

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx.Get(i, j)
			}
		}
	}
	return
}

// init_scratchpad initialises the scratchpad arrays
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = la.NewMatrix(o.Gndim, o.Gndim)
	o.DRdx = la.NewMatrix(o.Gndim, o.Gndim)
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	var p Shape
	p.Type = o.Type
	p.Func = o.Func
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.NatCoords = utl.Clone(o.NatCoords)
	p.init_scratchpad()
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil for unknown geoType
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// GetNverts returns the number of vertices of cell type; -1 for unknown types
func GetNverts(geoType string) int {
	s, ok := factory[geoType]
	if !ok {
		return -1
	}
	return s.Nverts
}

// register adds a shape to the factory; panics on duplicated names
func register(s *Shape) {
	if _, ok := factory[s.Type]; ok {
		chk.Panic("shape %q is already registered", s.Type)
	}
	s.init_scratchpad()
	factory[s.Type] = s
}
