// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the residual, tangent stiffness and post-processing
// contributions of hyperelastic (Mooney-Rivlin) membrane finite elements.
// Element geometry is mapped into a per-element local frame, the plane-stress
// constitutive response is evaluated there, and the integrated results are
// rotated back to the global structural frame. All quantities are batched with
// a leading element axis and an integration point axis.
package fem

import (
	"github.com/akshaydolas09/gomembrane/shp"

	"github.com/cpmech/gosl/chk"
)

// Region holds a read-only view of one mesh region: the vertices and the
// connectivity of a set of elements sharing one cell type. It stands in for
// the mesh collaborator of the surrounding assembly framework.
type Region struct {
	CellType string      // cell type of all elements; e.g. "tri3"
	Verts    [][]float64 // [nvert][3] global coordinates of vertices
	Cells    [][]int     // [nele][nverts] vertex ids of each element
}

// Nele returns the number of elements
func (o Region) Nele() int { return len(o.Cells) }

// Nverts returns the number of vertices per element
func (o Region) Nverts() int { return shp.GetNverts(o.CellType) }

// Check verifies connectivity and dimensions
func (o Region) Check() (err error) {
	nverts := o.Nverts()
	if nverts < 0 {
		return chk.Err("unknown cell type %q", o.CellType)
	}
	for iele, cell := range o.Cells {
		if len(cell) != nverts {
			return chk.Err("element %d has %d vertices; cell type %q requires %d", iele, len(cell), o.CellType, nverts)
		}
		for _, iv := range cell {
			if iv < 0 || iv >= len(o.Verts) {
				return chk.Err("element %d references out-of-range vertex %d", iele, iv)
			}
		}
	}
	for iv, v := range o.Verts {
		if len(v) != 3 {
			return chk.Err("vertex %d must have 3 coordinates", iv)
		}
	}
	return
}

// ElemCoors gathers the vertex coordinates of each element
//  coors -- [nele][nverts][3]
func (o Region) ElemCoors() (coors [][][]float64) {
	coors = make([][][]float64, o.Nele())
	for iele, cell := range o.Cells {
		coors[iele] = make([][]float64, len(cell))
		for m, iv := range cell {
			coors[iele][m] = o.Verts[iv]
		}
	}
	return
}

// ElemDisps gathers the nodal displacements of each element from the global
// displacement array U [nvert][3]
//  elU -- [nele][nverts][3] output
func (o Region) ElemDisps(elU [][][]float64, U [][]float64) {
	for iele, cell := range o.Cells {
		for m, iv := range cell {
			copy(elU[iele][m], U[iv])
		}
	}
}
