// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/akshaydolas09/gomembrane/bla"
	"github.com/akshaydolas09/gomembrane/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Geometry holds the reference-configuration mapping of a region in the local
// (in-plane) frame: shape function gradients, integration weight factors and
// per-element reference areas. It is built once per region geometry and shared
// read-only by all subsequent evaluations.
type Geometry struct {
	Nele   int             // number of elements
	Nverts int             // number of vertices per element
	Ips    []shp.Ipoint    // integration points of reference cell
	Bfg    [][][][]float64 // [nele][nip][2][nverts] gradients w.r.t local material coordinates
	Det    [][]float64     // [nele][nip] Jacobian determinant of local mapping
	Vol    []float64       // [nele] reference area (normalisation variable for output)
}

// NewGeometry maps the elements of a region into their local frames and
// computes the reference mapping data at all integration points.
//  coors -- [nele][nverts][3] global vertex coordinates
//  T     -- [nele][3][3] local frames (from TransMatrices)
//  nip   -- number of integration points (0 selects the default rule)
func NewGeometry(cellType string, nip int, coors [][][]float64, T [][][]float64) (g *Geometry, err error) {

	// shape structure and integration points
	shape := shp.Get(cellType, 1)
	if shape == nil {
		return nil, chk.Err("cannot get shape structure for cell type %q", cellType)
	}
	ips, err := shp.GetIps(cellType, nip)
	if err != nil {
		return nil, err
	}

	// allocate
	nele := len(coors)
	nverts := shape.Nverts
	g = &Geometry{
		Nele:   nele,
		Nverts: nverts,
		Ips:    ips,
		Bfg:    utl.Deep4alloc(nele, len(ips), 2, nverts),
		Det:    utl.Alloc(nele, len(ips)),
		Vol:    make([]float64, nele),
	}

	// transform vertex coordinates to the local frames: xloc = tr(T)*(v - v0);
	// the third (normal) row of the batched product is discarded
	dv := utl.Deep3alloc(nele, 3, nverts)
	xloc := utl.Deep3alloc(nele, 3, nverts)
	for iele := 0; iele < nele; iele++ {
		v := coors[iele]
		for m := 0; m < nverts; m++ {
			for i := 0; i < 3; i++ {
				dv[iele][i][m] = v[m][i] - v[0][i]
			}
		}
	}
	bla.MatTrMul(xloc, T, dv)

	// for each element: mapping data @ ips
	for iele := 0; iele < nele; iele++ {
		for idx, ip := range ips {
			if err = shape.CalcAtIp(xloc[iele][:2], ip, true); err != nil {
				return nil, chk.Err("mapping of element %d failed:\n%v", iele, err)
			}
			for m := 0; m < nverts; m++ {
				for a := 0; a < 2; a++ {
					g.Bfg[iele][idx][a][m] = shape.G[m][a]
				}
			}
			g.Det[iele][idx] = shape.J
			g.Vol[iele] += shape.J * ip.W
		}
	}
	return
}
