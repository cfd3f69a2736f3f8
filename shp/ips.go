// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds integration (quadrature) point natural coordinates and weight
type Ipoint struct {
	R, S, W float64
}

// integration point tables
var (
	ips_tri_1 = []Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 1.0 / 2.0},
	}

	ips_tri_3 = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0},
	}

	ips_qua_4 = func() []Ipoint {
		g := 1.0 / math.Sqrt(3.0)
		return []Ipoint{
			{-g, -g, 1.0},
			{g, -g, 1.0},
			{g, g, 1.0},
			{-g, g, 1.0},
		}
	}()

	ips_qua_9 = func() []Ipoint {
		g := math.Sqrt(3.0 / 5.0)
		x := []float64{-g, 0, g}
		w := []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
		var pts []Ipoint
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				pts = append(pts, Ipoint{x[i], x[j], w[i] * w[j]})
			}
		}
		return pts
	}()
)

// GetIps returns a set of integration points for cell type geoType
//  nip -- number of integration points; 0 selects the default rule
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	switch geoType {
	case "tri3", "tri6":
		switch nip {
		case 0, 3:
			return ips_tri_3, nil
		case 1:
			return ips_tri_1, nil
		}
	case "qua4", "qua8":
		switch nip {
		case 0, 4:
			return ips_qua_4, nil
		case 9:
			return ips_qua_9, nil
		}
	default:
		return nil, chk.Err("cannot get integration points for unknown cell type %q", geoType)
	}
	return nil, chk.Err("cell type %q has no rule with nip=%d", geoType, nip)
}
