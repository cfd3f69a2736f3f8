// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MINAREA is the minimum basis-vector norm allowed when building local frames
const MINAREA = 1.0e-14

// TransMatrices builds the orthonormal local frame of each element from the
// global coordinates of its vertices. The columns of T are (t1, t2, n):
// t1 along the first edge, n normal to the (linearised) element plane and
// t2 = n × t1; thus the basis is right-handed and local z is normal to the
// membrane surface. Transforming a global vector v into local components is
// tr(T)*v; back to global is T*v.
//  coors -- [nele][nverts][3] global vertex coordinates
//  T     -- [nele][3][3] output
func TransMatrices(coors [][][]float64) (T [][][]float64, err error) {
	nele := len(coors)
	T = utl.Deep3alloc(nele, 3, 3)
	var t1, t2, n [3]float64
	for iele := 0; iele < nele; iele++ {
		v := coors[iele]
		last := len(v) - 1
		for i := 0; i < 3; i++ {
			t1[i] = v[1][i] - v[0][i]
			t2[i] = v[last][i] - v[0][i]
		}

		// n = t1 × t2;  t2 = n × t1
		n[0] = t1[1]*t2[2] - t1[2]*t2[1]
		n[1] = t1[2]*t2[0] - t1[0]*t2[2]
		n[2] = t1[0]*t2[1] - t1[1]*t2[0]
		t2[0] = n[1]*t1[2] - n[2]*t1[1]
		t2[1] = n[2]*t1[0] - n[0]*t1[2]
		t2[2] = n[0]*t1[1] - n[1]*t1[0]

		e1 := math.Sqrt(t1[0]*t1[0] + t1[1]*t1[1] + t1[2]*t1[2])
		e2 := math.Sqrt(t2[0]*t2[0] + t2[1]*t2[1] + t2[2]*t2[2])
		en := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if e1 < MINAREA || e2 < MINAREA || en < MINAREA {
			return nil, chk.Err("element %d is degenerate (zero area): cannot build local frame", iele)
		}

		for i := 0; i < 3; i++ {
			T[iele][i][0] = t1[i] / e1
			T[iele][i][1] = t2[i] / e2
			T[iele][i][2] = n[i] / en
		}
	}
	return
}
