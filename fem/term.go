// Copyright 2016 The Gomembrane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/akshaydolas09/gomembrane/bla"
	"github.com/akshaydolas09/gomembrane/msolid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Mode selects what an evaluation call produces
type Mode int

const (
	Residual  Mode = iota // internal force (residual) vector per element
	Tangent               // tangent stiffness matrix per element
	OutStrain             // post-processed Green strain field
	OutStress             // post-processed stress field
)

// Chunk is a half-open range [Lo,Hi) of element indices processed as a unit
type Chunk struct {
	Lo, Hi int
}

// Chunks partitions nele elements into chunks of at most size elements.
// size < 1 yields a single chunk covering the whole batch. Chunk boundaries
// carry no semantic meaning: results are identical for any size.
func Chunks(nele, size int) (chunks []Chunk) {
	if size < 1 || size > nele {
		size = nele
	}
	for lo := 0; lo < nele; lo += size {
		hi := lo + size
		if hi > nele {
			hi = nele
		}
		chunks = append(chunks, Chunk{lo, hi})
	}
	return
}

// Term evaluates the membrane contribution of one region. The local frames and
// the reference mapping are built lazily on the first evaluation and reused
// afterwards (geometry is configuration independent; only displacements change
// between nonlinear iterations). Call ResetGeometry after mesh changes.
type Term struct {

	// input (read-only collaborators)
	Reg       *Region      // mesh region
	Mdl       msolid.Model // constitutive model
	H0        []float64    // [nele] or [1] reference thickness
	Nip       int          // number of integration points (0 = default rule)
	ChunkSize int          // elements per chunk (0 = single chunk)

	// geometry cache (built lazily, then read-only)
	T   [][][]float64 // [nele][3][3] local frames
	Geo *Geometry     // reference mapping in local frames

	// scratchpad. recomputed @ each evaluation
	elU    [][][]float64   // [nele][nverts][3] global nodal displacements
	elULoc [][][]float64   // [nele][nverts][3] local nodal displacements
	mtxC   [][][]float64   // [nele][nip][3] in-plane Cauchy-Green components
	c33    [][]float64     // [nele][nip] out-of-plane stretch
	mtxB   [][][][]float64 // [nele][nip][3][3*nverts] strain-displacement operator
	sig    [][][]float64   // [nele][nip][3] stress
	mtxD   [][][][]float64 // [nele][nip][3][3] material tangent
	kts    [][][][]float64 // [nele][nip][3n][3n] geometric stiffness density
}

// NewTerm returns a membrane term evaluator for one region
//  h0 -- reference thickness; per-element [nele] or uniform [1]
func NewTerm(reg *Region, mdl msolid.Model, h0 []float64, nip, chunkSize int) *Term {
	return &Term{Reg: reg, Mdl: mdl, H0: h0, Nip: nip, ChunkSize: chunkSize}
}

// ResetGeometry invalidates the cached local frames and reference mapping
func (o *Term) ResetGeometry() {
	o.T = nil
	o.Geo = nil
}

// thick returns the reference thickness of element iele
func (o Term) thick(iele int) float64 {
	if len(o.H0) > 1 {
		return o.H0[iele]
	}
	return o.H0[0]
}

// buildGeometry constructs the lazy caches (frames and reference mapping) and
// allocates the scratchpad
func (o *Term) buildGeometry() (err error) {
	if err = o.Reg.Check(); err != nil {
		return
	}
	nele := o.Reg.Nele()
	if len(o.H0) != 1 && len(o.H0) != nele {
		return chk.Err("thickness array has %d entries; must be 1 or nele=%d", len(o.H0), nele)
	}
	coors := o.Reg.ElemCoors()
	if o.T, err = TransMatrices(coors); err != nil {
		return
	}
	if o.Geo, err = NewGeometry(o.Reg.CellType, o.Nip, coors, o.T); err != nil {
		return
	}

	// scratchpad
	nverts := o.Geo.Nverts
	nip := len(o.Geo.Ips)
	o.elU = utl.Deep3alloc(nele, nverts, 3)
	o.elULoc = utl.Deep3alloc(nele, nverts, 3)
	o.mtxC = utl.Deep3alloc(nele, nip, 3)
	o.c33 = utl.Alloc(nele, nip)
	o.mtxB = utl.Deep4alloc(nele, nip, 3, 3*nverts)
	o.sig = utl.Deep3alloc(nele, nip, 3)
	o.mtxD = utl.Deep4alloc(nele, nip, 3, 3)
	o.kts = utl.Deep4alloc(nele, nip, 3*nverts, 3*nverts)
	return
}

// prepare updates the deformation and constitutive state for the current
// displacements U [nvert][3]; with withTangent, the material tangent and the
// geometric stiffness densities are computed as well
func (o *Term) prepare(U [][]float64, withTangent bool) (err error) {
	if o.T == nil {
		if err = o.buildGeometry(); err != nil {
			return
		}
	}
	if len(U) != len(o.Reg.Verts) {
		return chk.Err("displacement array has %d entries; mesh has %d vertices", len(U), len(o.Reg.Verts))
	}
	o.Reg.ElemDisps(o.elU, U)
	LocalDisps(o.elULoc, o.elU, o.T)
	DescribeDeformation(o.mtxC, o.c33, o.mtxB, o.elULoc, o.Geo)
	o.Mdl.Stress(o.sig, o.mtxC, o.c33)
	if withTangent {
		o.Mdl.Tangent(o.mtxD, o.mtxC, o.c33)
		TangentStressMatrix(o.kts, o.sig, o.Geo)
	}
	return
}

// EvalResidual computes the internal force (residual) contribution of every
// element, rotated to the global frame.
//  F -- [nele][3*nverts] output; DOFs ordered component-major per element
//       (all ux, then uy, then uz); node m of element e contributes at rows
//       (m, nverts+m, 2*nverts+m)
//  U -- [nvert][3] current global displacements
func (o *Term) EvalResidual(F [][]float64, U [][]float64) (err error) {
	if err = o.prepare(U, false); err != nil {
		return
	}
	for _, c := range Chunks(o.Reg.Nele(), o.ChunkSize) {
		if err = o.ResidualChunk(F, c); err != nil {
			return
		}
	}
	return
}

// ResidualChunk integrates and rotates the residual of the elements in chunk c
// into rows [c.Lo,c.Hi) of F. The state set by the last prepare is shared
// read-only: distinct chunks write disjoint rows and may run concurrently.
func (o *Term) ResidualChunk(F [][]float64, c Chunk) (err error) {
	nep := o.Geo.Nverts
	var v, w [3]float64
	for iele := c.Lo; iele < c.Hi; iele++ {

		// integrate force density tr(B)*S*h0 over integration points
		f := F[iele]
		utl.Fill(f, 0)
		for ip, p := range o.Geo.Ips {
			coef := o.Geo.Det[iele][ip] * p.W * o.thick(iele)
			bla.MatTrVecMulAdd(f, coef, o.mtxB[iele][ip], o.sig[iele][ip])
		}

		// rotate to global frame, one node at a time
		for m := 0; m < nep; m++ {
			v[0], v[1], v[2] = f[m], f[nep+m], f[2*nep+m]
			bla.RotVec(w[:], o.T[iele], v[:])
			f[m], f[nep+m], f[2*nep+m] = w[0], w[1], w[2]
		}
	}
	return
}

// EvalTangent computes the tangent stiffness contribution of every element
// (material plus geometric parts), rotated to the global frame.
//  K -- [nele][3*nverts][3*nverts] output; same DOF ordering as EvalResidual
//  U -- [nvert][3] current global displacements
func (o *Term) EvalTangent(K [][][]float64, U [][]float64) (err error) {
	if err = o.prepare(U, true); err != nil {
		return
	}
	for _, c := range Chunks(o.Reg.Nele(), o.ChunkSize) {
		if err = o.TangentChunk(K, c); err != nil {
			return
		}
	}
	return
}

// TangentChunk integrates and rotates the tangent stiffness of the elements in
// chunk c into rows [c.Lo,c.Hi) of K. Same sharing contract as ResidualChunk.
func (o *Term) TangentChunk(K [][][]float64, c Chunk) (err error) {
	nep := o.Geo.Nverts
	A := utl.Alloc(3, 3)
	B := utl.Alloc(3, 3)
	for iele := c.Lo; iele < c.Hi; iele++ {

		// integrate (geometric + tr(B)*D*B)*h0 over integration points
		k := K[iele]
		for i := range k {
			utl.Fill(k[i], 0)
		}
		for ip, p := range o.Geo.Ips {
			coef := o.Geo.Det[iele][ip] * p.W * o.thick(iele)
			bla.MatTrMulAdd3(k, coef, o.mtxB[iele][ip], o.mtxD[iele][ip])
			kts := o.kts[iele][ip]
			for i := 0; i < 3*nep; i++ {
				for j := 0; j < 3*nep; j++ {
					k[i][j] += coef * kts[i][j]
				}
			}
		}

		// rotate to global frame, one node pair at a time
		for mr := 0; mr < nep; mr++ {
			for mc := 0; mc < nep; mc++ {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						A[i][j] = k[i*nep+mr][j*nep+mc]
					}
				}
				bla.RotMat(B, o.T[iele], A)
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						k[i*nep+mr][j*nep+mc] = B[i][j]
					}
				}
			}
		}
	}
	return
}

// EvalOutput computes a post-processed per-element field: the Green strain
// (mode OutStrain) or the stress (mode OutStress), averaged over the element
// reference area and rotated to the global frame.
//  mode -- OutStrain or OutStress; any other mode is a fatal usage error
//  out  -- [nele][6] packed symmetric 3D tensors (11, 22, 33, 12, 13, 23);
//          components the membrane provides no information about are zero
//  U    -- [nvert][3] current global displacements
func (o *Term) EvalOutput(mode Mode, out [][]float64, U [][]float64) (err error) {
	if mode != OutStrain && mode != OutStress {
		chk.Panic("term mode %d is invalid for output evaluation", mode)
	}
	if err = o.prepare(U, false); err != nil {
		return
	}
	for _, c := range Chunks(o.Reg.Nele(), o.ChunkSize) {
		if err = o.OutputChunk(mode, out, c); err != nil {
			return
		}
	}
	return
}
