// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates the vertex data for the primitive meshes used in
// the scene: plane, box, cylinder (straight, tapered, or cone), and torus.
// All shapes are centered on the origin in their canonical size, with height
// along the Y axis; per-object sizing happens through the model matrix.
package shape

import "github.com/chewxy/math32"

// Geometry holds the generated buffers for one shape: flat position, normal,
// and texture-coordinate arrays (3, 3, and 2 floats per vertex) plus the
// triangle index array.
type Geometry struct {
	Vertex []float32
	Normal []float32
	UV     []float32
	Index  []uint32
}

// NewGeometry returns a Geometry with capacity preallocated for the given
// vertex and index counts, as reported by the *N sizing functions.
func NewGeometry(numVertex, numIndex int) *Geometry {
	return &Geometry{
		Vertex: make([]float32, 0, numVertex*3),
		Normal: make([]float32, 0, numVertex*3),
		UV:     make([]float32, 0, numVertex*2),
		Index:  make([]uint32, 0, numIndex),
	}
}

// NumVertex returns the number of vertex points currently in the geometry.
func (g *Geometry) NumVertex() int {
	return len(g.Vertex) / 3
}

// Interleaved returns the vertex data interleaved as position, normal, uv
// (8 floats per vertex), the layout the render package uploads.
func (g *Geometry) Interleaved() []float32 {
	nv := g.NumVertex()
	out := make([]float32, 0, nv*8)
	for i := 0; i < nv; i++ {
		out = append(out, g.Vertex[3*i], g.Vertex[3*i+1], g.Vertex[3*i+2])
		out = append(out, g.Normal[3*i], g.Normal[3*i+1], g.Normal[3*i+2])
		out = append(out, g.UV[2*i], g.UV[2*i+1])
	}
	return out
}

// Translate offsets every vertex position, leaving normals untouched.
// Used to move a shape's canonical origin, e.g. putting a cylinder's base at
// the origin instead of its center.
func (g *Geometry) Translate(dx, dy, dz float32) *Geometry {
	for i := 0; i < len(g.Vertex); i += 3 {
		g.Vertex[i] += dx
		g.Vertex[i+1] += dy
		g.Vertex[i+2] += dz
	}
	return g
}

// addVertex appends one vertex point with its normal and uv.
func (g *Geometry) addVertex(px, py, pz, nx, ny, nz, u, v float32) {
	g.Vertex = append(g.Vertex, px, py, pz)
	g.Normal = append(g.Normal, nx, ny, nz)
	g.UV = append(g.UV, u, v)
}

// Dims is an axis index: X, Y, or Z.
type Dims int

const (
	X Dims = iota
	Y
	Z
)

// degToRad converts degrees to radians.
func degToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// clampSegs enforces the minimum segment count.
func clampSegs(segs, min int) int {
	if segs < min {
		return min
	}
	return segs
}

// FaceN returns the vertex and index counts for one subdivided rectangular
// face with the given segment counts.
func FaceN(wsegs, hsegs int) (numVertex, numIndex int) {
	wsegs = clampSegs(wsegs, 1)
	hsegs = clampSegs(hsegs, 1)
	return (wsegs + 1) * (hsegs + 1), wsegs * hsegs * 6
}

// addFace appends a subdivided rectangular face to the geometry.  The face
// lies in the waxis/haxis plane at offset zoff along the remaining axis,
// centered on that axis pair, with the face normal along the remaining axis
// with sign nsign.  wdir and hdir flip the direction of traversal; the caller
// must pick them such that wdir*hdir matches the orientation needed for
// outward CCW winding (see Box for the canonical set).
func (g *Geometry) addFace(waxis, haxis Dims, wdir, hdir float32, width, height, zoff, nsign float32, wsegs, hsegs int) {
	wsegs = clampSegs(wsegs, 1)
	hsegs = clampSegs(hsegs, 1)
	zaxis := 3 - waxis - haxis

	var norm [3]float32
	norm[zaxis] = nsign

	start := uint32(g.NumVertex())
	for iy := 0; iy <= hsegs; iy++ {
		v := float32(iy) / float32(hsegs)
		for ix := 0; ix <= wsegs; ix++ {
			u := float32(ix) / float32(wsegs)
			var pt [3]float32
			pt[waxis] = wdir * (u - 0.5) * width
			pt[haxis] = hdir * (v - 0.5) * height
			pt[zaxis] = zoff
			g.addVertex(pt[0], pt[1], pt[2], norm[0], norm[1], norm[2], u, v)
		}
	}
	stride := uint32(wsegs + 1)
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := start + uint32(iy)*stride + uint32(ix)
			b := a + 1
			c := a + stride
			d := c + 1
			g.Index = append(g.Index, a, c, b, b, c, d)
		}
	}
}

// PlaneN returns vertex and index counts for a Plane with the given segments.
func PlaneN(wsegs, dsegs int) (numVertex, numIndex int) {
	return FaceN(wsegs, dsegs)
}

// Plane returns an X-Z ground plane of the given width (X) and depth (Z),
// centered on the origin with its normal along +Y.
func Plane(width, depth float32, wsegs, dsegs int) *Geometry {
	nv, ni := PlaneN(wsegs, dsegs)
	g := NewGeometry(nv, ni)
	g.addFace(X, Z, 1, 1, width, depth, 0, 1, wsegs, dsegs)
	return g
}
