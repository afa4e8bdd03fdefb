// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// BoxN returns vertex and index counts for a Box with the given per-axis
// segment counts.
func BoxN(xsegs, ysegs, zsegs int) (numVertex, numIndex int) {
	nv, ni := FaceN(xsegs, ysegs) // front, back
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = FaceN(zsegs, ysegs) // left, right
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = FaceN(xsegs, zsegs) // top, bottom
	numVertex += 2 * nv
	numIndex += 2 * ni
	return
}

// Box returns a box (cuboid) of the given size centered on the origin, built
// from six outward-facing faces with per-face UVs.
func Box(width, height, depth float32, xsegs, ysegs, zsegs int) *Geometry {
	nv, ni := BoxN(xsegs, ysegs, zsegs)
	g := NewGeometry(nv, ni)
	hx, hy, hz := width/2, height/2, depth/2

	// wdir/hdir per face are chosen so winding is CCW from outside:
	// wdir*hdir must equal nsign times the axis-pair parity (see addFace).
	g.addFace(X, Y, 1, -1, width, height, hz, 1, xsegs, ysegs)   // +Z front
	g.addFace(X, Y, -1, -1, width, height, -hz, -1, xsegs, ysegs) // -Z back
	g.addFace(Z, Y, -1, -1, depth, height, hx, 1, zsegs, ysegs)   // +X right
	g.addFace(Z, Y, 1, -1, depth, height, -hx, -1, zsegs, ysegs)  // -X left
	g.addFace(X, Z, 1, 1, width, depth, hy, 1, xsegs, zsegs)      // +Y top
	g.addFace(X, Z, 1, -1, width, depth, -hy, -1, xsegs, zsegs)   // -Y bottom
	return g
}
