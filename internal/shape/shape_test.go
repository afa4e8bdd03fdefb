// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1.0e-5

func vtx(g *Geometry, i int) (x, y, z float32) {
	return g.Vertex[3*i], g.Vertex[3*i+1], g.Vertex[3*i+2]
}

func nrm(g *Geometry, i int) (x, y, z float32) {
	return g.Normal[3*i], g.Normal[3*i+1], g.Normal[3*i+2]
}

// assertUnitNormals checks every normal has unit length.
func assertUnitNormals(t *testing.T, g *Geometry) {
	t.Helper()
	for i := 0; i < g.NumVertex(); i++ {
		x, y, z := nrm(g, i)
		assert.InDelta(t, 1.0, float64(math32.Sqrt(x*x+y*y+z*z)), tol, "normal %d", i)
	}
}

// assertWinding checks that every triangle's geometric normal agrees with the
// stored vertex normals, i.e. that index winding is CCW from the normal side.
func assertWinding(t *testing.T, g *Geometry) {
	t.Helper()
	require.Zero(t, len(g.Index)%3)
	for ti := 0; ti < len(g.Index); ti += 3 {
		ia, ib, ic := int(g.Index[ti]), int(g.Index[ti+1]), int(g.Index[ti+2])
		ax, ay, az := vtx(g, ia)
		bx, by, bz := vtx(g, ib)
		cx, cy, cz := vtx(g, ic)
		e1x, e1y, e1z := bx-ax, by-ay, bz-az
		e2x, e2y, e2z := cx-ax, cy-ay, cz-az
		gx := e1y*e2z - e1z*e2y
		gy := e1z*e2x - e1x*e2z
		gz := e1x*e2y - e1y*e2x
		nax, nay, naz := nrm(g, ia)
		nbx, nby, nbz := nrm(g, ib)
		ncx, ncy, ncz := nrm(g, ic)
		sx, sy, sz := nax+nbx+ncx, nay+nby+ncy, naz+nbz+ncz
		dot := gx*sx + gy*sy + gz*sz
		assert.Greater(t, dot, float32(0), "triangle %d winds against its normals", ti/3)
	}
}

func TestPlane(t *testing.T) {
	g := Plane(10, 6, 2, 3)
	nv, ni := PlaneN(2, 3)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
	for i := 0; i < g.NumVertex(); i++ {
		x, y, z := vtx(g, i)
		assert.LessOrEqual(t, math32.Abs(x), float32(5)+tol)
		assert.InDelta(t, 0, float64(y), tol)
		assert.LessOrEqual(t, math32.Abs(z), float32(3)+tol)
		nx, ny, nz := nrm(g, i)
		assert.Equal(t, [3]float32{0, 1, 0}, [3]float32{nx, ny, nz})
		u, v := g.UV[2*i], g.UV[2*i+1]
		assert.True(t, u >= 0 && u <= 1 && v >= 0 && v <= 1)
	}
	assertWinding(t, g)
}

func TestPlaneSegClamp(t *testing.T) {
	g := Plane(1, 1, 0, -2)
	nv, ni := PlaneN(1, 1)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
}

func TestBox(t *testing.T) {
	g := Box(2, 4, 6, 1, 1, 1)
	nv, ni := BoxN(1, 1, 1)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
	assert.Equal(t, 24, g.NumVertex())
	assert.Equal(t, 36, len(g.Index))

	for i := 0; i < g.NumVertex(); i++ {
		x, y, z := vtx(g, i)
		assert.LessOrEqual(t, math32.Abs(x), float32(1)+tol)
		assert.LessOrEqual(t, math32.Abs(y), float32(2)+tol)
		assert.LessOrEqual(t, math32.Abs(z), float32(3)+tol)
		// box face normals point away from the center
		nx, ny, nz := nrm(g, i)
		assert.Greater(t, x*nx+y*ny+z*nz, float32(0))
	}
	assertUnitNormals(t, g)
	assertWinding(t, g)
}

func TestCylinder(t *testing.T) {
	g := Cylinder(2, 1, 1, 16, 2, true, true)
	nv, ni := CylinderN(16, 2, true, true)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
	assertUnitNormals(t, g)
	assertWinding(t, g)

	// straight cylinder side normals are radial, caps are axial
	for i := 0; i < g.NumVertex(); i++ {
		x, y, z := vtx(g, i)
		nx, ny, nz := nrm(g, i)
		if ny == 0 {
			assert.InDelta(t, 1.0, float64(x*nx+z*nz), tol, "side normal %d not radial", i)
		} else {
			assert.InDelta(t, 1.0, float64(math32.Abs(ny)), tol)
			assert.InDelta(t, 1.0, float64(math32.Abs(y)), tol)
		}
	}
}

func TestCylinderNoCaps(t *testing.T) {
	g := Cylinder(2, 1, 1, 16, 1, false, false)
	nv, ni := CylinderN(16, 1, false, false)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
	assert.Equal(t, 17*2, g.NumVertex())
}

func TestTaperedCylinder(t *testing.T) {
	g := Cylinder(2, 0.5, 1, 16, 1, true, true)
	assertUnitNormals(t, g)
	assertWinding(t, g)

	// side normals tilt upward by tanTheta = (bot-top)/height = 0.25
	tanTheta := float32(0.25)
	for i := 0; i < g.NumVertex(); i++ {
		nx, ny, nz := nrm(g, i)
		if ny == 1 || ny == -1 { // caps
			continue
		}
		horiz := math32.Sqrt(nx*nx + nz*nz)
		assert.InDelta(t, float64(tanTheta), float64(ny/horiz), tol, "normal %d", i)
	}
}

func TestCone(t *testing.T) {
	g := Cone(2, 1, 16, 2, true)
	// a cone has only the bottom cap; the top flag is never set
	nv, ni := CylinderN(16, 2, false, true)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
	assertUnitNormals(t, g)
	assertWinding(t, g)

	// apex row sits at half height with zero radius
	x, y, z := vtx(g, 0)
	assert.InDelta(t, 0, float64(x), tol)
	assert.InDelta(t, 1, float64(y), tol)
	assert.InDelta(t, 0, float64(z), tol)
}

func TestCylinderZeroRadiusCapSkipped(t *testing.T) {
	// asking for a top cap on a zero-radius top generates nothing for it
	g := Cylinder(2, 0, 1, 8, 1, true, false)
	nv, ni := CylinderN(8, 1, false, false)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
}

func TestTorus(t *testing.T) {
	const radius, tube = 1.0, 0.25
	g := Torus(radius, tube, 24, 12)
	nv, ni := TorusN(24, 12)
	assert.Equal(t, nv, g.NumVertex())
	assert.Equal(t, ni, len(g.Index))
	assertUnitNormals(t, g)
	assertWinding(t, g)

	// every point lies a tube radius away from the ring center line
	for i := 0; i < g.NumVertex(); i++ {
		x, y, z := vtx(g, i)
		ringDist := math32.Sqrt(x*x+y*y) - radius
		d := math32.Sqrt(ringDist*ringDist + z*z)
		assert.InDelta(t, tube, float64(d), tol, "point %d off the tube", i)
	}
}

func TestTranslate(t *testing.T) {
	g := Cylinder(1, 1, 1, 8, 1, true, true)
	g.Translate(0, 0.5, 0)
	for i := 0; i < g.NumVertex(); i++ {
		_, y, _ := vtx(g, i)
		assert.GreaterOrEqual(t, y, float32(-tol), "vertex %d below base", i)
		assert.LessOrEqual(t, y, float32(1)+tol)
	}
	// normals are unaffected by translation
	assertUnitNormals(t, g)
}

func TestInterleaved(t *testing.T) {
	g := Plane(2, 2, 1, 1)
	il := g.Interleaved()
	require.Equal(t, g.NumVertex()*8, len(il))
	// first vertex: position, then normal, then uv
	assert.Equal(t, g.Vertex[0:3], il[0:3])
	assert.Equal(t, g.Normal[0:3], il[3:6])
	assert.Equal(t, g.UV[0:2], il[6:8])
}
