// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// CylinderN returns vertex and index counts for a Cylinder with the given
// segment counts and cap flags.  Cap counts are included whenever the flag is
// set; a zero-radius end contributes no cap at generation time, so callers
// preallocating from this may slightly over-reserve for cones.
func CylinderN(radialSegs, heightSegs int, top, bottom bool) (numVertex, numIndex int) {
	radialSegs = clampSegs(radialSegs, 3)
	heightSegs = clampSegs(heightSegs, 1)
	numVertex = (radialSegs + 1) * (heightSegs + 1)
	numIndex = radialSegs * heightSegs * 6
	if top {
		numVertex += radialSegs + 1
		numIndex += radialSegs * 3
	}
	if bottom {
		numVertex += radialSegs + 1
		numIndex += radialSegs * 3
	}
	return
}

// Cylinder returns a generalized cylinder with the given height along Y and
// top and bottom radii.  Equal radii make a straight cylinder, topRad == 0
// makes a cone, and differing radii make a tapered cylinder.  Side normals
// tilt with the taper.  top and bottom select the end-cap discs.
func Cylinder(height, topRad, botRad float32, radialSegs, heightSegs int, top, bottom bool) *Geometry {
	radialSegs = clampSegs(radialSegs, 3)
	heightSegs = clampSegs(heightSegs, 1)
	nv, ni := CylinderN(radialSegs, heightSegs, top, bottom)
	g := NewGeometry(nv, ni)

	halfHt := height / 2
	tanTheta := (botRad - topRad) / height

	// Side wall: rows from top (v=0) to bottom (v=1), columns around the
	// circle.  The normal for a tapered wall gains a Y component of
	// sqrt(x*x+z*z)*tanTheta before normalizing; for a cone the top row
	// is degenerate, so the tilt is evaluated at radius 1.
	for iy := 0; iy <= heightSegs; iy++ {
		v := float32(iy) / float32(heightSegs)
		radius := v*(botRad-topRad) + topRad
		for ix := 0; ix <= radialSegs; ix++ {
			u := float32(ix) / float32(radialSegs)
			ang := u * 2 * math32.Pi
			cos, sin := math32.Cos(ang), math32.Sin(ang)
			px := -radius * cos
			py := -v*height + halfHt
			pz := radius * sin
			nx, nz := -cos, sin
			ny := tanTheta
			ilen := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
			g.addVertex(px, py, pz, nx*ilen, ny*ilen, nz*ilen, u, 1-v)
		}
	}
	stride := uint32(radialSegs + 1)
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < radialSegs; ix++ {
			v1 := uint32(iy)*stride + uint32(ix)
			v2 := v1 + stride
			v3 := v2 + 1
			v4 := v1 + 1
			g.Index = append(g.Index, v1, v2, v4, v2, v3, v4)
		}
	}

	if top && topRad > 0 {
		g.addCap(topRad, halfHt, 1, radialSegs)
	}
	if bottom && botRad > 0 {
		g.addCap(botRad, -halfHt, -1, radialSegs)
	}
	return g
}

// Cone returns a cone of the given height and base radius, an uncapped-top
// cylinder with topRad 0.
func Cone(height, radius float32, radialSegs, heightSegs int, bottom bool) *Geometry {
	return Cylinder(height, 0, radius, radialSegs, heightSegs, false, bottom)
}

// addCap appends an end-cap disc at height y with the normal along Y with
// sign nsign, triangulated as a fan around a center vertex.  UVs map the
// disc onto the unit circle in texture space.
func (g *Geometry) addCap(radius, y, nsign float32, radialSegs int) {
	center := uint32(g.NumVertex())
	g.addVertex(0, y, 0, 0, nsign, 0, 0.5, 0.5)
	for ix := 0; ix < radialSegs; ix++ {
		ang := float32(ix) / float32(radialSegs) * 2 * math32.Pi
		cos, sin := math32.Cos(ang), math32.Sin(ang)
		g.addVertex(-radius*cos, y, radius*sin, 0, nsign, 0, 0.5-0.5*cos, 0.5+0.5*sin)
	}
	for ix := 0; ix < radialSegs; ix++ {
		cur := center + 1 + uint32(ix)
		next := center + 1 + uint32((ix+1)%radialSegs)
		if nsign > 0 {
			g.Index = append(g.Index, center, cur, next)
		} else {
			g.Index = append(g.Index, center, next, cur)
		}
	}
}
