// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/chewxy/math32"

// TorusN returns vertex and index counts for a Torus with the given segment
// counts.
func TorusN(radialSegs, tubeSegs int) (numVertex, numIndex int) {
	radialSegs = clampSegs(radialSegs, 3)
	tubeSegs = clampSegs(tubeSegs, 3)
	return (radialSegs + 1) * (tubeSegs + 1), radialSegs * tubeSegs * 6
}

// Torus returns a torus ring lying in the X-Y plane, defined by the larger
// ring radius and the radius of the solid tube.  Normals point from the tube
// center line outward.
func Torus(radius, tubeRadius float32, radialSegs, tubeSegs int) *Geometry {
	radialSegs = clampSegs(radialSegs, 3)
	tubeSegs = clampSegs(tubeSegs, 3)
	nv, ni := TorusN(radialSegs, tubeSegs)
	g := NewGeometry(nv, ni)

	for j := 0; j <= radialSegs; j++ {
		v := float32(j) / float32(radialSegs) * 2 * math32.Pi
		for i := 0; i <= tubeSegs; i++ {
			u := float32(i) / float32(tubeSegs) * 2 * math32.Pi

			cx := radius * math32.Cos(u)
			cy := radius * math32.Sin(u)

			px := (radius + tubeRadius*math32.Cos(v)) * math32.Cos(u)
			py := (radius + tubeRadius*math32.Cos(v)) * math32.Sin(u)
			pz := tubeRadius * math32.Sin(v)

			nx, ny, nz := px-cx, py-cy, pz
			ilen := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
			g.addVertex(px, py, pz, nx*ilen, ny*ilen, nz*ilen,
				float32(i)/float32(tubeSegs), float32(j)/float32(radialSegs))
		}
	}

	stride := tubeSegs + 1
	for j := 1; j <= radialSegs; j++ {
		for i := 1; i <= tubeSegs; i++ {
			a := uint32(stride*j + i - 1)
			b := uint32(stride*(j-1) + i - 1)
			c := uint32(stride*(j-1) + i)
			d := uint32(stride*j + i)
			g.Index = append(g.Index, a, b, d, b, c, d)
		}
	}
	return g
}
