// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/cdillon/deskscene/internal/shape"
)

// Vertex attribute locations the phong shaders declare.
const (
	attrPosition = 0
	attrNormal   = 1
	attrUV       = 2
)

// floatSize is the byte size of a float32 in the interleaved buffer.
const floatSize = 4

// Mesh is a shape geometry uploaded to the GPU: one interleaved
// position/normal/uv buffer plus an index buffer, bound in a VAO.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewMesh uploads the geometry and returns a drawable mesh.
// Requires a current GL context.
func NewMesh(g *shape.Geometry) *Mesh {
	m := &Mesh{count: int32(len(g.Index))}
	data := g.Interleaved()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Index)*4, gl.Ptr(g.Index), gl.STATIC_DRAW)

	stride := int32(8 * floatSize)
	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointerWithOffset(attrPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attrNormal)
	gl.VertexAttribPointerWithOffset(attrNormal, 3, gl.FLOAT, false, stride, 3*floatSize)
	gl.EnableVertexAttribArray(attrUV)
	gl.VertexAttribPointerWithOffset(attrUV, 2, gl.FLOAT, false, stride, 6*floatSize)

	gl.BindVertexArray(0)
	return m
}

// Draw issues the indexed draw call.  Drawing a released mesh is a no-op.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Release frees the GL buffer objects.
func (m *Mesh) Release() {
	if m.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
