// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/go-gl/mathgl/mgl32"

// Object is one hand-placed scene entry: which shared mesh to draw, which
// texture and material tags to apply, and its transform.  An empty Texture
// or Material tag leaves the previous draw's shader state in place.
type Object struct {
	Name     string
	Mesh     string
	Texture  string
	Material string
	UVScale  mgl32.Vec2
	Scale    mgl32.Vec3
	RotDeg   mgl32.Vec3
	Pos      mgl32.Vec3
}

// sceneTextures maps each texture image file to its tag.  Order matters:
// slots bind to texture units in load order.
var sceneTextures = []struct{ File, Tag string }{
	{"ceramicTexture.jpg", "mug"},
	{"stoneTexture.jpg", "table"},
	{"blackPlasticTexture.jpg", "blackPlastic"},
	{"whitePlasticTexture.jpg", "whitePlastic"},
	{"bluePlasticTexture.jpg", "bluePlastic"},
	{"redPaperTexture.jpg", "redPaper"},
	{"blackBookTexture.jpg", "blackBook"},
	{"brownBookTexture.jpg", "brownBook"},
}

// deskObjects returns the fixed draw list: a desk with a mug, a stack of
// books, a trail-mix container, a pen, and the two back windows.  Transforms
// were hand-tuned against the canonical meshes (unit radius cylinders with
// their base at the origin, 2x2 plane, unit box).
func deskObjects() []Object {
	uv := mgl32.Vec2{1, 1}
	return []Object{
		{
			Name: "table", Mesh: "plane", Texture: "table", Material: "marble",
			UVScale: uv,
			Scale:   mgl32.Vec3{10, 1, 9},
			Pos:     mgl32.Vec3{0, 1, 0},
		},
		{
			Name: "mugBase", Mesh: "taperedCylinder", Texture: "mug", Material: "ceramic",
			UVScale: uv,
			Scale:   mgl32.Vec3{1, 0.8, 1},
			RotDeg:  mgl32.Vec3{180, 0, 0},
			Pos:     mgl32.Vec3{4, 1.8, -1},
		},
		{
			Name: "mugHandle", Mesh: "torus", Texture: "mug", Material: "ceramic",
			UVScale: uv,
			Scale:   mgl32.Vec3{0.6, 0.7, 1},
			RotDeg:  mgl32.Vec3{180, 0, 0},
			Pos:     mgl32.Vec3{5, 2.4, -1},
		},
		{
			Name: "mugBody", Mesh: "cylinder", Texture: "mug", Material: "ceramic",
			UVScale: uv,
			Scale:   mgl32.Vec3{1, 1.8, 1},
			RotDeg:  mgl32.Vec3{180, 0, 0},
			Pos:     mgl32.Vec3{4, 3.6, -1},
		},
		{
			Name: "blueBook", Mesh: "box", Texture: "bluePlastic", Material: "dullPlastic",
			UVScale: uv,
			Scale:   mgl32.Vec3{6, 0.275, 3.75},
			RotDeg:  mgl32.Vec3{0, 90, 0},
			Pos:     mgl32.Vec3{0, 1.1, 1},
		},
		{
			Name: "brownBook", Mesh: "box", Texture: "brownBook", Material: "paper",
			UVScale: uv,
			Scale:   mgl32.Vec3{6.4, 0.6, 3.75},
			Pos:     mgl32.Vec3{-2, 1.2, -4.4},
		},
		{
			Name: "blackBookMiddle", Mesh: "box", Texture: "blackBook", Material: "paper",
			UVScale: uv,
			Scale:   mgl32.Vec3{5.7, 0.5, 3.25},
			RotDeg:  mgl32.Vec3{0, -10, 0},
			Pos:     mgl32.Vec3{-2.2, 1.7, -4.4},
		},
		{
			Name: "blackBookTop", Mesh: "box", Texture: "blackBook", Material: "paper",
			UVScale: uv,
			Scale:   mgl32.Vec3{5.7, 0.5, 3.25},
			RotDeg:  mgl32.Vec3{0, 20, 0},
			Pos:     mgl32.Vec3{-2.2, 2.2, -4.4},
		},
		{
			Name: "trailMixBox", Mesh: "box", Texture: "redPaper", Material: "paper",
			UVScale: uv,
			Scale:   mgl32.Vec3{2, 2.7, 2},
			Pos:     mgl32.Vec3{-4, 2, -0.5},
		},
		{
			Name: "trailMixLid", Mesh: "cylinder", Texture: "blackPlastic", Material: "plastic",
			UVScale: uv,
			Scale:   mgl32.Vec3{1.09, 0.4, 1.09},
			Pos:     mgl32.Vec3{-4, 3.35, -0.5},
		},
		{
			Name: "penBarrel", Mesh: "cylinder", Texture: "blackPlastic", Material: "plastic",
			UVScale: uv,
			Scale:   mgl32.Vec3{0.05, 2, 0.05},
			RotDeg:  mgl32.Vec3{90, 0, 64},
			Pos:     mgl32.Vec3{0.9, 1.33, 1},
		},
		{
			Name: "penTip", Mesh: "cone", Texture: "blackPlastic", Material: "plastic",
			UVScale: uv,
			Scale:   mgl32.Vec3{0.05, 0.12, 0.05},
			RotDeg:  mgl32.Vec3{90, 0, 64},
			Pos:     mgl32.Vec3{-0.9, 1.33, 1.877},
		},
		{
			Name: "penCap", Mesh: "taperedCylinder", Texture: "blackPlastic", Material: "plastic",
			UVScale: uv,
			Scale:   mgl32.Vec3{0.05, 0.09, 0.05},
			RotDeg:  mgl32.Vec3{90, 0, 244},
			Pos:     mgl32.Vec3{0.9, 1.33, 1},
		},
		{
			Name: "windowLeft", Mesh: "plane", Texture: "whitePlastic", Material: "plastic",
			UVScale: uv,
			Scale:   mgl32.Vec3{6, 1, 9},
			RotDeg:  mgl32.Vec3{90, 0, 0},
			Pos:     mgl32.Vec3{-20, 6, -17},
		},
		{
			// The right window deliberately sets no texture or material,
			// inheriting the left window's shader state.
			Name: "windowRight", Mesh: "plane",
			UVScale: uv,
			Scale:   mgl32.Vec3{6, 1, 9},
			RotDeg:  mgl32.Vec3{90, 0, 0},
			Pos:     mgl32.Vec3{20, 6, -17},
		},
	}
}
