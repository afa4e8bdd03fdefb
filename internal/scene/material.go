// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the fixed desk scene: the material and light
// definitions, the hand-placed object list, and the per-frame draw loop.
// This is data plus a loop, not an engine; a different scene means replacing
// this package.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Material describes the phong surface parameters of an object, looked up
// by tag.
type Material struct {
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// defineMaterials returns the scene's material palette.
func defineMaterials() map[string]Material {
	return map[string]Material{
		"ceramic": {
			AmbientColor:    mgl32.Vec3{0.7, 0.7, 0.7},
			AmbientStrength: 0.05,
			DiffuseColor:    mgl32.Vec3{0.7, 0.7, 0.7},
			SpecularColor:   mgl32.Vec3{0.8, 0.8, 0.8},
			Shininess:       4,
		},
		"marble": {
			AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			SpecularColor:   mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess:       20,
		},
		"paper": {
			AmbientColor:    mgl32.Vec3{0.7, 0.7, 0.65},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{1.0, 1.0, 0.9},
			SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:       2,
		},
		"plastic": {
			AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:   mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess:       60,
		},
		"dullPlastic": {
			AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:   mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess:       20,
		},
		"glass": {
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
			Shininess:       100,
		},
	}
}
