// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cdillon/deskscene/internal/render"
)

// MaxLights is the number of light sources the shader supports.
const MaxLights = 4

// Light is one static point light with the per-light phong parameters the
// shader consumes.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// deskLights returns the four window lights: a strong and a soft pair behind
// each of the two back windows.
func deskLights() []Light {
	return []Light{
		{ // primary sunlight, back left window
			Position:          mgl32.Vec3{-20, 15, -16.5},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.2},
			DiffuseColor:      mgl32.Vec3{1.0, 0.95, 0.9},
			SpecularColor:     mgl32.Vec3{1.0, 0.95, 0.9},
			FocalStrength:     10,
			SpecularIntensity: 0.2,
		},
		{ // soft fill, back left window
			Position:          mgl32.Vec3{-20, 6, -16.5},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.2},
			DiffuseColor:      mgl32.Vec3{0.8, 0.75, 0.7},
			SpecularColor:     mgl32.Vec3{0.5, 0.5, 0.5},
			FocalStrength:     0.01,
			SpecularIntensity: 0,
		},
		{ // primary sunlight, back right window
			Position:          mgl32.Vec3{20, 15, -16.5},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.2},
			DiffuseColor:      mgl32.Vec3{1.0, 0.95, 0.9},
			SpecularColor:     mgl32.Vec3{1.0, 0.95, 0.9},
			FocalStrength:     10,
			SpecularIntensity: 0.2,
		},
		{ // soft fill, back right window
			Position:          mgl32.Vec3{20, 6, -16.5},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.2},
			DiffuseColor:      mgl32.Vec3{0.8, 0.75, 0.7},
			SpecularColor:     mgl32.Vec3{0.5, 0.5, 0.5},
			FocalStrength:     0.01,
			SpecularIntensity: 0,
		},
	}
}

// uploadLights sets the lightSources uniforms for each light and turns
// lighting on.
func uploadLights(prog *render.Program, lights []Light) {
	for i, lt := range lights {
		name := func(field string) string {
			return fmt.Sprintf("lightSources[%d].%s", i, field)
		}
		prog.SetVec3(name("position"), lt.Position)
		prog.SetVec3(name("ambientColor"), lt.AmbientColor)
		prog.SetVec3(name("diffuseColor"), lt.DiffuseColor)
		prog.SetVec3(name("specularColor"), lt.SpecularColor)
		prog.SetFloat(name("focalStrength"), lt.FocalStrength)
		prog.SetFloat(name("specularIntensity"), lt.SpecularIntensity)
	}
	prog.SetBool("bUseLighting", true)
}
