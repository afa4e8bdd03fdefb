// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cdillon/deskscene/internal/render"
	"github.com/cdillon/deskscene/internal/shape"
)

// Segment counts for the shared primitive meshes.
const (
	radialSegs = 32
	heightSegs = 1
	torusSegs  = 32
)

// Scene owns the shared GL meshes, the texture registry, the material
// palette, the lights, and the fixed object list.
type Scene struct {
	prog      *render.Program
	meshes    map[string]*render.Mesh
	textures  *render.Textures
	materials map[string]Material
	lights    []Light
	objects   []Object
}

// New returns a Scene drawing through the given program.  Call Prepare
// before the first Render.
func New(prog *render.Program) *Scene {
	return &Scene{
		prog:      prog,
		meshes:    make(map[string]*render.Mesh),
		textures:  &render.Textures{},
		materials: defineMaterials(),
		lights:    deskLights(),
		objects:   deskObjects(),
	}
}

// Prepare loads the scene textures from textureDir, uploads the lights, and
// generates and uploads the shared primitive meshes.  Each mesh is loaded
// once no matter how many objects draw it.
func (sc *Scene) Prepare(textureDir string) error {
	for _, st := range sceneTextures {
		if err := sc.textures.Load(filepath.Join(textureDir, st.File), st.Tag); err != nil {
			return fmt.Errorf("scene textures: %w", err)
		}
	}
	sc.textures.BindAll()

	sc.prog.Use()
	uploadLights(sc.prog, sc.lights)
	sc.prog.SetVec2("UVscale", mgl32.Vec2{1, 1})

	// canonical meshes: unit-radius round shapes with their base at the
	// origin, a 2x2 ground plane, and a unit box centered on the origin
	sc.meshes["plane"] = render.NewMesh(shape.Plane(2, 2, 1, 1))
	sc.meshes["box"] = render.NewMesh(shape.Box(1, 1, 1, 1, 1, 1))
	sc.meshes["cylinder"] = render.NewMesh(
		shape.Cylinder(1, 1, 1, radialSegs, heightSegs, true, true).Translate(0, 0.5, 0))
	sc.meshes["taperedCylinder"] = render.NewMesh(
		shape.Cylinder(1, 0.5, 1, radialSegs, heightSegs, true, true).Translate(0, 0.5, 0))
	sc.meshes["cone"] = render.NewMesh(
		shape.Cone(1, 1, radialSegs, heightSegs, true).Translate(0, 0.5, 0))
	sc.meshes["torus"] = render.NewMesh(shape.Torus(1, 0.2, torusSegs, torusSegs))
	return nil
}

// Render draws the object list in order, applying each object's transform,
// texture, and material to the shader before its draw call.
func (sc *Scene) Render() {
	sc.prog.Use()
	for _, ob := range sc.objects {
		mesh, ok := sc.meshes[ob.Mesh]
		if !ok {
			continue
		}
		sc.prog.SetMat4("model", ModelMatrix(ob.Scale, ob.RotDeg, ob.Pos))
		sc.prog.SetVec2("UVscale", ob.UVScale)
		if ob.Texture != "" {
			sc.applyTexture(ob.Texture)
		}
		if ob.Material != "" {
			sc.applyMaterial(ob.Material)
		}
		mesh.Draw()
	}
}

// Release frees all GL resources owned by the scene.
func (sc *Scene) Release() {
	for _, m := range sc.meshes {
		m.Release()
	}
	sc.meshes = make(map[string]*render.Mesh)
	sc.textures.Release()
}

// applyTexture points the shader at the texture unit registered for tag.
// An unknown tag leaves the previous texture bound.
func (sc *Scene) applyTexture(tag string) {
	slot := sc.textures.Slot(tag)
	if slot < 0 {
		return
	}
	sc.prog.SetBool("bUseTexture", true)
	sc.prog.SetSampler("objectTexture", slot)
}

// applyMaterial uploads the material parameters for tag.  An unknown tag
// leaves the previous material state in place.
func (sc *Scene) applyMaterial(tag string) {
	mt, ok := sc.materials[tag]
	if !ok {
		return
	}
	sc.prog.SetVec3("material.ambientColor", mt.AmbientColor)
	sc.prog.SetFloat("material.ambientStrength", mt.AmbientStrength)
	sc.prog.SetVec3("material.diffuseColor", mt.DiffuseColor)
	sc.prog.SetVec3("material.specularColor", mt.SpecularColor)
	sc.prog.SetFloat("material.shininess", mt.Shininess)
}

// ModelMatrix composes the object transform in the fixed order
// translate * rotateX * rotateY * rotateZ * scale.
func ModelMatrix(scale, rotDeg, pos mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotDeg.X())))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotDeg.Y())))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotDeg.Z())))
	m = m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	return m
}
