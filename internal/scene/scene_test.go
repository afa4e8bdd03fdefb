// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1.0e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], tol)
	}
}

func TestModelMatrixTranslateScale(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{2, 3, 4}, mgl32.Vec3{}, mgl32.Vec3{1, -1, 5})
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, m)
	assertVec3(t, mgl32.Vec3{3, 2, 9}, p)
}

func TestModelMatrixOrder(t *testing.T) {
	// scale must apply before rotation: a point on +X scaled by 2 then
	// rotated 90 about Y lands on -Z at distance 2
	m := ModelMatrix(mgl32.Vec3{2, 1, 1}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{})
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	assertVec3(t, mgl32.Vec3{0, 0, -2}, p)

	// and rotation before translation
	m = ModelMatrix(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{0, 0, 10})
	p = mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	assertVec3(t, mgl32.Vec3{0, 0, 9}, p)
}

func TestModelMatrixRotationSequence(t *testing.T) {
	// X rotation applies after Y: equivalent to Rx * Ry composed explicitly
	rot := mgl32.Vec3{90, 90, 0}
	m := ModelMatrix(mgl32.Vec3{1, 1, 1}, rot, mgl32.Vec3{})
	want := mgl32.HomogRotate3DX(mgl32.DegToRad(90)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 2, 3}, m)
	q := mgl32.TransformCoordinate(mgl32.Vec3{1, 2, 3}, want)
	assertVec3(t, q, p)
}

func TestMaterialPalette(t *testing.T) {
	mats := defineMaterials()
	require.Len(t, mats, 6)

	ceramic, ok := mats["ceramic"]
	require.True(t, ok)
	assert.Equal(t, float32(4), ceramic.Shininess)
	assert.Equal(t, float32(0.05), ceramic.AmbientStrength)
	assertVec3(t, mgl32.Vec3{0.8, 0.8, 0.8}, ceramic.SpecularColor)

	glass, ok := mats["glass"]
	require.True(t, ok)
	assert.Equal(t, float32(100), glass.Shininess)

	for tag, mt := range mats {
		assert.Greater(t, mt.Shininess, float32(0), "material %q", tag)
	}
}

func TestDeskLights(t *testing.T) {
	lights := deskLights()
	require.Len(t, lights, MaxLights)

	// lights are paired behind the two back windows
	assertVec3(t, mgl32.Vec3{-20, 15, -16.5}, lights[0].Position)
	assertVec3(t, mgl32.Vec3{20, 15, -16.5}, lights[2].Position)
	assert.Equal(t, float32(10), lights[0].FocalStrength)
	assert.Equal(t, float32(0.2), lights[0].SpecularIntensity)

	// the fill lights cast no specular
	assert.Zero(t, lights[1].SpecularIntensity)
	assert.Zero(t, lights[3].SpecularIntensity)
}

func TestDeskObjects(t *testing.T) {
	objs := deskObjects()
	require.Len(t, objs, 15)

	mats := defineMaterials()
	tags := make(map[string]bool)
	for _, st := range sceneTextures {
		tags[st.Tag] = true
	}
	meshNames := map[string]bool{
		"plane": true, "box": true, "cylinder": true,
		"taperedCylinder": true, "cone": true, "torus": true,
	}

	for _, ob := range objs {
		assert.True(t, meshNames[ob.Mesh], "object %q uses unknown mesh %q", ob.Name, ob.Mesh)
		if ob.Texture != "" {
			assert.True(t, tags[ob.Texture], "object %q uses unknown texture %q", ob.Name, ob.Texture)
		}
		if ob.Material != "" {
			_, ok := mats[ob.Material]
			assert.True(t, ok, "object %q uses unknown material %q", ob.Name, ob.Material)
		}
		assert.Equal(t, mgl32.Vec2{1, 1}, ob.UVScale, "object %q", ob.Name)
	}

	// the right window intentionally carries over the left window's state
	last := objs[len(objs)-1]
	assert.Equal(t, "windowRight", last.Name)
	assert.Empty(t, last.Texture)
	assert.Empty(t, last.Material)
}

func TestSceneTextures(t *testing.T) {
	require.Len(t, sceneTextures, 8)
	seen := make(map[string]bool)
	for _, st := range sceneTextures {
		assert.False(t, seen[st.Tag], "duplicate texture tag %q", st.Tag)
		seen[st.Tag] = true
		assert.Contains(t, st.File, ".jpg")
	}
}
