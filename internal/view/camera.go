// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view turns input events into camera state and uploads the view
// and projection matrices each frame.
package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is clamped to just short of straight up/down to prevent the view
// from flipping.
const maxPitch = 89

// Movement speed bounds for the scroll-wheel speed control.
const (
	MinSpeed = 0.1
	MaxSpeed = 1.0
)

// Movement is a camera movement direction, relative to the camera frame.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// Camera is a free-look FPS-style camera.  Yaw and Pitch are in degrees;
// Front, Right, and Up are unit vectors derived from them.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	// Zoom is the perspective field of view in degrees.
	Zoom float32

	// MovementSpeed is in scene units per frame at the reference frame
	// rate; Move scales it by the real frame delta.
	MovementSpeed float32

	MouseSensitivity float32
}

// NewCamera returns a camera at the scene's default vantage point, above and
// in front of the desk looking slightly down at it.
func NewCamera() *Camera {
	cm := &Camera{
		Position:         mgl32.Vec3{0, 5, 12},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Zoom:             80,
		MovementSpeed:    MinSpeed,
		MouseSensitivity: 0.1,
	}
	cm.SetFront(mgl32.Vec3{0, -0.5, -2}.Normalize())
	return cm
}

// SetFront points the camera along front, deriving Yaw and Pitch so that
// subsequent mouse movement continues from the same orientation.
func (cm *Camera) SetFront(front mgl32.Vec3) {
	cm.Pitch = mgl32.RadToDeg(math32.Asin(front.Y()))
	cm.Yaw = mgl32.RadToDeg(math32.Atan2(front.Z(), front.X()))
	cm.updateVectors()
}

// ViewMatrix returns the lookAt matrix for the current camera state.
func (cm *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cm.Position, cm.Position.Add(cm.Front), cm.Up)
}

// ProcessMouse applies a mouse movement offset (in screen pixels, y up) to
// the camera orientation, clamping pitch.
func (cm *Camera) ProcessMouse(dx, dy float32) {
	cm.Yaw += dx * cm.MouseSensitivity
	cm.Pitch += dy * cm.MouseSensitivity
	if cm.Pitch > maxPitch {
		cm.Pitch = maxPitch
	}
	if cm.Pitch < -maxPitch {
		cm.Pitch = -maxPitch
	}
	cm.updateVectors()
}

// ProcessScroll adjusts the movement speed from scroll-wheel input, keeping
// it within [MinSpeed, MaxSpeed].
func (cm *Camera) ProcessScroll(dy float32) {
	cm.MovementSpeed += dy * 0.1
	if cm.MovementSpeed < MinSpeed {
		cm.MovementSpeed = MinSpeed
	}
	if cm.MovementSpeed > MaxSpeed {
		cm.MovementSpeed = MaxSpeed
	}
}

// speedScale converts MovementSpeed's per-frame units into per-second units
// at the reference 60 fps, so movement feel matches the speed clamp range
// while staying frame-rate independent.
const speedScale = 60

// Move moves the camera in the given direction, scaled by the frame delta
// time in seconds.
func (cm *Camera) Move(dir Movement, dt float32) {
	velocity := cm.MovementSpeed * speedScale * dt
	switch dir {
	case Forward:
		cm.Position = cm.Position.Add(cm.Front.Mul(velocity))
	case Backward:
		cm.Position = cm.Position.Sub(cm.Front.Mul(velocity))
	case Left:
		cm.Position = cm.Position.Sub(cm.Right.Mul(velocity))
	case Right:
		cm.Position = cm.Position.Add(cm.Right.Mul(velocity))
	case Up:
		cm.Position = cm.Position.Add(cm.Up.Mul(velocity))
	case Down:
		cm.Position = cm.Position.Sub(cm.Up.Mul(velocity))
	}
}

// updateVectors recomputes Front, Right, and Up from Yaw and Pitch.
func (cm *Camera) updateVectors() {
	yaw := mgl32.DegToRad(cm.Yaw)
	pitch := mgl32.DegToRad(cm.Pitch)
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	cm.Front = front.Normalize()
	cm.Right = cm.Front.Cross(cm.WorldUp).Normalize()
	cm.Up = cm.Right.Cross(cm.Front).Normalize()
}
