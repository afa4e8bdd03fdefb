// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cdillon/deskscene/internal/render"
)

// Projection clipping planes, shared by both projection modes, and the
// half-extent of the orthographic view volume.
const (
	nearPlane = 0.1
	farPlane  = 100
	orthoSize = 10
)

// View drives the camera from window input and uploads the view, projection,
// and viewPosition uniforms each frame.
type View struct {
	cam  *Camera
	win  *glfw.Window
	prog *render.Program

	width, height int

	// ortho selects orthographic projection (O key); P returns to
	// perspective.
	ortho bool

	lastX, lastY float32
	firstMouse   bool

	lastFrame float64
}

// New returns a View for the given window and program, installing the mouse
// and resize callbacks.
func New(win *glfw.Window, prog *render.Program, cam *Camera) *View {
	w, h := win.GetFramebufferSize()
	vw := &View{
		cam:        cam,
		win:        win,
		prog:       prog,
		width:      w,
		height:     h,
		firstMouse: true,
	}
	win.SetCursorPosCallback(vw.onCursorPos)
	win.SetScrollCallback(vw.onScroll)
	win.SetFramebufferSizeCallback(vw.onResize)
	return vw
}

// Camera returns the camera the view drives.
func (vw *View) Camera() *Camera {
	return vw.cam
}

// onCursorPos feeds mouse movement into the camera.  The first sample only
// records the position so the view does not jump, and the cursor is captured
// once mouse-look begins.
func (vw *View) onCursorPos(_ *glfw.Window, xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)
	if vw.firstMouse {
		vw.lastX, vw.lastY = x, y
		vw.firstMouse = false
	}
	vw.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	dx := x - vw.lastX
	dy := vw.lastY - y // screen y grows downward
	vw.lastX, vw.lastY = x, y
	vw.cam.ProcessMouse(dx, dy)
}

func (vw *View) onScroll(_ *glfw.Window, _, yoff float64) {
	vw.cam.ProcessScroll(float32(yoff))
}

func (vw *View) onResize(_ *glfw.Window, width, height int) {
	if width == 0 || height == 0 {
		// minimized window; keep the last usable size
		return
	}
	vw.width, vw.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// processKeys applies the held movement and mode keys.
func (vw *View) processKeys(dt float32) {
	if vw.win.GetKey(glfw.KeyEscape) == glfw.Press {
		vw.win.SetShouldClose(true)
	}

	if vw.win.GetKey(glfw.KeyW) == glfw.Press {
		vw.cam.Move(Forward, dt)
	}
	if vw.win.GetKey(glfw.KeyS) == glfw.Press {
		vw.cam.Move(Backward, dt)
	}
	if vw.win.GetKey(glfw.KeyA) == glfw.Press {
		vw.cam.Move(Left, dt)
	}
	if vw.win.GetKey(glfw.KeyD) == glfw.Press {
		vw.cam.Move(Right, dt)
	}
	if vw.win.GetKey(glfw.KeyQ) == glfw.Press {
		vw.cam.Move(Up, dt)
	}
	if vw.win.GetKey(glfw.KeyE) == glfw.Press {
		vw.cam.Move(Down, dt)
	}

	if vw.win.GetKey(glfw.KeyP) == glfw.Press {
		vw.ortho = false
	}
	if vw.win.GetKey(glfw.KeyO) == glfw.Press {
		vw.ortho = true
	}
}

// ProjectionMatrix returns the current projection: perspective from the
// camera zoom, or the fixed orthographic volume.
func (vw *View) ProjectionMatrix() mgl32.Mat4 {
	if vw.ortho {
		return mgl32.Ortho(-orthoSize, orthoSize, -orthoSize, orthoSize, nearPlane, farPlane)
	}
	aspect := float32(1)
	if vw.height > 0 {
		aspect = float32(vw.width) / float32(vw.height)
	}
	return mgl32.Perspective(mgl32.DegToRad(vw.cam.Zoom), aspect, nearPlane, farPlane)
}

// frameDelta returns the seconds elapsed since the previous frame.  The
// first sample returns zero: startup time (texture decode, shader compile)
// must not count as held-key movement.
func (vw *View) frameDelta(now float64) float32 {
	if vw.lastFrame == 0 {
		vw.lastFrame = now
		return 0
	}
	dt := float32(now - vw.lastFrame)
	vw.lastFrame = now
	return dt
}

// Update advances one frame: measures delta time, applies held keys, and
// uploads the view, projection, and viewPosition uniforms.
func (vw *View) Update() {
	dt := vw.frameDelta(glfw.GetTime())

	vw.processKeys(dt)

	vw.prog.Use()
	vw.prog.SetMat4("view", vw.cam.ViewMatrix())
	vw.prog.SetMat4("projection", vw.ProjectionMatrix())
	vw.prog.SetVec3("viewPosition", vw.cam.Position)
}
