// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Deskscene is an interactive viewer for a fixed 3D desk scene: a mug,
// books, a trail-mix container, and a pen on a stone table, lit through two
// back windows.  Mouse looks, WASD moves, Q/E rise and sink, the scroll
// wheel adjusts movement speed, and O/P switch between orthographic and
// perspective projection.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cdillon/deskscene/internal/config"
	"github.com/cdillon/deskscene/internal/render"
	"github.com/cdillon/deskscene/internal/scene"
	"github.com/cdillon/deskscene/internal/view"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "deskscene.toml", "settings file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		slog.Error("deskscene failed", "err", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Open(configFile)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing opengl: %w", err)
	}
	slog.Info("opengl context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	prog, err := render.NewProgram(render.PhongVertexSource, render.PhongFragmentSource)
	if err != nil {
		return fmt.Errorf("building phong program: %w", err)
	}
	defer prog.Release()

	cam := view.NewCamera()
	cam.Zoom = cfg.Camera.FOV
	cam.MouseSensitivity = cfg.Camera.MouseSensitivity
	vw := view.New(win, prog, cam)

	sc := scene.New(prog)
	if err := sc.Prepare(cfg.Textures.Dir); err != nil {
		return fmt.Errorf("preparing scene: %w", err)
	}
	defer sc.Release()

	for !win.ShouldClose() {
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		vw.Update()
		sc.Render()

		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
