// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render wraps the OpenGL resources behind the scene: the shader
// program with its fixed uniform protocol, uploaded primitive meshes, and
// the texture registry.
package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a compiled and linked shader program with cached uniform
// locations.  Setters silently skip uniforms the driver optimized away,
// logging each missing name once.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles the vertex and fragment sources and links them,
// returning an error carrying the GL info log on failure.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("link failed: %v", strings.TrimRight(infoLog, "\x00"))
	}
	return &Program{handle: handle, uniforms: make(map[string]int32)}, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

// Use makes this the active program.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Release deletes the GL program object.
func (p *Program) Release() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// uniform returns the cached location for name, querying GL on first use.
// A missing uniform is logged once and cached as -1.
func (p *Program) uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Error("render: uniform not found in shader program", "name", name)
	}
	p.uniforms[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.uniform(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.uniform(name); loc >= 0 {
		gl.Uniform2fv(loc, 1, &v[0])
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.uniform(name); loc >= 0 {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.uniform(name); loc >= 0 {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.uniform(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetInt sets an int uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.uniform(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

// SetBool sets a bool uniform (GLSL bools are set as ints).
func (p *Program) SetBool(name string, v bool) {
	var iv int32
	if v {
		iv = 1
	}
	p.SetInt(name, iv)
}

// SetSampler binds a sampler uniform to the given texture unit.
func (p *Program) SetSampler(name string, unit int32) {
	p.SetInt(name, unit)
}
