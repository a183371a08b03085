// Package opengl provides the GLFW window and OpenGL 3.3 core device used to
// draw the triangle.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// Device implements triangle.Device on the current OpenGL context.
// It must only be used from the thread that owns the context.
type Device struct{}

var _ triangle.Device = Device{}

// NewDevice loads the OpenGL function pointers for the current context.
func NewDevice() (Device, error) {
	if err := gl.Init(); err != nil {
		return Device{}, err
	}
	return Device{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (Device) CreateShader(stage triangle.Stage) uint32 {
	switch stage {
	case triangle.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case triangle.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (Device) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(gl.GoStr(&log[0]), "\n")
}

func (Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(gl.GoStr(&log[0]), "\n")
}

func (Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Device) BindArrayBuffer(vbo uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, vbo) }

func (Device) BufferStaticData(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Device) DeleteBuffer(vbo uint32) { gl.DeleteBuffers(1, &vbo) }

func (Device) VertexAttribFloat(index uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Device) ClearColorBuffer() { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (Device) DrawTriangles(first, count int32) { gl.DrawArrays(gl.TRIANGLES, first, count) }

// ReadPixels reads the bound framebuffer as tightly packed RGBA rows,
// bottom row first.
func (Device) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
