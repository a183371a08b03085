package triangle

import (
	"errors"
	"fmt"
	"io"
)

// VertexShaderSource passes the position at attribute 0 straight through to
// clip space.
const VertexShaderSource = `
#version 330 core

layout (location = 0) in vec3 aPos;

void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// FragmentShaderSource colors every fragment opaque white.
const FragmentShaderSource = `
#version 330 core

out vec4 FragColor;

void main()
{
    FragColor = vec4(1.0f, 1.0f, 1.0f, 1.0f);
}
`

// FailureKind tells whether a shader step failed while compiling or linking.
type FailureKind int

const (
	CompilationFailed FailureKind = iota
	LinkingFailed
)

func (k FailureKind) String() string {
	if k == LinkingFailed {
		return "LINKING_FAILED"
	}
	return "COMPILATION_FAILED"
}

// ShaderError describes one failed compile or link step.
// Link failures carry StageProgram.
type ShaderError struct {
	Stage Stage
	Kind  FailureKind
	Log   string
}

// Header returns the diagnostic header line, e.g.
// ERROR::SHADER::VERTEX::COMPILATION_FAILED.
func (e *ShaderError) Header() string {
	return "ERROR::SHADER::" + e.Stage.String() + "::" + e.Kind.String()
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Header(), e.Log)
}

// Program is a linked shader program.
type Program struct {
	dev ShaderDevice
	id  uint32
}

// ID returns the underlying program handle.
func (p Program) ID() uint32 { return p.id }

// Use makes p the active program.
func (p Program) Use() {
	p.dev.UseProgram(p.id)
}

// Delete releases the program. Safe to call on a zero Program.
func (p Program) Delete() {
	if p.dev != nil && p.id != 0 {
		p.dev.DeleteProgram(p.id)
	}
}

// BuildProgram compiles both stages and links them into a program.
//
// Failures do not stop the build: each one is written to diag as a
// diagnostic header followed by the driver log, and the program handle is
// returned anyway. The returned error joins every *ShaderError so callers can
// decide whether the handle is worth rendering with. Both shader objects are
// deleted before returning.
func BuildProgram(dev ShaderDevice, vertexSource, fragmentSource string, diag io.Writer) (Program, error) {
	if diag == nil {
		diag = io.Discard
	}

	var errs []error
	report := func(err *ShaderError) {
		fmt.Fprintf(diag, "%s\n%s\n", err.Header(), err.Log)
		errs = append(errs, err)
	}

	vertexShader := compileShader(dev, StageVertex, vertexSource, report)
	fragmentShader := compileShader(dev, StageFragment, fragmentSource, report)

	program := dev.CreateProgram()
	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	dev.LinkProgram(program)

	if !dev.ProgramLinked(program) {
		report(&ShaderError{Stage: StageProgram, Kind: LinkingFailed, Log: dev.ProgramInfoLog(program)})
	}

	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	return Program{dev: dev, id: program}, errors.Join(errs...)
}

func compileShader(dev ShaderDevice, stage Stage, source string, report func(*ShaderError)) uint32 {
	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if !dev.ShaderCompiled(shader) {
		report(&ShaderError{Stage: stage, Kind: CompilationFailed, Log: dev.ShaderInfoLog(shader)})
	}
	return shader
}
