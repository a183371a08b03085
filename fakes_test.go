package triangle_test

import (
	"fmt"

	"github.com/go-theft-auto/triangle"
)

// fakeDevice records graphics calls without a GL context.
type fakeDevice struct {
	nextID uint32

	// Stages whose compile fails, with the log to report.
	failCompile map[triangle.Stage]string
	// Non-empty makes LinkProgram fail with this log.
	failLink string

	shaderStage    map[uint32]triangle.Stage
	shaderSource   map[uint32]string
	compiled       map[uint32]bool
	attached       map[uint32][]uint32
	linked         map[uint32]bool
	deletedShaders []uint32
	deletedProgram []uint32
	usedProgram    uint32

	boundVAO    uint32
	boundVBO    uint32
	bufferData  map[uint32][]float32
	attribs     map[uint32]attrib
	enabled     map[uint32]bool
	deletedVAOs []uint32
	deletedVBOs []uint32
	viewport    [4]int32
	clearColor  *[4]float32
	clears      int
	draws       []draw
	calls       []string
}

type attrib struct {
	vao    uint32
	size   int32
	stride int32
	offset uintptr
}

type draw struct {
	program uint32
	vao     uint32
	first   int32
	count   int32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failCompile:  map[triangle.Stage]string{},
		shaderStage:  map[uint32]triangle.Stage{},
		shaderSource: map[uint32]string{},
		compiled:     map[uint32]bool{},
		attached:     map[uint32][]uint32{},
		linked:       map[uint32]bool{},
		bufferData:   map[uint32][]float32{},
		attribs:      map[uint32]attrib{},
		enabled:      map[uint32]bool{},
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) CreateShader(stage triangle.Stage) uint32 {
	s := d.id()
	d.shaderStage[s] = stage
	d.record("CreateShader(%s)", stage)
	return s
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.shaderSource[shader] = source
}

func (d *fakeDevice) CompileShader(shader uint32) {
	_, fail := d.failCompile[d.shaderStage[shader]]
	d.compiled[shader] = !fail
	d.record("CompileShader(%d)", shader)
}

func (d *fakeDevice) ShaderCompiled(shader uint32) bool { return d.compiled[shader] }

func (d *fakeDevice) ShaderInfoLog(shader uint32) string {
	return d.failCompile[d.shaderStage[shader]]
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.deletedShaders = append(d.deletedShaders, shader)
	d.record("DeleteShader(%d)", shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	p := d.id()
	d.record("CreateProgram")
	return p
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) LinkProgram(program uint32) {
	ok := d.failLink == ""
	for _, s := range d.attached[program] {
		ok = ok && d.compiled[s]
	}
	d.linked[program] = ok
	d.record("LinkProgram(%d)", program)
}

func (d *fakeDevice) ProgramLinked(program uint32) bool { return d.linked[program] }

func (d *fakeDevice) ProgramInfoLog(program uint32) string {
	if d.failLink != "" {
		return d.failLink
	}
	return "error: linking with uncompiled shader"
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.usedProgram = program
	d.record("UseProgram(%d)", program)
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.deletedProgram = append(d.deletedProgram, program)
}

func (d *fakeDevice) GenVertexArray() uint32 { return d.id() }

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.boundVAO = vao
	d.record("BindVertexArray(%d)", vao)
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.deletedVAOs = append(d.deletedVAOs, vao) }

func (d *fakeDevice) GenBuffer() uint32 { return d.id() }

func (d *fakeDevice) BindArrayBuffer(vbo uint32) { d.boundVBO = vbo }

func (d *fakeDevice) BufferStaticData(data []float32) {
	d.bufferData[d.boundVBO] = append([]float32(nil), data...)
}

func (d *fakeDevice) DeleteBuffer(vbo uint32) { d.deletedVBOs = append(d.deletedVBOs, vbo) }

func (d *fakeDevice) VertexAttribFloat(index uint32, size, stride int32, offset uintptr) {
	d.attribs[index] = attrib{vao: d.boundVAO, size: size, stride: stride, offset: offset}
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) { d.enabled[index] = true }

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.viewport = [4]int32{x, y, width, height}
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.clearColor = &[4]float32{r, g, b, a}
}

func (d *fakeDevice) ClearColorBuffer() {
	d.clears++
	d.record("Clear")
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.draws = append(d.draws, draw{program: d.usedProgram, vao: d.boundVAO, first: first, count: count})
	d.record("DrawTriangles(%d,%d)", first, count)
}

// fakeWindow closes on request and runs onPoll for every PollEvents call.
type fakeWindow struct {
	shouldClose bool
	swaps       int
	polls       int
	width       int
	height      int
	onPoll      func(poll int)
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{width: 800, height: 600}
}

func (w *fakeWindow) ShouldClose() bool           { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(v bool)       { w.shouldClose = v }
func (w *fakeWindow) SwapBuffers()                { w.swaps++ }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w.polls)
	}
}
