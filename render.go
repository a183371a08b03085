package triangle

// Window is the window-system surface the render loop drives.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	// PollEvents processes pending events, running any registered
	// key handlers.
	PollEvents()
	FramebufferSize() (width, height int)
}

// Renderer draws one mesh with one program.
type Renderer struct {
	dev        Device
	program    Program
	mesh       *Mesh
	clearColor *[4]float32
}

// NewRenderer creates a renderer. A nil clearColor leaves the context's
// clear color untouched.
func NewRenderer(dev Device, program Program, mesh *Mesh, clearColor *[4]float32) *Renderer {
	return &Renderer{
		dev:        dev,
		program:    program,
		mesh:       mesh,
		clearColor: clearColor,
	}
}

// Frame renders a single frame into a framebuffer of the given size.
func (r *Renderer) Frame(width, height int) {
	r.dev.Viewport(0, 0, int32(width), int32(height))
	if c := r.clearColor; c != nil {
		r.dev.ClearColor(c[0], c[1], c[2], c[3])
	}
	r.dev.ClearColorBuffer()

	r.program.Use()
	r.mesh.Bind()
	r.dev.DrawTriangles(0, r.mesh.VertexCount())
}

// Run renders frames until w reports it should close, and returns the
// number of frames drawn. The close flag is checked once per iteration, so
// a close requested during PollEvents ends the loop before the next frame.
func Run(w Window, r *Renderer) int {
	frames := 0
	for !w.ShouldClose() {
		r.Frame(w.FramebufferSize())
		w.SwapBuffers()
		w.PollEvents()
		frames++
	}
	return frames
}
