package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// Window is a GLFW window with a current OpenGL context.
// GLFW requires every method to be called from the main thread.
type Window struct {
	window  *glfw.Window
	handler triangle.KeyHandler
	closed  bool
}

var _ triangle.Window = (*Window)(nil)

// OpenWindow initializes GLFW, creates a window with the context described
// by cfg and makes that context current. On failure everything initialized
// so far is released.
func OpenWindow(cfg triangle.Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(cfg.ForwardCompatible))
	glfw.WindowHint(glfw.Visible, glfwBool(cfg.Visible))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.SwapInterval >= 0 {
		glfw.SwapInterval(cfg.SwapInterval)
	}

	w := &Window{window: window}
	window.SetKeyCallback(w.keyCallback)
	return w, nil
}

// SetKeyHandler sets the handler called for every mapped key event.
func (w *Window) SetKeyHandler(h triangle.KeyHandler) {
	w.handler = h
}

func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.window.SetShouldClose(v) }

func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

// PollEvents processes pending events for all windows; key callbacks run
// from inside this call.
func (w *Window) PollEvents() { glfw.PollEvents() }

func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW. Later calls do nothing.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if w.handler == nil {
		return
	}
	k := glfwKeyToKey(key)
	if k == triangle.KeyNone {
		return
	}
	w.handler(k, glfwActionToAction(action))
}

// glfwKeyToKey maps GLFW keys to triangle keys.
func glfwKeyToKey(key glfw.Key) triangle.Key {
	switch key {
	case glfw.KeyEscape:
		return triangle.KeyEscape
	default:
		return triangle.KeyNone
	}
}

func glfwActionToAction(action glfw.Action) triangle.Action {
	switch action {
	case glfw.Press:
		return triangle.Press
	case glfw.Repeat:
		return triangle.Repeat
	default:
		return triangle.Release
	}
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
