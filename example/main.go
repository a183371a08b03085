// Example opens the first-triangle window and draws a white triangle until
// the window is closed or Escape is pressed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := triangle.DefaultConfig()

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	dev, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Info("context ready", "gl", dev.Version(), "width", cfg.Width, "height", cfg.Height)

	// Shader failures are reported but not fatal; the frame just renders
	// without a working program.
	program, err := triangle.BuildProgram(dev, triangle.VertexShaderSource, triangle.FragmentShaderSource, os.Stdout)
	if err != nil {
		logger.Warn("shader program incomplete", "err", err)
	}
	defer program.Delete()

	window.SetKeyHandler(triangle.CloseOnEscape(window))

	mesh := triangle.NewTriangleMesh(dev)
	defer mesh.Delete()

	renderer := triangle.NewRenderer(dev, program, mesh, cfg.ClearRGBA())
	frames := triangle.Run(window, renderer)

	logger.Info("window closed", "frames", frames)
	return nil
}
