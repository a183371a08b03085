// Command gen renders the triangle in a hidden window, captures the
// framebuffer and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	_ "embed"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

//go:embed capture.toml
var captureConfig []byte

// frames rendered into the back buffer before reading pixels back.
const frames = 2

func init() {
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
	cfg, err := triangle.ParseConfig(captureConfig)
	if err != nil {
		return err
	}

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	dev, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	program, err := triangle.BuildProgram(dev, triangle.VertexShaderSource, triangle.FragmentShaderSource, os.Stdout)
	if err != nil {
		return fmt.Errorf("shader program: %w", err)
	}
	defer program.Delete()

	mesh := triangle.NewTriangleMesh(dev)
	defer mesh.Delete()

	renderer := triangle.NewRenderer(dev, program, mesh, cfg.ClearRGBA())

	width, height := window.FramebufferSize()
	for i := 0; i < frames; i++ {
		renderer.Frame(width, height)
	}

	img := toImage(dev.ReadPixels(width, height), width, height)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	path := filepath.Join(outDir, "triangle.jpg")
	if err := writeJPEG(path, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("captured", "path", path, "width", width, "height", height)
	return nil
}

// toImage flips bottom-up GL rows into a top-down RGBA image.
func toImage(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], pixels[src:src+rowLen])
	}
	return img
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
