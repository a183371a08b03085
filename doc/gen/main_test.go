package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/triangle"
)

func TestCaptureConfig(t *testing.T) {
	cfg, err := triangle.ParseConfig(captureConfig)
	require.NoError(t, err)

	assert.False(t, cfg.Visible)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	require.NotNil(t, cfg.ClearRGBA())
}

func TestToImageFlipsRows(t *testing.T) {
	// 1x2 framebuffer, bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img := toImage(pixels, 1, 2)

	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pix[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pix[4:8])
}
