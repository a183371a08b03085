package triangle

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Config describes the window and context the program opens.
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`

	GLMajor           int  `toml:"gl_major"`
	GLMinor           int  `toml:"gl_minor"`
	CoreProfile       bool `toml:"core_profile"`
	ForwardCompatible bool `toml:"forward_compatible"`

	// Visible is false for offscreen captures.
	Visible bool `toml:"visible"`

	// SwapInterval is passed to the window system when non-negative.
	SwapInterval int `toml:"swap_interval"`

	// ClearColor is RGBA; empty keeps the context default.
	ClearColor []float32 `toml:"clear_color"`
}

// DefaultConfig returns the fixed configuration of the first-triangle window.
func DefaultConfig() Config {
	return Config{
		Width:             800,
		Height:            600,
		Title:             "2-first-triangle",
		GLMajor:           3,
		GLMinor:           3,
		CoreProfile:       true,
		ForwardCompatible: true,
		Visible:           true,
		SwapInterval:      -1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is below the required 3.3", c.GLMajor, c.GLMinor)
	}
	if len(c.ClearColor) != 0 && len(c.ClearColor) != 4 {
		return fmt.Errorf("clear color needs 4 components, got %d", len(c.ClearColor))
	}
	for i, v := range c.ClearColor {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("clear color component %d out of range: %v", i, v)
		}
	}
	return nil
}

// ClearRGBA returns the clear color, or nil when none is configured.
func (c Config) ClearRGBA() *[4]float32 {
	if len(c.ClearColor) != 4 {
		return nil
	}
	return (*[4]float32)(c.ClearColor)
}

// ParseConfig decodes TOML on top of DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
