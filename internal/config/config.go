// Package config handles Prism configuration loading and management.
package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"

	"github.com/taigrr/prism/internal/logger"
	"github.com/taigrr/prism/pkg/models"
)

// Config holds all renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds what is drawn and from which angle.
type RenderConfig struct {
	Shape      string  `yaml:"shape"`      // cube or pyramid
	Rounds     int     `yaml:"rounds"`     // Subdivision rounds for the pyramid
	Horizontal float64 `yaml:"horizontal"` // Degrees about the Y axis
	Vertical   float64 `yaml:"vertical"`   // Degrees about the X axis
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background"` // Hex color, e.g. "#000000"
	Wireframe  bool    `yaml:"wireframe"`
}

// OutputConfig holds headless output settings.
type OutputConfig struct {
	Path     string `yaml:"path"`      // Image file; the extension picks the format
	Scale    int    `yaml:"scale"`     // Pixel upscale factor
	MeshPath string `yaml:"mesh_path"` // Optional .glb export of the built mesh
}

// ViewerConfig holds terminal viewer settings.
type ViewerConfig struct {
	Interactive bool    `yaml:"interactive"`
	Step        float64 `yaml:"step"` // Degrees per key press
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Shape:      "cube",
			Rounds:     4,
			Horizontal: 30,
			Vertical:   20,
			Width:      200,
			Height:     200,
			Background: "#000000",
		},
		Output: OutputConfig{
			Path:  "prism.png",
			Scale: 1,
		},
		Viewer: ViewerConfig{
			Step: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var err error

	if _, e := models.ParseShape(c.Render.Shape); e != nil {
		err = multierr.Append(err, e)
	}
	if c.Render.Rounds < 0 || c.Render.Rounds > models.MaxRounds {
		err = multierr.Append(err, fmt.Errorf("%w: %d (want 0..%d)", models.ErrRounds, c.Render.Rounds, models.MaxRounds))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("invalid size %dx%d", c.Render.Width, c.Render.Height))
	}
	if _, e := c.BackgroundColor(); e != nil {
		err = multierr.Append(err, e)
	}
	if c.Output.Scale < 1 {
		err = multierr.Append(err, fmt.Errorf("invalid scale %d", c.Output.Scale))
	}
	if c.Viewer.Step <= 0 {
		err = multierr.Append(err, fmt.Errorf("invalid step %v", c.Viewer.Step))
	}
	if _, e := logger.ParseLevel(c.Logging.Level); e != nil {
		err = multierr.Append(err, e)
	}

	return err
}

// BackgroundColor parses Render.Background.
func (c *Config) BackgroundColor() (color.RGBA, error) {
	col, err := colorful.Hex(c.Render.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("background %q: %w", c.Render.Background, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
