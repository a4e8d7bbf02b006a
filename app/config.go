package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"shaderplay/hal"
	"shaderplay/render"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Fixed palette.
var (
	Background = color.RGBA{R: 245, G: 245, B: 245, A: 255} // raywhite
	CheckerA   = color.RGBA{R: 0, G: 121, B: 241, A: 255}   // blue
	CheckerB   = color.RGBA{R: 112, G: 31, B: 126, A: 255}  // dark purple
	TextColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255} // light gray
)

// Config is built once at startup and passed by value.
type Config struct {
	BaseWidth    int     `toml:"base_width"`
	BaseHeight   int     `toml:"base_height"`
	Zoom         float64 `toml:"zoom"`
	FontSize     int     `toml:"font_size"`
	TargetFPS    int     `toml:"target_fps"`
	FovY         float64 `toml:"fovy"`
	Tile         int     `toml:"tile"`
	Subdivisions int     `toml:"subdivisions"`
	MeshScale    float64 `toml:"mesh_scale"`
	Title        string  `toml:"title"`
	Label        string  `toml:"label"`
}

// DefaultConfig returns the demo's fixed settings.
func DefaultConfig() Config {
	return Config{
		BaseWidth:    3840,
		BaseHeight:   2160,
		Zoom:         0.2,
		FontSize:     12,
		TargetFPS:    60,
		FovY:         45,
		Tile:         10,
		Subdivisions: 2,
		MeshScale:    0.1,
		Title:        "Shader Play",
		Label:        "Graphics: Raylib",
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Unknown keys are an
// error. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// OutputSize is the base window size scaled by Zoom*2, truncated per axis.
func (c Config) OutputSize() hal.Size {
	return hal.Size{
		W: int(float64(c.BaseWidth) * c.Zoom * 2),
		H: int(float64(c.BaseHeight) * c.Zoom * 2),
	}
}

// MeshSize returns the plane footprint for a w×h texture.
func (c Config) MeshSize(w, h int) (width, length float32) {
	return float32(float64(w) * c.MeshScale), float32(float64(h) * c.MeshScale)
}

// Camera returns the fixed top-down camera. Its height makes a plane of
// MeshSize(OutputSize()) fill the output height exactly.
func (c Config) Camera() render.Camera {
	z := CameraHeight(c.OutputSize().H, c.MeshScale, c.FovY)
	return render.Camera{
		Position:   render.V3(0, float32(z), 0),
		Target:     render.V3(0, 0, 0),
		Up:         render.V3(0, 0, 1),
		FovY:       float32(c.FovY),
		Projection: render.ProjectionPerspective,
	}
}

// CameraHeight returns the distance at which a perspective camera with a
// vertical field of view of fovyDeg sees exactly outputHeight*meshScale
// world units.
func CameraHeight(outputHeight int, meshScale, fovyDeg float64) float64 {
	half := fovyDeg * math.Pi / 180 * 0.5
	return (float64(outputHeight) * meshScale * 0.5) / math.Tan(half)
}

// Validate rejects settings that would give a degenerate surface or scene.
func (c Config) Validate() error {
	if s := c.OutputSize(); !s.Valid() {
		return fmt.Errorf("%w: output size %dx%d (base %dx%d, zoom %v)",
			ErrInvalidConfig, s.W, s.H, c.BaseWidth, c.BaseHeight, c.Zoom)
	}
	switch {
	case c.TargetFPS <= 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalidConfig, c.TargetFPS)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size %d", ErrInvalidConfig, c.FontSize)
	case c.Tile <= 0:
		return fmt.Errorf("%w: tile %d", ErrInvalidConfig, c.Tile)
	case c.Subdivisions <= 0:
		return fmt.Errorf("%w: subdivisions %d", ErrInvalidConfig, c.Subdivisions)
	case c.FovY <= 0 || c.FovY >= 180:
		return fmt.Errorf("%w: fovy %v", ErrInvalidConfig, c.FovY)
	case c.MeshScale <= 0:
		return fmt.Errorf("%w: mesh_scale %v", ErrInvalidConfig, c.MeshScale)
	}
	return nil
}
