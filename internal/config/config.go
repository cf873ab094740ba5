// Package config holds the viewer settings. They are loaded from a JSON
// file so the grid can be reshaped without rebuilding.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/hexchunks/internal/hex"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings
type Config struct {
	Window WindowConfig `json:"window"`
	Grid   GridConfig   `json:"grid"`
	Camera CameraConfig `json:"camera"`
	Scene  SceneConfig  `json:"scene"`
}

// WindowConfig describes the OS window
type WindowConfig struct {
	Title     string `json:"title"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Resizable bool   `json:"resizable"`
}

// GridConfig describes the tiled region and its colouring
type GridConfig struct {
	HexSize     [2]float32 `json:"hex_size"`    // Outer radius along world X and Z
	Orientation string     `json:"orientation"` // "pointy" or "flat"
	Center      hex.Hex    `json:"center"`
	Radius      int        `json:"radius"`     // Rings around the centre
	ChunkSize   int        `json:"chunk_size"` // Hexes per colour chunk along each axis
	Colors      []string   `json:"colors"`     // "#rrggbb", one per colour class
	MeshScale   float32    `json:"mesh_scale"` // Tile scale, < 1 leaves a gap between tiles
}

// CameraConfig describes the initial orbit camera pose
type CameraConfig struct {
	Radius float32 `json:"radius"`
	Yaw    float32 `json:"yaw"`   // Radians
	Pitch  float32 `json:"pitch"` // Radians, Tau/4 looks straight down
}

// SceneConfig describes the rest of the scene
type SceneConfig struct {
	ClearColor     string     `json:"clear_color"`
	GroundColor    string     `json:"ground_color"`
	GroundSize     [3]float32 `json:"ground_size"`
	Ambient        float64    `json:"ambient"`         // Ambient light level
	LightFrom      [3]float32 `json:"light_from"`      // Light position, aimed at the origin
	LightIntensity float64    `json:"light_intensity"` // Diffuse strength
	SurfaceNoise   float64    `json:"surface_noise"`   // Brightness variation, 0 disables
	NoiseSeed      int64      `json:"noise_seed"`
	ShowHUD        bool       `json:"show_hud"`
}

// DefaultConfig returns the settings of the stock demo scene
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Hex Chunks",
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
		Grid: GridConfig{
			HexSize:     [2]float32{8, 8},
			Orientation: "pointy",
			Center:      hex.Origin,
			Radius:      10,
			ChunkSize:   2,
			Colors:      []string{"#0000ff", "#ff0000", "#008000"},
			MeshScale:   0.9,
		},
		Camera: CameraConfig{
			Radius: 200,
			Yaw:    mgl32.DegToRad(30),
			Pitch:  mgl32.DegToRad(90),
		},
		Scene: SceneConfig{
			ClearColor:     "#2b2c2f",
			GroundColor:    "#4d804d",
			GroundSize:     [3]float32{1, 1, 1},
			Ambient:        0.3,
			LightFrom:      [3]float32{1, 1, 1},
			LightIntensity: 1.0,
			SurfaceNoise:   0,
			NoiseSeed:      1,
			ShowHUD:        true,
		},
	}
}

// LoadConfig loads settings from a JSON file over the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Grid.HexSize[0] <= 0 || c.Grid.HexSize[1] <= 0 {
		return fmt.Errorf("%w: hex size %v must be positive", ErrInvalid, c.Grid.HexSize)
	}
	if _, ok := hex.ParseOrientation(c.Grid.Orientation); !ok {
		return fmt.Errorf("%w: unknown orientation %q", ErrInvalid, c.Grid.Orientation)
	}
	if c.Grid.Radius < 0 {
		return fmt.Errorf("%w: radius %d is negative", ErrInvalid, c.Grid.Radius)
	}
	if c.Grid.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrInvalid, c.Grid.ChunkSize)
	}
	if len(c.Grid.Colors) == 0 {
		return fmt.Errorf("%w: at least one grid color is required", ErrInvalid)
	}
	if c.Grid.MeshScale <= 0 {
		return fmt.Errorf("%w: mesh scale %f must be positive", ErrInvalid, c.Grid.MeshScale)
	}
	if c.Camera.Radius <= 0 {
		return fmt.Errorf("%w: camera radius %f must be positive", ErrInvalid, c.Camera.Radius)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	for _, s := range []string{c.Scene.ClearColor, c.Scene.GroundColor} {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// Orientation returns the parsed grid orientation
func (c *Config) Orientation() hex.Orientation {
	o, _ := hex.ParseOrientation(c.Grid.Orientation)
	return o
}

// Layout returns the hex layout described by the grid settings
func (c *Config) Layout() hex.Layout {
	return hex.Layout{
		Orientation: c.Orientation(),
		Scale:       mgl32.Vec2{c.Grid.HexSize[0], c.Grid.HexSize[1]},
	}
}

// Palette returns the grid colours in order
func (c *Config) Palette() ([]color.NRGBA, error) {
	palette := make([]color.NRGBA, len(c.Grid.Colors))
	for i, s := range c.Grid.Colors {
		clr, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		palette[i] = clr
	}
	return palette, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa"
func ParseColor(s string) (color.NRGBA, error) {
	hexStr := strings.TrimPrefix(s, "#")
	if len(hexStr) != 6 && len(hexStr) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: color %q is not #rrggbb", ErrInvalid, s)
	}
	if len(hexStr) == 6 {
		hexStr += "ff"
	}
	v, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
