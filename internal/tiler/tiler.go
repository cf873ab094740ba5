// Package tiler lays out a hexagon-shaped region of tiles and classifies
// each tile into a colour by the chunk it falls in.
package tiler

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/hexchunks/internal/hex"
)

// DefaultColors is the number of colour classes used when Config.Colors is 0.
const DefaultColors = 3

// ErrInvalidConfig is returned for a negative radius, a non-positive chunk
// size or a non-positive colour count.
var ErrInvalidConfig = errors.New("invalid tiler configuration")

// Config describes the region to tile.
type Config struct {
	Layout    hex.Layout
	Center    hex.Hex
	Radius    int
	ChunkSize int
	Colors    int // number of colour classes, 0 means DefaultColors
}

// Placement is one tile to instantiate.
type Placement struct {
	Hex        hex.Hex
	World      mgl32.Vec2 // layout-space position; x maps to world X, y to world Z
	ColorIndex int
}

func (c Config) colors() int {
	if c.Colors == 0 {
		return DefaultColors
	}
	return c.Colors
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius %d is negative", ErrInvalidConfig, c.Radius)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrInvalidConfig, c.ChunkSize)
	}
	if c.Colors < 0 {
		return fmt.Errorf("%w: color count %d must be positive", ErrInvalidConfig, c.Colors)
	}
	return nil
}

// Tile returns one placement per hex within Radius of Center.
func Tile(cfg Config) ([]Placement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.colors()
	hexes := hex.Hexagon(cfg.Center, cfg.Radius)
	placements := make([]Placement, len(hexes))
	for i, h := range hexes {
		placements[i] = Placement{
			Hex:        h,
			World:      cfg.Layout.HexToWorld(h),
			ColorIndex: ColorIndex(h, cfg.ChunkSize, n),
		}
	}
	return placements, nil
}

// ColorIndex coarsens h by chunk and returns (q - r) mod n in [0, n).
func ColorIndex(h hex.Hex, chunk, n int) int {
	c := h.ToLowerRes(chunk)
	return EuclidMod(c.Q-c.R, n)
}

// EuclidMod returns a mod n in [0, n) for any sign of a. n must be positive.
func EuclidMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Counts tallies placements per colour index.
func Counts(placements []Placement, n int) []int {
	counts := make([]int, n)
	for _, p := range placements {
		if p.ColorIndex >= 0 && p.ColorIndex < n {
			counts[p.ColorIndex]++
		}
	}
	return counts
}
