// Package preview draws the tiled grid as a flat top-down PNG without
// opening a window.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"

	"chosenoffset.com/hexchunks/internal/config"
	"chosenoffset.com/hexchunks/internal/tiler"
)

// Options controls the output image.
type Options struct {
	PixelsPerUnit float32 // Image pixels per world unit
	Margin        int     // Border around the grid, in pixels
}

// DefaultOptions returns 4 pixels per world unit with a 16 pixel margin.
func DefaultOptions() Options {
	return Options{PixelsPerUnit: 4, Margin: 16}
}

// Render draws every tile of cfg's grid seen from above. World X runs right
// and world Z runs down the image.
func Render(cfg *config.Config, opts Options) (*image.NRGBA, error) {
	if opts.PixelsPerUnit <= 0 {
		return nil, fmt.Errorf("pixels per unit %f must be positive", opts.PixelsPerUnit)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	background, err := config.ParseColor(cfg.Scene.ClearColor)
	if err != nil {
		return nil, err
	}

	layout := cfg.Layout()
	placements, err := tiler.Tile(tiler.Config{
		Layout:    layout,
		Center:    cfg.Grid.Center,
		Radius:    cfg.Grid.Radius,
		ChunkSize: cfg.Grid.ChunkSize,
		Colors:    len(palette),
	})
	if err != nil {
		return nil, err
	}

	// Footprint corners around a tile centre.
	var corners [6]mgl32.Vec2
	for i := range corners {
		corners[i] = layout.CornerOffset(i)
	}

	minP := mgl32.Vec2{float32(math.Inf(1)), float32(math.Inf(1))}
	maxP := mgl32.Vec2{float32(math.Inf(-1)), float32(math.Inf(-1))}
	for _, p := range placements {
		for _, c := range corners {
			v := p.World.Add(c)
			minP = mgl32.Vec2{min(minP.X(), v.X()), min(minP.Y(), v.Y())}
			maxP = mgl32.Vec2{max(maxP.X(), v.X()), max(maxP.Y(), v.Y())}
		}
	}

	ppu := opts.PixelsPerUnit
	width := int(math.Ceil(float64((maxP.X()-minP.X())*ppu))) + 2*opts.Margin
	height := int(math.Ceil(float64((maxP.Y()-minP.Y())*ppu))) + 2*opts.Margin

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	toPixel := func(v mgl32.Vec2) mgl32.Vec2 {
		return mgl32.Vec2{
			(v.X()-minP.X())*ppu + float32(opts.Margin),
			(v.Y()-minP.Y())*ppu + float32(opts.Margin),
		}
	}

	footprint := Darken(background, 0.6)
	scale := cfg.Grid.MeshScale
	for _, p := range placements {
		center := toPixel(p.World)
		fillHexagon(img, center, corners, ppu, footprint)
		fillHexagon(img, center, corners, ppu*scale, palette[p.ColorIndex])
	}

	return img, nil
}

// fillHexagon rasterizes one hexagon into its bounding box only.
func fillHexagon(dst *image.NRGBA, center mgl32.Vec2, corners [6]mgl32.Vec2, scale float32, clr color.NRGBA) {
	var pts [6]mgl32.Vec2
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for i, c := range corners {
		pts[i] = center.Add(c.Mul(scale))
		minX, minY = min(minX, pts[i].X()), min(minY, pts[i].Y())
		maxX, maxY = max(maxX, pts[i].X()), max(maxY, pts[i].Y())
	}

	box := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	box = box.Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	z.MoveTo(pts[0].X()-ox, pts[0].Y()-oy)
	for _, p := range pts[1:] {
		z.LineTo(p.X()-ox, p.Y()-oy)
	}
	z.ClosePath()
	z.Draw(dst, box, image.NewUniform(clr), image.Point{})
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
