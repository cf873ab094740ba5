package hex

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

/*
	Pointy-top: adjacent centres are sqrt(3)*size apart horizontally and
	3/2*size apart between rows.
	Flat-top: 3/2*size apart between columns and sqrt(3)*size vertically.
*/

var sqrt3 = float32(math.Sqrt(3))

// Orientation selects pointy-top or flat-top hexagons.
type Orientation int

const (
	Pointy Orientation = iota
	Flat
)

func (o Orientation) String() string {
	switch o {
	case Pointy:
		return "pointy"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

// ParseOrientation converts "pointy" or "flat" to an Orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "pointy", "":
		return Pointy, true
	case "flat":
		return Flat, true
	default:
		return Pointy, false
	}
}

// forward maps axial (q, r) to unscaled world offsets, backward inverts it.
// startAngle is the angle of corner 0 in sixths of a turn.
type matrix struct {
	f0, f1, f2, f3 float32
	b0, b1, b2, b3 float32
	startAngle     float32
}

var matrices = [...]matrix{
	Pointy: {
		f0: sqrt3, f1: sqrt3 / 2, f2: 0, f3: 1.5,
		b0: sqrt3 / 3, b1: -1.0 / 3, b2: 0, b3: 2.0 / 3,
		startAngle: 0.5,
	},
	Flat: {
		f0: 1.5, f1: 0, f2: sqrt3 / 2, f3: sqrt3,
		b0: 2.0 / 3, b1: 0, b2: -1.0 / 3, b3: sqrt3 / 3,
		startAngle: 0,
	},
}

// Layout maps hexes to 2D world positions. Scale is the outer radius of a
// hex along each world axis.
type Layout struct {
	Orientation Orientation
	Origin      mgl32.Vec2
	Scale       mgl32.Vec2
}

// DefaultLayout returns a pointy-top layout of unit scale at the origin.
func DefaultLayout() Layout {
	return Layout{Orientation: Pointy, Scale: mgl32.Vec2{1, 1}}
}

// NewLayout returns a pointy-top layout with the given scale.
func NewLayout(scale mgl32.Vec2) Layout {
	l := DefaultLayout()
	l.Scale = scale
	return l
}

func (l Layout) matrix() matrix {
	if l.Orientation == Flat {
		return matrices[Flat]
	}
	return matrices[Pointy]
}

// HexToWorld returns the world position of the centre of h.
func (l Layout) HexToWorld(h Hex) mgl32.Vec2 {
	m := l.matrix()
	q, r := float32(h.Q), float32(h.R)
	x := (m.f0*q + m.f1*r) * l.Scale.X()
	y := (m.f2*q + m.f3*r) * l.Scale.Y()
	return mgl32.Vec2{x + l.Origin.X(), y + l.Origin.Y()}
}

// WorldToHex returns the hex containing the world position p.
func (l Layout) WorldToHex(p mgl32.Vec2) Hex {
	m := l.matrix()
	x := float64((p.X() - l.Origin.X()) / l.Scale.X())
	y := float64((p.Y() - l.Origin.Y()) / l.Scale.Y())
	q := float64(m.b0)*x + float64(m.b1)*y
	r := float64(m.b2)*x + float64(m.b3)*y
	return round(q, r)
}

// CornerOffset returns the offset of corner i (0..5) from a hex centre.
func (l Layout) CornerOffset(i int) mgl32.Vec2 {
	m := l.matrix()
	angle := 2 * math.Pi * float64(m.startAngle+float32(i)) / 6
	return mgl32.Vec2{
		l.Scale.X() * float32(math.Cos(angle)),
		l.Scale.Y() * float32(math.Sin(angle)),
	}
}

// Corners returns the six world-space corners of h.
func (l Layout) Corners(h Hex) [6]mgl32.Vec2 {
	center := l.HexToWorld(h)
	var corners [6]mgl32.Vec2
	for i := range corners {
		corners[i] = center.Add(l.CornerOffset(i))
	}
	return corners
}

// round converts fractional axial coordinates to the nearest hex.
func round(fq, fr float64) Hex {
	fs := -fq - fr
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)
	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Hex{Q: int(q), R: int(r)}
}
