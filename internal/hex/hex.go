// Package hex provides axial hex-grid coordinates, layouts that map them to
// world space, and a builder for the flat hexagon tile mesh.
// Axial coordinates (q, r) are used throughout; the cube coordinate s is
// derived as s = -q - r.
package hex

// Hex is a tile position in axial coordinates.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Origin is the hex at (0, 0).
var Origin = Hex{}

// New creates a hex from axial coordinates.
func New(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Add returns h + o.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

// Sub returns h - o.
func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R}
}

// Directions defines the six neighbor offsets in axial coordinates.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hexes.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range Directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Length returns the distance from the origin.
func (h Hex) Length() int {
	return max(abs(h.Q), abs(h.R), abs(h.S()))
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Hex) int {
	return a.Sub(b).Length()
}

// ToLowerRes maps h onto a grid coarsened by chunk, flooring each axial
// component toward negative infinity so that chunks stay the same size on
// both sides of the origin. chunk must be positive.
func (h Hex) ToLowerRes(chunk int) Hex {
	if chunk <= 0 {
		panic("hex: chunk size must be positive")
	}
	return Hex{Q: floorDiv(h.Q, chunk), R: floorDiv(h.R, chunk)}
}

// Hexagon returns every hex within radius of center, ordered by q then r.
// A radius-R hexagon holds 3R²+3R+1 hexes; a negative radius yields none.
func Hexagon(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	hexes := make([]Hex, 0, 3*radius*radius+3*radius+1)
	for q := -radius; q <= radius; q++ {
		rMin := max(-radius, -q-radius)
		rMax := min(radius, -q+radius)
		for r := rMin; r <= rMax; r++ {
			hexes = append(hexes, center.Add(Hex{Q: q, R: r}))
		}
	}
	return hexes
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
