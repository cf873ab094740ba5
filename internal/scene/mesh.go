package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/hexchunks/internal/hex"
)

// Mesh is triangle geometry shared by every instance that draws it.
// Triangles wind counter-clockwise when seen from their front side.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint16
}

// NewMesh wraps a hexagon tile mesh.
func NewMesh(info hex.MeshInfo) *Mesh {
	return &Mesh{
		Positions: info.Vertices,
		Normals:   info.Normals,
		Indices:   info.Indices,
	}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Cuboid builds an axis-aligned box of the given size centred on the origin.
func Cuboid(x, y, z float32) *Mesh {
	hx, hy, hz := x/2, y/2, z/2
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, hy, 0}, mgl32.Vec3{0, 0, hz}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, hz}, mgl32.Vec3{0, hy, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, hz}, mgl32.Vec3{hx, 0, 0}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{hx, 0, 0}, mgl32.Vec3{0, 0, hz}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{hx, 0, 0}, mgl32.Vec3{0, hy, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, hy, 0}, mgl32.Vec3{hx, 0, 0}},
	}

	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, 24),
		Normals:   make([]mgl32.Vec3, 0, 24),
		Indices:   make([]uint16, 0, 36),
	}
	half := mgl32.Vec3{hx, hy, hz}
	for _, f := range faces {
		c := mgl32.Vec3{f.n.X() * half.X(), f.n.Y() * half.Y(), f.n.Z() * half.Z()}
		base := uint16(len(m.Positions))
		m.Positions = append(m.Positions,
			c.Sub(f.u).Sub(f.v),
			c.Add(f.u).Sub(f.v),
			c.Add(f.u).Add(f.v),
			c.Sub(f.u).Add(f.v),
		)
		for i := 0; i < 4; i++ {
			m.Normals = append(m.Normals, f.n)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Material is a flat surface colour shared between instances.
type Material struct {
	Color color.NRGBA
}

// Instance places a mesh in the world.
type Instance struct {
	Mesh        *Mesh
	Material    *Material
	Translation mgl32.Vec3
}
