package hex

import "github.com/go-gl/mathgl/mgl32"

// MeshInfo is the raw geometry of a hexagon tile: a centre vertex followed
// by the six corners, fanned into six triangles.
type MeshInfo struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Indices  []uint16
}

// PlaneMeshBuilder builds the flat hexagon mesh for a single tile.
// The plane lies in world XZ (layout y maps to world z) facing +Y unless
// Facing is called.
type PlaneMeshBuilder struct {
	layout   Layout
	pos      Hex
	scale    mgl32.Vec3
	facing   mgl32.Vec3
	centered bool
}

// NewPlaneMeshBuilder starts a builder for the origin hex of layout.
func NewPlaneMeshBuilder(layout Layout) *PlaneMeshBuilder {
	return &PlaneMeshBuilder{
		layout: layout,
		scale:  mgl32.Vec3{1, 1, 1},
		facing: mgl32.Vec3{0, 1, 0},
	}
}

// At places the mesh at the world position of h.
func (b *PlaneMeshBuilder) At(h Hex) *PlaneMeshBuilder {
	b.pos = h
	return b
}

// WithScale scales every vertex around the hex centre.
func (b *PlaneMeshBuilder) WithScale(scale mgl32.Vec3) *PlaneMeshBuilder {
	b.scale = scale
	return b
}

// Facing orients the plane so its normal points along dir.
func (b *PlaneMeshBuilder) Facing(dir mgl32.Vec3) *PlaneMeshBuilder {
	if dir.Len() > 0 {
		b.facing = dir.Normalize()
	}
	return b
}

// CenterAligned puts the hex centre at the mesh origin, ignoring At and the
// layout origin.
func (b *PlaneMeshBuilder) CenterAligned() *PlaneMeshBuilder {
	b.centered = true
	return b
}

// Build generates the mesh.
func (b *PlaneMeshBuilder) Build() MeshInfo {
	up := mgl32.Vec3{0, 1, 0}
	rot := mgl32.QuatIdent()
	if !b.facing.ApproxEqual(up) {
		rot = mgl32.QuatBetweenVectors(up, b.facing)
	}

	var offset mgl32.Vec3
	if !b.centered {
		p := b.layout.HexToWorld(b.pos)
		offset = mgl32.Vec3{p.X(), 0, p.Y()}
	}

	info := MeshInfo{
		Vertices: make([]mgl32.Vec3, 0, 7),
		Normals:  make([]mgl32.Vec3, 0, 7),
		UVs:      make([]mgl32.Vec2, 0, 7),
		Indices:  make([]uint16, 0, 18),
	}

	add := func(local mgl32.Vec2) {
		v := mgl32.Vec3{local.X() * b.scale.X(), 0, local.Y() * b.scale.Z()}
		info.Vertices = append(info.Vertices, rot.Rotate(v).Add(offset))
		info.Normals = append(info.Normals, b.facing)
		info.UVs = append(info.UVs, mgl32.Vec2{
			0.5 + local.X()/(2*b.layout.Scale.X()),
			0.5 + local.Y()/(2*b.layout.Scale.Y()),
		})
	}

	add(mgl32.Vec2{})
	for i := 0; i < 6; i++ {
		add(b.layout.CornerOffset(i))
	}

	// Corners run counter-clockwise in layout space, which is clockwise when
	// seen from +Y, so each fan triangle takes the next corner first.
	for i := 0; i < 6; i++ {
		next := (i + 1) % 6
		info.Indices = append(info.Indices, 0, uint16(1+next), uint16(1+i))
	}

	return info
}
