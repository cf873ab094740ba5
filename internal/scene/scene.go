// Package scene holds the 3D world drawn by the viewer: shared meshes and
// materials, their instances, an orbit camera and the lights. Render
// projects it onto a 2D render.Image with a painter's algorithm.
package scene

import (
	"image"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/hexchunks/internal/render"
	"chosenoffset.com/hexchunks/internal/render/lighting"
)

// maxBatchTriangles bounds each DrawTriangles call so indices fit in uint16.
const maxBatchTriangles = 4096

// Scene is everything that gets drawn.
type Scene struct {
	Instances []Instance
	Camera    *OrbitCamera
	Lights    *lighting.Manager

	tris []triangle
}

// Stats reports what the last Render call drew.
type Stats struct {
	Triangles int
	Culled    int
	Batches   int
}

type triangle struct {
	pts   [3]mgl32.Vec2
	depth float32
	color [4]float32
}

// New creates an empty scene.
func New(cam *OrbitCamera, lights *lighting.Manager) *Scene {
	return &Scene{Camera: cam, Lights: lights}
}

// Spawn adds an instance of mesh with material at translation.
func (s *Scene) Spawn(mesh *Mesh, material *Material, translation mgl32.Vec3) {
	s.Instances = append(s.Instances, Instance{
		Mesh:        mesh,
		Material:    material,
		Translation: translation,
	})
}

// Render draws the scene onto dst. white must be an opaque white image; its
// centre pixel is sampled for every triangle.
func (s *Scene) Render(dst, white render.Image) Stats {
	var stats Stats
	width, height := dst.Size()
	if width == 0 || height == 0 {
		return stats
	}

	proj := s.Camera.Projector(width, height)
	eye := s.Camera.Eye()
	s.tris = s.tris[:0]

	for _, inst := range s.Instances {
		m := inst.Mesh
		for i := 0; i+2 < len(m.Indices); i += 3 {
			ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
			a := m.Positions[ia].Add(inst.Translation)
			b := m.Positions[ib].Add(inst.Translation)
			c := m.Positions[ic].Add(inst.Translation)

			face := b.Sub(a).Cross(c.Sub(a))
			if face.Dot(eye.Sub(a)) <= 0 {
				stats.Culled++
				continue
			}

			var tri triangle
			visible := true
			for k, v := range [3]mgl32.Vec3{a, b, c} {
				x, y, d, ok := proj.Project(v)
				if !ok {
					visible = false
					break
				}
				tri.pts[k] = mgl32.Vec2{x, y}
				tri.depth += d / 3
			}
			if !visible {
				stats.Culled++
				continue
			}

			normal := face.Normalize()
			if len(m.Normals) == len(m.Positions) {
				normal = m.Normals[ia].Add(m.Normals[ib]).Add(m.Normals[ic]).Normalize()
			}
			centroid := a.Add(b).Add(c).Mul(1.0 / 3)
			clr := inst.Material.Color
			if s.Lights != nil {
				clr = s.Lights.Shade(clr, normal, centroid)
			}
			tri.color = [4]float32{
				float32(clr.R) / 255,
				float32(clr.G) / 255,
				float32(clr.B) / 255,
				float32(clr.A) / 255,
			}
			s.tris = append(s.tris, tri)
		}
	}

	// Far triangles first.
	slices.SortStableFunc(s.tris, func(p, q triangle) int {
		switch {
		case p.depth > q.depth:
			return -1
		case p.depth < q.depth:
			return 1
		}
		return 0
	})

	stats.Triangles = len(s.tris)
	stats.Batches = drawBatches(dst, white, s.tris)
	return stats
}

func drawBatches(dst, white render.Image, tris []triangle) int {
	center := whiteCenter(white.Bounds())
	batches := 0
	vertices := make([]render.Vertex, 0, 3*min(len(tris), maxBatchTriangles))
	indices := make([]uint16, 0, cap(vertices))

	for start := 0; start < len(tris); start += maxBatchTriangles {
		end := min(start+maxBatchTriangles, len(tris))
		vertices = vertices[:0]
		indices = indices[:0]
		for _, t := range tris[start:end] {
			for _, p := range t.pts {
				indices = append(indices, uint16(len(vertices)))
				vertices = append(vertices, render.Vertex{
					DstX:   p.X(),
					DstY:   p.Y(),
					SrcX:   center.X(),
					SrcY:   center.Y(),
					ColorR: t.color[0],
					ColorG: t.color[1],
					ColorB: t.color[2],
					ColorA: t.color[3],
				})
			}
		}
		dst.DrawTriangles(vertices, indices, white, &render.DrawTrianglesOptions{AntiAlias: true})
		batches++
	}
	return batches
}

func whiteCenter(b image.Rectangle) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(b.Min.X+b.Max.X) / 2,
		float32(b.Min.Y+b.Max.Y) / 2,
	}
}
