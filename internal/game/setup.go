package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/hexchunks/internal/config"
	"chosenoffset.com/hexchunks/internal/hex"
	"chosenoffset.com/hexchunks/internal/render/lighting"
	"chosenoffset.com/hexchunks/internal/scene"
	"chosenoffset.com/hexchunks/internal/tiler"
)

// setup spawns the ground, the camera and the light.
func (g *Game) setup() error {
	cfg := g.Config

	groundColor, err := config.ParseColor(cfg.Scene.GroundColor)
	if err != nil {
		return err
	}

	g.Lights = lighting.NewManager()
	g.Lights.SetAmbientLight(cfg.Scene.Ambient)
	from := mgl32.Vec3{cfg.Scene.LightFrom[0], cfg.Scene.LightFrom[1], cfg.Scene.LightFrom[2]}
	g.Lights.AddLight(lighting.NewDirectionalLight(from, mgl32.Vec3{}, cfg.Scene.LightIntensity))
	g.Lights.SetSurfaceNoise(cfg.Scene.NoiseSeed, cfg.Scene.SurfaceNoise, 0.02)

	cam := scene.NewOrbitCamera(mgl32.Vec3{}, cfg.Camera.Radius, cfg.Camera.Yaw, cfg.Camera.Pitch)
	g.Controls = scene.NewOrbitControls(cam)
	g.Scene = scene.New(cam, g.Lights)

	size := cfg.Scene.GroundSize
	g.Scene.Spawn(scene.Cuboid(size[0], size[1], size[2]), &scene.Material{Color: groundColor}, mgl32.Vec3{})
	g.Tiles = append(g.Tiles, TileInfo{ColorIndex: GroundMarker})
	return nil
}

// setupGrid spawns one tile per hex in the configured region, sharing a
// single mesh and one material per colour.
func (g *Game) setupGrid() error {
	cfg := g.Config

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	materials := make([]*scene.Material, len(palette))
	for i, clr := range palette {
		materials[i] = &scene.Material{Color: clr}
	}

	layout := cfg.Layout()
	s := cfg.Grid.MeshScale
	mesh := scene.NewMesh(hex.NewPlaneMeshBuilder(layout).
		WithScale(mgl32.Vec3{s, s, s}).
		Facing(mgl32.Vec3{0, 1, 0}).
		CenterAligned().
		Build())

	placements, err := tiler.Tile(tiler.Config{
		Layout:    layout,
		Center:    cfg.Grid.Center,
		Radius:    cfg.Grid.Radius,
		ChunkSize: cfg.Grid.ChunkSize,
		Colors:    len(palette),
	})
	if err != nil {
		return err
	}

	for _, p := range placements {
		g.Scene.Spawn(mesh, materials[p.ColorIndex], mgl32.Vec3{p.World.X(), 0, p.World.Y()})
		g.Tiles = append(g.Tiles, TileInfo{ColorIndex: p.ColorIndex})
	}
	g.ColorCount = tiler.Counts(placements, len(palette))
	return nil
}
