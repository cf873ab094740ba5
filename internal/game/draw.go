package game

import (
	"fmt"

	"chosenoffset.com/hexchunks/internal/render"
	"chosenoffset.com/hexchunks/internal/scene"
)

// Draw renders the scene to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.ClearColor)
	g.LastStats = g.Scene.Render(screen, g.WhiteImg)

	if g.ShowHUD {
		g.drawHUD(screen)
	}
	g.drawMessages(screen)
}

func (g *Game) drawHUD(screen render.Image) {
	cam := g.Scene.Camera
	lines := []string{
		fmt.Sprintf("tiles: %d  chunk: %d  radius: %d", len(g.Tiles)-1, g.Config.Grid.ChunkSize, g.Config.Grid.Radius),
		fmt.Sprintf("yaw: %.0f  pitch: %.0f  distance: %.0f", degrees(cam.Yaw), degrees(cam.Pitch), cam.Radius),
		fmt.Sprintf("triangles: %d  culled: %d", g.LastStats.Triangles, g.LastStats.Culled),
		"drag: orbit  right drag: pan  wheel: zoom  R: reset  H: hud",
	}
	for i, line := range lines {
		g.Renderer.DrawText(screen, line, 8, 8+i*16)
	}
}

func (g *Game) drawMessages(screen render.Image) {
	w, h := screen.Size()
	for i, msg := range g.Messages {
		tw, th := g.Renderer.MeasureText(msg.Text)
		g.Renderer.DrawText(screen, msg.Text, (w-tw)/2, h-(len(g.Messages)-i)*(th+4)-8)
	}
}

func degrees(rad float32) float32 {
	return rad * 360 / scene.Tau
}
