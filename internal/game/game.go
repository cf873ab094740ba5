// Package game wires the hex grid into a running scene: it spawns the
// ground, camera, light and tiles at startup, then drives orbit controls
// and draws every frame.
package game

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"chosenoffset.com/hexchunks/internal/config"
	"chosenoffset.com/hexchunks/internal/render"
	"chosenoffset.com/hexchunks/internal/render/lighting"
	"chosenoffset.com/hexchunks/internal/scene"
)

// Game holds all viewer state.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *config.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager
	WhiteImg     render.Image

	Scene    *scene.Scene
	Controls *scene.OrbitControls
	Lights   *lighting.Manager

	// Tiles parallels Scene.Instances.
	Tiles      []TileInfo
	ColorCount []int
	ClearColor color.NRGBA

	ShowHUD   bool
	LastStats scene.Stats

	// UI state
	Messages []Message
}

// New builds the scene described by cfg.
func New(cfg *config.Config, r render.Renderer, input render.InputManager) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clearColor, err := config.ParseColor(cfg.Scene.ClearColor)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		ClearColor:   clearColor,
		ShowHUD:      cfg.Scene.ShowHUD,
	}

	// Opaque white pixel sampled by every scene triangle.
	white := r.NewImage(3, 3)
	white.Fill(color.White)
	g.WhiteImg = white.SubImage(image.Rect(1, 1, 2, 2))

	if err := g.setup(); err != nil {
		return nil, fmt.Errorf("failed to set up scene: %w", err)
	}
	if err := g.setupGrid(); err != nil {
		return nil, fmt.Errorf("failed to set up grid: %w", err)
	}

	log.Printf("Scene ready: %d tiles, color counts %v", len(g.Tiles)-1, g.ColorCount)
	return g, nil
}

// Update handles input.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Println("Escape pressed, exiting")
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.ShowHUD = !g.ShowHUD
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.ShowMessage("Camera reset")
	}

	g.Controls.Update(g.InputMgr, g.ScreenWidth, g.ScreenHeight)
	return nil
}

// Layout follows the window so the scene fills it after a resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	log.Printf("Message: %s", text)
}
