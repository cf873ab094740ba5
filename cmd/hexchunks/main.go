package main

import (
	"flag"
	"log"

	"chosenoffset.com/hexchunks/internal/config"
	"chosenoffset.com/hexchunks/internal/game"
	ebitenrender "chosenoffset.com/hexchunks/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "hexchunks.json", "path to the settings file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.New(cfg, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting viewer...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
