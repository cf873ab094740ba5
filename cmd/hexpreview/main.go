package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/hexchunks/internal/config"
	"chosenoffset.com/hexchunks/internal/preview"
)

func main() {
	configPath := flag.String("config", "hexchunks.json", "path to the settings file")
	out := flag.String("out", "preview.png", "output PNG path")
	ppu := flag.Float64("scale", 4, "pixels per world unit")
	flag.Parse()

	fmt.Println("Hex Chunks Preview Generator")
	fmt.Println("============================")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := preview.DefaultOptions()
	opts.PixelsPerUnit = float32(*ppu)
	img, err := preview.Render(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := preview.SavePNG(img, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d)\n", *out, b.Dx(), b.Dy())
}
