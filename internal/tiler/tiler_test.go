package tiler

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/hexchunks/internal/hex"
)

func testConfig(radius, chunk int) Config {
	return Config{
		Layout:    hex.NewLayout(mgl32.Vec2{8, 8}),
		Center:    hex.Origin,
		Radius:    radius,
		ChunkSize: chunk,
	}
}

func TestTileCount(t *testing.T) {
	for _, tt := range []struct{ radius, want int }{{0, 1}, {1, 7}, {2, 19}, {10, 331}} {
		placements, err := Tile(testConfig(tt.radius, 2))
		if err != nil {
			t.Fatalf("Radius %d: unexpected error: %v", tt.radius, err)
		}
		if len(placements) != tt.want {
			t.Errorf("Radius %d: expected %d placements, got %d", tt.radius, tt.want, len(placements))
		}
	}
}

func TestTileDefaultScene(t *testing.T) {
	placements, err := Tile(testConfig(10, 2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(placements) != 331 {
		t.Fatalf("Expected 331 placements, got %d", len(placements))
	}

	var origin *Placement
	for i := range placements {
		p := &placements[i]
		if p.ColorIndex < 0 || p.ColorIndex > 2 {
			t.Errorf("Hex %v: color index %d out of range", p.Hex, p.ColorIndex)
		}
		if p.Hex == hex.Origin {
			origin = p
		}
	}

	if origin == nil {
		t.Fatal("Expected origin hex to be placed")
	}
	if origin.World.X() != 0 || origin.World.Y() != 0 {
		t.Errorf("Expected origin at (0, 0), got %v", origin.World)
	}
	if origin.ColorIndex != 0 {
		t.Errorf("Expected origin color 0, got %d", origin.ColorIndex)
	}

	counts := Counts(placements, DefaultColors)
	total := 0
	for i, c := range counts {
		if c == 0 {
			t.Errorf("Expected color %d to be used", i)
		}
		total += c
	}
	if total != 331 {
		t.Errorf("Expected counts to sum to 331, got %d", total)
	}
}

func TestTileMembershipAndUniqueness(t *testing.T) {
	cfg := testConfig(4, 3)
	cfg.Center = hex.New(-2, 5)
	placements, err := Tile(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	seen := make(map[hex.Hex]bool)
	for _, p := range placements {
		if seen[p.Hex] {
			t.Errorf("Duplicate placement for %v", p.Hex)
		}
		seen[p.Hex] = true
		if hex.Distance(p.Hex, cfg.Center) > cfg.Radius {
			t.Errorf("Hex %v outside radius", p.Hex)
		}
	}
}

func TestColorIndexNegativeCoordinates(t *testing.T) {
	tests := []struct {
		h     hex.Hex
		chunk int
		want  int
	}{
		// (-1,-1) coarsens to (-1,-1) with chunk 2.
		{hex.New(-1, -1), 2, 0},
		// (-1,0) coarsens to (-1,0): -1 mod 3 = 2.
		{hex.New(-1, 0), 2, 2},
		// (0,-3) coarsens to (0,-2): 2 mod 3 = 2.
		{hex.New(0, -3), 2, 2},
		// (-5,4) coarsens to (-3,2): -5 mod 3 = 1.
		{hex.New(-5, 4), 2, 1},
		{hex.New(3, 0), 1, 0},
		{hex.New(2, 0), 1, 2},
	}
	for _, tt := range tests {
		if got := ColorIndex(tt.h, tt.chunk, 3); got != tt.want {
			t.Errorf("ColorIndex(%v, %d): expected %d, got %d", tt.h, tt.chunk, tt.want, got)
		}
	}

	for _, h := range hex.Hexagon(hex.Origin, 15) {
		for chunk := 1; chunk <= 4; chunk++ {
			c := ColorIndex(h, chunk, 3)
			if c < 0 || c > 2 {
				t.Errorf("ColorIndex(%v, %d) = %d out of range", h, chunk, c)
			}
			if again := ColorIndex(h, chunk, 3); again != c {
				t.Errorf("ColorIndex(%v, %d) not deterministic: %d then %d", h, chunk, c, again)
			}
		}
	}
}

func TestChunksShareColor(t *testing.T) {
	// All hexes inside one chunk cell share a colour, including across the origin.
	for _, base := range []hex.Hex{hex.New(0, 0), hex.New(-2, -2), hex.New(-2, 4)} {
		want := ColorIndex(base, 2, 3)
		for dq := 0; dq < 2; dq++ {
			for dr := 0; dr < 2; dr++ {
				h := base.Add(hex.New(dq, dr))
				if got := ColorIndex(h, 2, 3); got != want {
					t.Errorf("Hex %v: expected chunk color %d, got %d", h, want, got)
				}
			}
		}
	}
}

func TestEuclidMod(t *testing.T) {
	for a := -10; a <= 10; a++ {
		m := EuclidMod(a, 3)
		if m < 0 || m >= 3 {
			t.Errorf("EuclidMod(%d, 3) = %d out of range", a, m)
		}
		if (a-m)%3 != 0 {
			t.Errorf("EuclidMod(%d, 3) = %d not congruent", a, m)
		}
	}
}

func TestTranslationShiftsWorld(t *testing.T) {
	shift := hex.New(3, -2)
	a, err := Tile(testConfig(3, 2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cfg := testConfig(3, 2)
	cfg.Center = shift
	b, err := Tile(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	offset := cfg.Layout.HexToWorld(shift)
	world := make(map[hex.Hex]mgl32.Vec2, len(b))
	for _, p := range b {
		world[p.Hex] = p.World
	}
	for _, p := range a {
		moved, ok := world[p.Hex.Add(shift)]
		if !ok {
			t.Fatalf("Translated hex %v missing", p.Hex.Add(shift))
		}
		d := moved.Sub(p.World).Sub(offset)
		if math.Abs(float64(d.X())) > 1e-3 || math.Abs(float64(d.Y())) > 1e-3 {
			t.Errorf("Hex %v: world moved by %v, expected %v", p.Hex, moved.Sub(p.World), offset)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", testConfig(10, 2), true},
		{"zero radius", testConfig(0, 1), true},
		{"negative radius", testConfig(-1, 2), false},
		{"zero chunk", testConfig(3, 0), false},
		{"negative chunk", testConfig(3, -2), false},
		{"negative colors", Config{Radius: 1, ChunkSize: 1, Colors: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tile(tt.cfg)
			if tt.ok && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
