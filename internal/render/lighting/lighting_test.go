package lighting

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var up = mgl32.Vec3{0, 1, 0}

func TestBrightnessFacingLight(t *testing.T) {
	m := NewManager()
	m.SetAmbientLight(0.2)
	m.AddLight(NewDirectionalLight(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{}, 1.0))

	if got := m.Brightness(up, mgl32.Vec3{}); math.Abs(got-1.2) > 1e-6 {
		t.Errorf("Expected brightness 1.2 for surface facing light, got %f", got)
	}
	if got := m.Brightness(up.Mul(-1), mgl32.Vec3{}); math.Abs(got-0.2) > 1e-6 {
		t.Errorf("Expected ambient only for surface facing away, got %f", got)
	}
}

func TestBrightnessDiagonalLight(t *testing.T) {
	m := NewManager()
	m.SetAmbientLight(0)
	m.AddLight(NewDirectionalLight(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, 1.0))

	want := 1 / math.Sqrt(3)
	if got := m.Brightness(up, mgl32.Vec3{}); math.Abs(got-want) > 1e-5 {
		t.Errorf("Expected brightness %f, got %f", want, got)
	}
}

func TestShadeClamps(t *testing.T) {
	m := NewManager()
	m.SetAmbientLight(2.0)

	got := m.Shade(color.NRGBA{200, 100, 0, 255}, up, mgl32.Vec3{})
	if got.R != 255 || got.G != 200 || got.B != 0 || got.A != 255 {
		t.Errorf("Expected {255 200 0 255}, got %v", got)
	}
}

func TestSurfaceNoiseBounded(t *testing.T) {
	m := NewManager()
	m.SetAmbientLight(1.0)
	m.SetSurfaceNoise(7, 0.1, 0.05)

	varied := false
	for x := -50; x <= 50; x += 5 {
		b := m.Brightness(up, mgl32.Vec3{float32(x), 0, float32(-x)})
		if b < 0.9-1e-6 || b > 1.1+1e-6 {
			t.Errorf("Brightness %f at x=%d outside noise bounds", b, x)
		}
		if math.Abs(b-1.0) > 1e-6 {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected surface noise to vary brightness")
	}

	m.SetSurfaceNoise(7, 0, 0.05)
	if b := m.Brightness(up, mgl32.Vec3{3, 0, 4}); b != 1.0 {
		t.Errorf("Expected noise disabled, got %f", b)
	}
}
