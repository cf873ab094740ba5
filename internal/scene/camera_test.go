package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/hexchunks/internal/render"
)

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestCameraTopDown(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 200, Tau/12, Tau/4)

	eye := cam.Eye()
	if !near(eye.X(), 0, 1e-3) || !near(eye.Y(), 200, 1e-3) || !near(eye.Z(), 0, 1e-3) {
		t.Errorf("Expected eye at (0, 200, 0), got %v", eye)
	}

	forward := cam.Focus.Sub(eye).Normalize()
	if d := forward.Dot(cam.Up()); !near(d, 0, 1e-5) {
		t.Errorf("Expected up vector orthogonal to view direction, dot = %f", d)
	}
	if l := cam.Up().Len(); !near(l, 1, 1e-5) {
		t.Errorf("Expected unit up vector, got length %f", l)
	}
}

func TestProjectFocusToCenter(t *testing.T) {
	for _, pitch := range []float32{0.3, 0.8, Tau / 4} {
		cam := NewOrbitCamera(mgl32.Vec3{10, 0, -4}, 150, 1.1, pitch)
		x, y, depth, ok := cam.Projector(1280, 720).Project(cam.Focus)
		if !ok {
			t.Fatalf("Pitch %f: expected focus to be visible", pitch)
		}
		if !near(x, 640, 0.01) || !near(y, 360, 0.01) {
			t.Errorf("Pitch %f: expected focus at (640, 360), got (%f, %f)", pitch, x, y)
		}
		if !near(depth, 150, 0.01) {
			t.Errorf("Pitch %f: expected depth 150, got %f", pitch, depth)
		}
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 100, 0, Tau/4)
	if _, _, _, ok := cam.Projector(800, 600).Project(mgl32.Vec3{0, 150, 0}); ok {
		t.Error("Expected point behind the camera to be rejected")
	}
}

func TestProjectScreenOrientation(t *testing.T) {
	// Looking along -Z from +Z with the ground below: world +X is screen right.
	cam := NewOrbitCamera(mgl32.Vec3{}, 100, 0, 0.3)
	p := cam.Projector(800, 600)
	cx, _, _, _ := p.Project(mgl32.Vec3{})
	rx, _, _, _ := p.Project(mgl32.Vec3{10, 0, 0})
	if rx <= cx {
		t.Errorf("Expected +X to project right of centre, got %f <= %f", rx, cx)
	}
	_, cy, _, _ := p.Project(mgl32.Vec3{})
	_, uy, _, _ := p.Project(mgl32.Vec3{0, 10, 0})
	if uy >= cy {
		t.Errorf("Expected +Y to project above centre, got %f >= %f", uy, cy)
	}
}

func TestCameraLimits(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 200, 0, Tau/4)

	cam.Orbit(0, 1)
	if cam.Pitch != cam.PitchUpper {
		t.Errorf("Expected pitch clamped to %f, got %f", cam.PitchUpper, cam.Pitch)
	}
	cam.Orbit(0, -5)
	if cam.Pitch != 0.1 {
		t.Errorf("Expected pitch clamped to 0.1, got %f", cam.Pitch)
	}

	cam.Zoom(1000)
	if cam.Radius != cam.ZoomUpper {
		t.Errorf("Expected radius clamped to %f, got %f", cam.ZoomUpper, cam.Radius)
	}
	cam.Zoom(0.00001)
	if cam.Radius != cam.ZoomLower {
		t.Errorf("Expected radius clamped to %f, got %f", cam.ZoomLower, cam.Radius)
	}

	cam.Pan(5, 0)
	cam.Reset()
	if cam.Radius != 200 || cam.Pitch != Tau/4 || cam.Focus.Len() != 0 {
		t.Errorf("Expected reset to initial pose, got radius %f pitch %f focus %v", cam.Radius, cam.Pitch, cam.Focus)
	}
}

func TestPanKeepsDistance(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 120, 0.7, 0.9)
	before := cam.Eye().Sub(cam.Focus).Len()
	cam.Pan(12, -7)
	after := cam.Eye().Sub(cam.Focus).Len()
	if !near(before, after, 1e-3) {
		t.Errorf("Expected pan to keep distance %f, got %f", before, after)
	}
	if cam.Focus.Len() == 0 {
		t.Error("Expected pan to move the focus")
	}
}

func TestControlsDragOrbits(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 200, 0, 0.5)
	controls := NewOrbitControls(cam)
	input := newFakeInput()

	input.buttons[render.MouseButtonLeft] = true
	input.x, input.y = 100, 100
	controls.Update(input, 800, 600)
	if cam.Yaw != 0 || cam.Pitch != 0.5 {
		t.Fatalf("Expected first drag tick to only record the cursor")
	}

	input.x, input.y = 300, 160
	controls.Update(input, 800, 600)
	if !near(cam.Yaw, -200.0/800*Tau, 1e-4) {
		t.Errorf("Expected yaw %f, got %f", -200.0/800*Tau, cam.Yaw)
	}
	if !near(cam.Pitch, 0.5+60.0/600*math.Pi, 1e-4) {
		t.Errorf("Expected pitch %f, got %f", 0.5+60.0/600*math.Pi, cam.Pitch)
	}

	input.buttons[render.MouseButtonLeft] = false
	input.x = 700
	controls.Update(input, 800, 600)
	if !near(cam.Yaw, -200.0/800*Tau, 1e-4) {
		t.Errorf("Expected released mouse to leave yaw unchanged, got %f", cam.Yaw)
	}
}

func TestControlsWheelAndReset(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 200, 0, 0.5)
	controls := NewOrbitControls(cam)
	input := newFakeInput()

	input.wheelY = 1
	controls.Update(input, 800, 600)
	if !near(cam.Radius, 180, 1e-3) {
		t.Errorf("Expected radius 180 after zooming in, got %f", cam.Radius)
	}

	input.wheelY = 0
	input.justPressed[render.KeyR] = true
	controls.Update(input, 800, 600)
	if cam.Radius != 200 {
		t.Errorf("Expected reset radius 200, got %f", cam.Radius)
	}
}
