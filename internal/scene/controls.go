package scene

import (
	"math"

	"chosenoffset.com/hexchunks/internal/render"
)

// OrbitControls turns mouse and keyboard input into camera motion:
// left drag orbits, right or middle drag pans, the wheel zooms. Arrow keys
// orbit, WASD pans, Q/E zoom and R resets the camera.
type OrbitControls struct {
	Camera *OrbitCamera

	OrbitSensitivity float32
	PanSensitivity   float32
	ZoomSensitivity  float32
	KeyOrbitSpeed    float32 // radians per tick

	dragging     bool
	lastX, lastY int
}

// NewOrbitControls attaches controls to a camera.
func NewOrbitControls(cam *OrbitCamera) *OrbitControls {
	return &OrbitControls{
		Camera:           cam,
		OrbitSensitivity: 1,
		PanSensitivity:   1,
		ZoomSensitivity:  1,
		KeyOrbitSpeed:    0.03,
	}
}

// Update applies one tick of input for a viewport of the given size.
func (o *OrbitControls) Update(input render.InputManager, width, height int) {
	cam := o.Camera
	w := float32(max(width, 1))
	h := float32(max(height, 1))

	x, y := input.GetCursorPosition()
	orbiting := input.IsMouseButtonPressed(render.MouseButtonLeft)
	panning := input.IsMouseButtonPressed(render.MouseButtonRight) ||
		input.IsMouseButtonPressed(render.MouseButtonMiddle)

	if orbiting || panning {
		if o.dragging {
			dx := float32(x - o.lastX)
			dy := float32(y - o.lastY)
			if orbiting {
				// A drag across the full width is one full turn.
				cam.Orbit(-dx/w*Tau*o.OrbitSensitivity, dy/h*math.Pi*o.OrbitSensitivity)
			} else {
				// One pixel at the focus distance.
				unit := 2 * cam.Radius * float32(math.Tan(float64(cam.FovY/2))) / h
				cam.Pan(-dx*unit*o.PanSensitivity, dy*unit*o.PanSensitivity)
			}
		}
		o.dragging = true
		o.lastX, o.lastY = x, y
	} else {
		o.dragging = false
	}

	if _, wy := input.Wheel(); wy != 0 {
		cam.Zoom(float32(math.Pow(0.9, wy*float64(o.ZoomSensitivity))))
	}

	if input.IsKeyPressed(render.KeyLeft) {
		cam.Orbit(o.KeyOrbitSpeed, 0)
	}
	if input.IsKeyPressed(render.KeyRight) {
		cam.Orbit(-o.KeyOrbitSpeed, 0)
	}
	if input.IsKeyPressed(render.KeyUp) {
		cam.Orbit(0, o.KeyOrbitSpeed)
	}
	if input.IsKeyPressed(render.KeyDown) {
		cam.Orbit(0, -o.KeyOrbitSpeed)
	}

	step := cam.Radius * 0.01 * o.PanSensitivity
	if input.IsKeyPressed(render.KeyA) {
		cam.Pan(-step, 0)
	}
	if input.IsKeyPressed(render.KeyD) {
		cam.Pan(step, 0)
	}
	if input.IsKeyPressed(render.KeyW) {
		cam.Pan(0, step)
	}
	if input.IsKeyPressed(render.KeyS) {
		cam.Pan(0, -step)
	}

	if input.IsKeyPressed(render.KeyQ) {
		cam.Zoom(1.02)
	}
	if input.IsKeyPressed(render.KeyE) {
		cam.Zoom(1 / 1.02)
	}
	if input.IsKeyJustPressed(render.KeyR) {
		cam.Reset()
	}
}
