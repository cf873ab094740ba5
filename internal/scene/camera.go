package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// OrbitCamera looks at Focus from a point on a sphere of Radius around it.
// Yaw turns around world Y; Pitch raises the eye above the XZ plane, so a
// pitch of Tau/4 looks straight down.
type OrbitCamera struct {
	Focus  mgl32.Vec3
	Radius float32
	Yaw    float32
	Pitch  float32

	PitchLower float32
	PitchUpper float32
	ZoomLower  float32
	ZoomUpper  float32

	FovY float32 // radians
	Near float32
	Far  float32

	home pose
}

type pose struct {
	focus              mgl32.Vec3
	radius, yaw, pitch float32
}

// NewOrbitCamera creates a camera with the engine's default projection.
func NewOrbitCamera(focus mgl32.Vec3, radius, yaw, pitch float32) *OrbitCamera {
	c := &OrbitCamera{
		Focus:      focus,
		Radius:     radius,
		Yaw:        yaw,
		Pitch:      pitch,
		PitchLower: 0.1,
		PitchUpper: Tau / 4,
		ZoomLower:  5,
		ZoomUpper:  2000,
		FovY:       mgl32.DegToRad(45),
		Near:       0.1,
		Far:        5000,
	}
	c.clamp()
	c.home = pose{focus: c.Focus, radius: c.Radius, yaw: c.Yaw, pitch: c.Pitch}
	return c
}

// Reset restores the camera to the pose it was created with.
func (c *OrbitCamera) Reset() {
	c.Focus = c.home.focus
	c.Radius = c.home.radius
	c.Yaw = c.home.yaw
	c.Pitch = c.home.pitch
}

// Orbit rotates the eye around the focus.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), Tau))
	c.Pitch += dPitch
	c.clamp()
}

// Zoom multiplies the radius by factor.
func (c *OrbitCamera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Radius *= factor
	c.clamp()
}

// Pan moves the focus within the view plane by (dx, dy) world units.
func (c *OrbitCamera) Pan(dx, dy float32) {
	forward := c.Focus.Sub(c.Eye()).Normalize()
	up := c.Up()
	right := forward.Cross(up).Normalize()
	c.Focus = c.Focus.Add(right.Mul(dx)).Add(up.Mul(dy))
}

func (c *OrbitCamera) clamp() {
	c.Pitch = mgl32.Clamp(c.Pitch, c.PitchLower, c.PitchUpper)
	c.Radius = mgl32.Clamp(c.Radius, c.ZoomLower, c.ZoomUpper)
}

// Eye returns the camera position.
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	sy, cy := sincos(c.Yaw)
	sp, cp := sincos(c.Pitch)
	return c.Focus.Add(mgl32.Vec3{cp * sy, sp, cp * cy}.Mul(c.Radius))
}

// Up returns the camera's up vector, which stays defined when looking
// straight down.
func (c *OrbitCamera) Up() mgl32.Vec3 {
	sy, cy := sincos(c.Yaw)
	sp, cp := sincos(c.Pitch)
	return mgl32.Vec3{-sp * sy, cp, -sp * cy}
}

// View returns the world-to-camera matrix.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Focus, c.Up())
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Projector maps world points to screen pixels for one frame.
type Projector struct {
	viewProj      mgl32.Mat4
	width, height float32
	near          float32
}

// Projector builds a projector for a screen of the given size.
func (c *OrbitCamera) Projector(width, height int) Projector {
	aspect := float32(width) / float32(max(height, 1))
	return Projector{
		viewProj: c.Projection(aspect).Mul4(c.View()),
		width:    float32(width),
		height:   float32(height),
		near:     c.Near,
	}
}

// Project returns the screen position of p and its distance along the view
// axis. ok is false when p lies behind the near plane.
func (p Projector) Project(v mgl32.Vec3) (x, y, depth float32, ok bool) {
	clip := p.viewProj.Mul4x1(v.Vec4(1))
	w := clip.W()
	if w < p.near {
		return 0, 0, 0, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	x = (ndcX + 1) / 2 * p.width
	y = (1 - ndcY) / 2 * p.height
	return x, y, w, true
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
