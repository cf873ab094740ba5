// Package lighting computes diffuse shading for scene surfaces lit by
// directional lights and an ambient level.
package lighting

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// DirectionalLight is a light infinitely far away shining along Direction.
type DirectionalLight struct {
	Direction mgl32.Vec3  // Direction light travels, normalized
	Intensity float64     // Diffuse strength (0.0 to 1.0+)
	Color     color.NRGBA // Light color
}

// NewDirectionalLight creates a white light placed at from and aimed at target.
func NewDirectionalLight(from, target mgl32.Vec3, intensity float64) DirectionalLight {
	dir := target.Sub(from)
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, -1, 0}
	}
	return DirectionalLight{
		Direction: dir.Normalize(),
		Intensity: intensity,
		Color:     color.NRGBA{255, 255, 255, 255},
	}
}

// Manager handles all light sources in the scene
type Manager struct {
	lights       []DirectionalLight
	ambientLight float64 // Global ambient light level (0.0 = pitch black, 1.0 = fully lit)

	noise          opensimplex.Noise
	noiseAmplitude float64
	noiseFrequency float64
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		lights:       make([]DirectionalLight, 0),
		ambientLight: 0.3,
	}
}

// SetAmbientLight sets the global ambient light level
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = level
}

// GetAmbientLight returns the current ambient light level
func (m *Manager) GetAmbientLight() float64 {
	return m.ambientLight
}

// AddLight adds a directional light.
func (m *Manager) AddLight(light DirectionalLight) {
	m.lights = append(m.lights, light)
}

// GetLights returns all lights.
func (m *Manager) GetLights() []DirectionalLight {
	return m.lights
}

// SetSurfaceNoise varies brightness across the ground plane by up to
// ±amplitude. An amplitude of 0 disables it.
func (m *Manager) SetSurfaceNoise(seed int64, amplitude, frequency float64) {
	if amplitude <= 0 {
		m.noise = nil
		m.noiseAmplitude = 0
		return
	}
	m.noise = opensimplex.NewNormalized(seed)
	m.noiseAmplitude = amplitude
	m.noiseFrequency = frequency
}

// Brightness returns the light level reaching a surface with the given
// normal at world position pos.
func (m *Manager) Brightness(normal, pos mgl32.Vec3) float64 {
	level := m.ambientLight
	for _, l := range m.lights {
		lambert := float64(normal.Dot(l.Direction.Mul(-1)))
		if lambert > 0 {
			level += lambert * l.Intensity
		}
	}
	if m.noise != nil {
		n := 2*m.noise.Eval2(float64(pos.X())*m.noiseFrequency, float64(pos.Z())*m.noiseFrequency) - 1
		level *= 1 + n*m.noiseAmplitude
	}
	if level < 0 {
		level = 0
	}
	return level
}

// Shade returns base lit by every light for a surface with the given normal.
func (m *Manager) Shade(base color.NRGBA, normal, pos mgl32.Vec3) color.NRGBA {
	level := m.Brightness(normal, pos)

	// Tint by the average light color.
	tr, tg, tb := 1.0, 1.0, 1.0
	if len(m.lights) > 0 {
		tr, tg, tb = 0, 0, 0
		for _, l := range m.lights {
			tr += float64(l.Color.R) / 255
			tg += float64(l.Color.G) / 255
			tb += float64(l.Color.B) / 255
		}
		n := float64(len(m.lights))
		tr, tg, tb = tr/n, tg/n, tb/n
	}

	return color.NRGBA{
		R: clampByte(float64(base.R) * level * tr),
		G: clampByte(float64(base.G) * level * tg),
		B: clampByte(float64(base.B) * level * tb),
		A: base.A,
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
