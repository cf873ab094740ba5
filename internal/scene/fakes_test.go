package scene

import (
	"image"
	"image/color"

	"chosenoffset.com/hexchunks/internal/render"
)

// fakeImage records draw calls instead of rasterizing.
type fakeImage struct {
	w, h  int
	calls [][]render.Vertex
}

func newFakeImage(w, h int) *fakeImage {
	return &fakeImage{w: w, h: h}
}

func (f *fakeImage) Bounds() image.Rectangle               { return image.Rect(0, 0, f.w, f.h) }
func (f *fakeImage) Size() (int, int)                      { return f.w, f.h }
func (f *fakeImage) SubImage(image.Rectangle) render.Image { return f }
func (f *fakeImage) Fill(color.Color)                      {}
func (f *fakeImage) Clear()                                {}
func (f *fakeImage) Dispose()                              {}

func (f *fakeImage) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	out := make([]render.Vertex, len(indices))
	for i, idx := range indices {
		out[i] = vertices[idx]
	}
	f.calls = append(f.calls, out)
}

func (f *fakeImage) vertexCount() int {
	n := 0
	for _, c := range f.calls {
		n += len(c)
	}
	return n
}

// fakeInput is a scripted InputManager.
type fakeInput struct {
	keys        map[render.Key]bool
	justPressed map[render.Key]bool
	buttons     map[render.MouseButton]bool
	x, y        int
	wheelY      float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:        make(map[render.Key]bool),
		justPressed: make(map[render.Key]bool),
		buttons:     make(map[render.MouseButton]bool),
	}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool                 { return f.keys[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool             { return f.justPressed[k] }
func (f *fakeInput) GetCursorPosition() (int, int)                  { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(b render.MouseButton) bool { return f.buttons[b] }
func (f *fakeInput) Wheel() (float64, float64)                      { return 0, f.wheelY }
