package render

import (
	"SketchPad/internal/state"

	"github.com/gogpu/gg"
)

// Drawable is the visual form of one stroke. The scene only holds derived
// data; the stroke itself lives in the canvas.
type Drawable struct {
	Path  *gg.Path
	Style state.Style
	// Dot is set when every point of the stroke is the same, as with a tap.
	// A zero-length line strokes to nothing, so it is filled as a disc.
	Dot *state.Point
}

// Rebuild replaces the drawable's geometry from points.
func (d *Drawable) Rebuild(points []state.Point) {
	d.Path = BuildPath(points)
	d.Dot = nil
	if singular(points) {
		p := points[0]
		d.Dot = &p
	}
}

func singular(points []state.Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points[1:] {
		if p != points[0] {
			return false
		}
	}
	return true
}

// NewDrawable builds a drawable for the given points and style.
func NewDrawable(points []state.Point, style state.Style) *Drawable {
	d := &Drawable{Style: style}
	d.Rebuild(points)
	return d
}

// Scene is the ordered list of drawables, one per stroke, back to front.
type Scene struct {
	drawables []*Drawable
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{drawables: make([]*Drawable, 0)}
}

// Add appends d on top of the scene.
func (s *Scene) Add(d *Drawable) {
	s.drawables = append(s.drawables, d)
}

// Reset empties the scene.
func (s *Scene) Reset() {
	s.drawables = s.drawables[:0]
}

// Len counts drawables.
func (s *Scene) Len() int {
	return len(s.drawables)
}

// Drawables returns the drawables in paint order.
func (s *Scene) Drawables() []*Drawable {
	return s.drawables
}
