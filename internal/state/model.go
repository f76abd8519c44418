package state

import (
	"image/color"
)

// Point is a position in canvas pixels (raw input already multiplied by the
// device pixel-density scale).
type Point struct{ X, Y float64 }

// Style holds the rendering attributes a stroke is drawn with. It is captured
// when the stroke starts and never changes afterwards.
type Style struct {
	Color color.NRGBA
	Width float64
	Alpha float64
}

// Stroke is one continuous ink path, in drawing order.
type Stroke struct {
	Points []Point
	Style  Style
}

// Clone returns a deep copy so callers can't append into our backing array.
func (s Stroke) Clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return Stroke{Points: pts, Style: s.Style}
}
